// Package textrange provides character-offset queries and edits over a
// host.Editor.
//
// Every offset is a 0-indexed character (rune) offset in [0, length]. The
// Accessor never caches document text or selection between calls: each query
// re-reads the host, so offsets computed after a mutation are always taken
// from the live buffer.
//
// Accessor covers the read side:
//
//	acc := textrange.NewAccessor(editor)
//	line := acc.CurrentLineRange()         // excludes the trailing newline
//	end := acc.SelectionEndIndex()         // blank-tail aware selection end
//
// Mutator embeds an Accessor and adds writes:
//
//	m := textrange.NewMutator(editor)
//	m.ReplaceBetween("text", 4, 9)
//	m.SetCursor(4 + len("text"))
//
// Search misses are not errors. A backward search that finds nothing reports
// offset 0, a forward search reports the document length.
package textrange
