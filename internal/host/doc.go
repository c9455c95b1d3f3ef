// Package host defines the editing surface that quill actions run against.
//
// A host owns the document buffer, the selection and the clipboard. Quill
// never keeps a copy of any of them across calls: every query goes back to
// the host so offsets are always computed against the live document.
//
// The surface is split into small provider interfaces aggregated in Context,
// so a host that cannot dictate or enumerate tags simply leaves those
// providers nil:
//
//	ctx := &host.Context{
//	    Editor:    doc,          // Editor interface (required)
//	    Clipboard: clip,         // Clipboard interface
//	    Dictation: nil,          // Dictation interface
//	    Tags:      tagSource,    // TagQuerier interface
//	}
//
// Offsets:
//
// All offsets are 0-indexed character (rune) offsets into the document and
// are valid in [0, length]. Length is a valid offset meaning "end of
// document". Ranges are expressed as (Start, Length) pairs.
package host
