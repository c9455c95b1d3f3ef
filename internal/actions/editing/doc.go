// Package editing provides line, clipboard, dictation and selection actions.
//
// Line operations work on the current line as returned by
// textrange.Accessor.CurrentLineRange, which excludes the trailing newline.
//
// # Line Operations
//
//   - editing.copyLineUp: duplicate the current line above it
//   - editing.copyLineDown: duplicate the current line below it
//   - editing.copyLineToClipboard: copy the selection or current line
//   - editing.cutLine: cut the selection or current line
//   - editing.deleteLine: delete the current line's content
//
// # Insertion
//
//   - editing.pasteClipboard: replace the selection with the clipboard
//   - editing.insertDictation: replace the selection with dictated text
//
// # Selection
//
//   - editing.selectLine, editing.selectParagraph: select the enclosing
//     line or paragraph, trimmed
//   - editing.selectResponse: select the enclosing "---" delimited block
//     and copy it to the clipboard
//   - editing.selectAll: select the whole document
package editing
