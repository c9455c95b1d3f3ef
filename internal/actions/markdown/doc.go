// Package markdown provides markdown editing actions.
//
// # Highlighting
//
// markdown.bold, markdown.italic and markdown.code toggle a symmetric marker
// around the selection; markdown.codeBlock toggles a fenced block. See
// package highlight for the decision procedure and caret placement.
//
// # Links
//
// markdown.link and markdown.image build a link from the selection and a
// URL on the clipboard:
//
//	clipboard  selection  result            caret
//	-          -          []()              inside []
//	-          text       [text]()          inside ()
//	url        -          [](url)           inside []
//	url        text       [text](url)       after the link
//
// # Lists
//
// markdown.toggleTasks adds or removes "- [ ]" task markers on the selected
// lines (or the current line), markdown.toggleCheckboxes checks or unchecks
// them, and markdown.linebreakKeepIndentation starts a new line that keeps
// the current indentation.
package markdown
