package host

// Editor is the document and selection surface of a host.
//
// Implementations clamp out-of-range offsets into [0, length] instead of
// failing, so callers may pass the result of offset arithmetic directly.
type Editor interface {
	// SelectedText returns the currently selected text.
	SelectedText() string

	// SelectedRange returns the current selection. A zero length is a caret.
	SelectedRange() Range

	// LineRangeAtSelection returns the range of the line(s) covering the
	// selection. The range includes the trailing newline unless the line is
	// the last line of the document.
	LineRangeAtSelection() Range

	// TextInRange returns the text in the given range.
	TextInRange(offset, length int) string

	// SetSelectedText replaces the selection with text. Afterwards the
	// inserted text is selected.
	SetSelectedText(text string)

	// SetTextInRange replaces the given range with text.
	SetTextInRange(offset, length int, text string)

	// SetSelectedRange sets the selection.
	SetSelectedRange(offset, length int)

	// DocumentText returns the full document.
	DocumentText() string

	// SetDocumentText replaces the full document.
	SetDocumentText(text string)
}

// Clipboard reads and writes the host clipboard.
type Clipboard interface {
	ClipboardText() string
	SetClipboardText(text string)
}

// Dictation captures spoken text.
type Dictation interface {
	// Dictate blocks until dictation finishes. ok is false when nothing was
	// captured.
	Dictate() (text string, ok bool)

	// Activate returns focus to the editor.
	Activate()
}

// TagQuerier enumerates the tags known to the host.
type TagQuerier interface {
	QueryAllTags() []string
}

// Context gives actions access to host providers.
// Only Editor is required; the others may be nil.
type Context struct {
	Editor    Editor
	Clipboard Clipboard
	Dictation Dictation
	Tags      TagQuerier
}
