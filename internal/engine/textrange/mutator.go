package textrange

import (
	"strings"

	"github.com/dshills/quill/internal/host"
)

// Mutator writes to a live document and selection.
type Mutator struct {
	*Accessor
}

// NewMutator creates a Mutator over ed.
func NewMutator(ed host.Editor) *Mutator {
	return &Mutator{Accessor: NewAccessor(ed)}
}

// ReplaceRange replaces length characters at start with text. A zero length
// inserts.
func (m *Mutator) ReplaceRange(text string, start, length int) {
	m.ed.SetTextInRange(start, length, text)
}

// ReplaceBetween replaces [start, end) with text.
func (m *Mutator) ReplaceBetween(text string, start, end int) {
	m.ReplaceRange(text, start, end-start)
}

// ReplaceSelection replaces the selected text.
func (m *Mutator) ReplaceSelection(text string) {
	m.ed.SetSelectedText(text)
}

// SetDocumentText replaces the whole document.
func (m *Mutator) SetDocumentText(text string) {
	m.ed.SetDocumentText(text)
}

// SetSelection selects length characters at start.
func (m *Mutator) SetSelection(start, length int) {
	m.ed.SetSelectedRange(start, length)
}

// SetSelectionBetween selects [start, end).
func (m *Mutator) SetSelectionBetween(start, end int) {
	m.SetSelection(start, end-start)
}

// SetCursor places a caret at offset.
func (m *Mutator) SetCursor(offset int) {
	m.SetSelection(offset, 0)
}

// SetSelectionKeepNewline selects (start, length), leaving out the final
// character when the range ends with a line's newline. A following cut or
// delete then keeps the line count.
func (m *Mutator) SetSelectionKeepNewline(start, length int) {
	if IsFinalLine(m.TextInRange(start, length)) {
		m.SetSelection(start, length)
		return
	}
	m.SetSelection(start, length-1)
}

// TrimRangeToContent returns [start, end) narrowed to its non-whitespace
// interior. A blank range collapses to (start, start).
func (m *Mutator) TrimRangeToContent(start, end int) (int, int) {
	text := m.TextBetween(start, end)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return start, start
	}
	leading := RuneLen(text) - RuneLen(trimLeftSpace(text))
	trimmedStart := start + leading
	return trimmedStart, trimmedStart + RuneLen(trimmed)
}

// InsertAndPlaceCursorAfter replaces the selection with text and puts the
// caret at offset + len(text).
func (m *Mutator) InsertAndPlaceCursorAfter(text string, offset int) {
	m.ed.SetSelectedText(text)
	m.SetCursor(offset + RuneLen(text))
}

// TransformSelection replaces the selected text with fn applied to it.
func (m *Mutator) TransformSelection(fn func(string) string) {
	m.ed.SetSelectedText(fn(m.ed.SelectedText()))
}
