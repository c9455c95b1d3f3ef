package textrange

import (
	"strings"

	"github.com/dshills/quill/internal/host"
)

// IsFinalLine reports whether text is the document's final line, which is
// the only line without a trailing newline.
func IsFinalLine(text string) bool {
	return !strings.HasSuffix(text, "\n")
}

// Accessor answers read-only queries against a live document and selection.
type Accessor struct {
	ed host.Editor
}

// NewAccessor creates an Accessor over ed.
func NewAccessor(ed host.Editor) *Accessor {
	return &Accessor{ed: ed}
}

// Editor returns the underlying host editor.
func (a *Accessor) Editor() host.Editor {
	return a.ed
}

// DocumentLength returns the document length in characters.
func (a *Accessor) DocumentLength() int {
	return RuneLen(a.ed.DocumentText())
}

// DocumentText returns the whole document.
func (a *Accessor) DocumentText() string {
	return a.ed.DocumentText()
}

// SelectedRange returns the live selection.
func (a *Accessor) SelectedRange() host.Range {
	return a.ed.SelectedRange()
}

// SelectedText returns the live selected text.
func (a *Accessor) SelectedText() string {
	return a.ed.SelectedText()
}

// CursorPosition returns the selection start.
func (a *Accessor) CursorPosition() int {
	return a.ed.SelectedRange().Start
}

// IsEndOfDocument reports whether offset is the document length.
func (a *Accessor) IsEndOfDocument(offset int) bool {
	return offset == a.DocumentLength()
}

// TextInRange returns length characters starting at start.
func (a *Accessor) TextInRange(start, length int) string {
	return a.ed.TextInRange(start, length)
}

// TextBetween returns the text in [start, end).
func (a *Accessor) TextBetween(start, end int) string {
	return a.ed.TextInRange(start, end-start)
}

// TextBefore returns the text in [0, offset).
func (a *Accessor) TextBefore(offset int) string {
	return a.TextBetween(0, offset)
}

// TextAfter returns the text from offset to the end of the document.
func (a *Accessor) TextAfter(offset int) string {
	return a.TextBetween(offset, a.DocumentLength())
}

// CurrentLineRange returns the line at the selection without its trailing
// newline. On the final line the range reaches the end of the document.
func (a *Accessor) CurrentLineRange() host.Range {
	raw := a.ed.LineRangeAtSelection()
	if IsFinalLine(a.TextInRange(raw.Start, raw.Length)) {
		return raw
	}
	return host.NewRange(raw.Start, raw.Length-1)
}

// CurrentLineText returns the text of CurrentLineRange.
func (a *Accessor) CurrentLineText() string {
	r := a.CurrentLineRange()
	return a.TextInRange(r.Start, r.Length)
}

// SelectionOrCurrentLineRange returns the selection, or the current line
// when nothing is selected.
func (a *Accessor) SelectionOrCurrentLineRange() host.Range {
	if a.ed.SelectedText() == "" {
		return a.CurrentLineRange()
	}
	return a.ed.SelectedRange()
}

// SelectionOrCurrentLineText returns the selected text, or the current line
// when nothing is selected.
func (a *Accessor) SelectionOrCurrentLineText() string {
	if text := a.ed.SelectedText(); text != "" {
		return text
	}
	return a.CurrentLineText()
}

// PreviousOccurrenceIndex returns the offset of the last occurrence of
// needle that ends at or before offset, or 0 if there is none.
func (a *Accessor) PreviousOccurrenceIndex(needle string, offset int) int {
	i := lastIndex(a.TextBefore(offset), needle)
	if i < 0 {
		return 0
	}
	return i
}

// NextOccurrenceIndex returns the offset of the first occurrence of needle
// starting strictly after offset, or the document length if there is none.
func (a *Accessor) NextOccurrenceIndex(needle string, offset int) int {
	doc := a.ed.DocumentText()
	docLen := RuneLen(doc)

	from := offset + 1
	if from < 0 {
		from = 0
	}
	if from > docLen {
		return docLen
	}

	tail := doc[byteOffset(doc, from):]
	i := strings.Index(tail, needle)
	if i < 0 {
		return docLen
	}
	return from + RuneLen(tail[:i])
}

// SelectionEndIndex returns the effective end of the live selection.
// See EffectiveEnd.
func (a *Accessor) SelectionEndIndex() int {
	sel := a.ed.SelectedRange()
	return a.EffectiveEnd(sel.Start, sel.Length)
}

// EffectiveEnd returns the end of the selection (start, length) with a
// trailing blank tail collapsed.
//
// If the selection reaches the end of the document its raw end is returned.
// If only whitespace follows the selection, the end moves back to the last
// non-whitespace character of the selected text. Otherwise the raw end is
// returned.
func (a *Accessor) EffectiveEnd(start, length int) int {
	end := start + length
	if a.IsEndOfDocument(end) {
		return end
	}
	if !isBlank(a.TextAfter(end)) {
		return end
	}
	return start + RuneLen(trimRightSpace(a.TextInRange(start, length)))
}
