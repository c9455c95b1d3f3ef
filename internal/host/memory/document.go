package memory

import (
	"strings"
	"sync"

	"github.com/dshills/quill/internal/host"
)

// LineEnding specifies how line endings are normalised on load.
type LineEnding uint8

const (
	// LineEndingLF converts CRLF and CR to LF.
	LineEndingLF LineEnding = iota
	// LineEndingKeep stores the text as given.
	LineEndingKeep
)

// Option configures a Document.
type Option func(*Document)

// WithLineEnding sets line ending normalisation for text passed to
// NewDocument and SetDocumentText.
func WithLineEnding(le LineEnding) Option {
	return func(d *Document) {
		d.lineEnding = le
	}
}

// Document is an in-memory host.Editor.
type Document struct {
	mu         sync.RWMutex
	text       []rune
	sel        host.Range
	lineEnding LineEnding
	revision   uint64
}

// NewDocument creates a document with the caret at offset 0.
func NewDocument(text string, opts ...Option) *Document {
	d := &Document{lineEnding: LineEndingLF}
	for _, opt := range opts {
		opt(d)
	}
	d.text = []rune(d.normalizeLineEndings(text))
	return d
}

func (d *Document) normalizeLineEndings(s string) string {
	if d.lineEnding != LineEndingLF {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Revision returns a counter incremented on every text change.
func (d *Document) Revision() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revision
}

// Len returns the document length in characters.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.text)
}

// DocumentText implements host.Editor.
func (d *Document) DocumentText() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return string(d.text)
}

// SetDocumentText implements host.Editor. The selection collapses to a
// caret at the start of the document.
func (d *Document) SetDocumentText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text = []rune(d.normalizeLineEndings(text))
	d.sel = host.Range{}
	d.revision++
}

// SelectedText implements host.Editor.
func (d *Document) SelectedText() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r := d.sel.Clamp(len(d.text))
	return string(d.text[r.Start:r.End()])
}

// SelectedRange implements host.Editor.
func (d *Document) SelectedRange() host.Range {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sel
}

// SetSelectedRange implements host.Editor.
func (d *Document) SetSelectedRange(offset, length int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if length < 0 {
		length = 0
	}
	d.sel = host.NewRange(offset, length).Clamp(len(d.text))
}

// LineRangeAtSelection implements host.Editor.
//
// The range starts after the newline preceding the selection start and ends
// after the newline terminating the line of the last selected character, or
// at the end of the document.
func (d *Document) LineRangeAtSelection() host.Range {
	d.mu.RLock()
	defer d.mu.RUnlock()

	sel := d.sel.Clamp(len(d.text))
	start := sel.Start
	for start > 0 && d.text[start-1] != '\n' {
		start--
	}

	last := sel.Start
	if sel.Length > 0 {
		last = sel.End() - 1
	}
	end := last
	for end < len(d.text) && d.text[end] != '\n' {
		end++
	}
	if end < len(d.text) {
		end++ // include the newline
	}
	return host.Between(start, end)
}

// TextInRange implements host.Editor.
func (d *Document) TextInRange(offset, length int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	r := host.NewRange(offset, length).Clamp(len(d.text))
	return string(d.text[r.Start:r.End()])
}

// SetSelectedText implements host.Editor. The inserted text is selected
// afterwards.
func (d *Document) SetSelectedText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := d.sel.Clamp(len(d.text))
	n := d.replace(r, text)
	d.sel = host.NewRange(r.Start, n)
}

// SetTextInRange implements host.Editor. The selection is moved to follow
// the edit.
func (d *Document) SetTextInRange(offset, length int, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := host.NewRange(offset, length).Clamp(len(d.text))
	n := d.replace(r, text)

	start := transformOffset(d.sel.Start, r, n)
	end := transformOffset(d.sel.End(), r, n)
	d.sel = host.Between(start, end)
}

// replace swaps the runes in r for text and returns the inserted length.
func (d *Document) replace(r host.Range, text string) int {
	ins := []rune(text)
	out := make([]rune, 0, len(d.text)-r.Length+len(ins))
	out = append(out, d.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, d.text[r.End():]...)
	d.text = out
	d.revision++
	return len(ins)
}

// transformOffset updates offset after r was replaced by n characters.
//
//   - edit entirely before offset: shift by the edit's delta
//   - edit starts after offset: unchanged
//   - edit spans offset: move to the end of the new text
func transformOffset(offset int, r host.Range, n int) int {
	if r.End() <= offset {
		return offset - r.Length + n
	}
	if r.Start >= offset {
		return offset
	}
	return r.Start + n
}
