// Package section selects delimiter-bounded spans around the caret.
package section

import (
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// Common separators.
const (
	Line      = "\n"
	Paragraph = "\n\n"
	Response  = "---"
)

// Find returns the section around the caret bounded by separator, trimmed to
// its non-whitespace interior. It does not change the selection.
//
// The section starts after the last separator before the caret, or at 0 when
// the backward search reports 0, and ends where the next separator starting
// after the caret begins, or at the end of the document.
func Find(m *textrange.Mutator, separator string) host.Range {
	cursor := m.CursorPosition()

	start := m.PreviousOccurrenceIndex(separator, cursor)
	if start != 0 {
		start += textrange.RuneLen(separator)
	}
	end := m.NextOccurrenceIndex(separator, cursor)

	trimmedStart, trimmedEnd := m.TrimRangeToContent(start, end)
	return host.Between(trimmedStart, trimmedEnd)
}

// Select selects the section around the caret and returns it.
func Select(m *textrange.Mutator, separator string) host.Range {
	r := Find(m, separator)
	m.SetSelection(r.Start, r.Length)
	return r
}
