package host

import "fmt"

// Range is a contiguous span of the document: Length characters starting at
// Start. A zero Length denotes a caret at Start.
type Range struct {
	Start  int
	Length int
}

// NewRange creates a Range from a start offset and a length.
func NewRange(start, length int) Range {
	return Range{Start: start, Length: length}
}

// Between creates a Range spanning [start, end).
func Between(start, end int) Range {
	return Range{Start: start, Length: end - start}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d+%d)", r.Start, r.Length)
}

// End returns the exclusive end offset.
func (r Range) End() int {
	return r.Start + r.Length
}

// IsEmpty returns true if the range is a caret.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains returns true if offset lies in [Start, End).
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End()
}

// Shift returns the range moved by delta.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, Length: r.Length}
}

// Clamp returns the range limited to a document of the given length.
// A negative start consumes length, as if the range had been cut at 0.
func (r Range) Clamp(docLen int) Range {
	start, end := r.Start, r.End()
	if start < 0 {
		start = 0
	}
	if start > docLen {
		start = docLen
	}
	if end > docLen {
		end = docLen
	}
	if end < start {
		end = start
	}
	return Range{Start: start, Length: end - start}
}
