package highlight

import (
	"strings"

	"github.com/dshills/quill/internal/engine/textrange"
)

// Outcome describes what a toggle did.
type Outcome uint8

const (
	// Inserted means a single marker was inserted at the caret.
	Inserted Outcome = iota
	// Added means the selection was wrapped in markers.
	Added
	// Removed means existing markers were stripped.
	Removed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Toggler adds or removes markers around a selection snapshot.
type Toggler struct {
	m        *textrange.Mutator
	start    int
	length   int
	end      int
	selected string
}

// New snapshots the live selection of m.
func New(m *textrange.Mutator) *Toggler {
	sel := m.SelectedRange()
	return &Toggler{
		m:        m,
		start:    sel.Start,
		length:   sel.Length,
		end:      m.EffectiveEnd(sel.Start, sel.Length),
		selected: m.SelectedText(),
	}
}

// Start returns the selection start.
func (t *Toggler) Start() int { return t.start }

// End returns the effective selection end.
func (t *Toggler) End() int { return t.end }

// HasSelection reports whether the snapshot has a non-empty selection.
func (t *Toggler) HasSelection() bool {
	return t.length > 0
}

// content is the selected text up to the effective end.
func (t *Toggler) content() string {
	return t.m.TextBetween(t.start, t.end)
}

// isWrappedInner reports whether prefix ends right before the selection and
// suffix starts right after its effective end.
func (t *Toggler) isWrappedInner(prefix, suffix string) bool {
	return strings.HasSuffix(t.m.TextBefore(t.start), prefix) &&
		strings.HasPrefix(t.m.TextAfter(t.end), suffix)
}

// isWrappedOuter reports whether the selection itself starts with prefix
// and ends with suffix.
func (t *Toggler) isWrappedOuter(prefix, suffix string) bool {
	text := t.content()
	if textrange.RuneLen(text) < textrange.RuneLen(prefix)+textrange.RuneLen(suffix) {
		return false
	}
	return strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix)
}

// IsHighlightedAsymmetric reports whether the selection is wrapped in
// prefix and suffix, in either the inner or the outer form.
func (t *Toggler) IsHighlightedAsymmetric(prefix, suffix string) bool {
	return t.isWrappedOuter(prefix, suffix) || t.isWrappedInner(prefix, suffix)
}

// IsHighlightedSymmetric is IsHighlightedAsymmetric(marker, marker).
func (t *Toggler) IsHighlightedSymmetric(marker string) bool {
	return t.IsHighlightedAsymmetric(marker, marker)
}

// AddAsymmetric replaces the selection with prefix + selection + suffix and
// places the caret at the effective end shifted by both markers.
func (t *Toggler) AddAsymmetric(prefix, suffix string) {
	t.m.ReplaceSelection(prefix + t.selected + suffix)
	t.m.SetCursor(t.end + textrange.RuneLen(prefix) + textrange.RuneLen(suffix))
}

// AddSymmetric is AddAsymmetric(marker, marker).
func (t *Toggler) AddSymmetric(marker string) {
	t.AddAsymmetric(marker, marker)
}

// RemoveAsymmetric strips prefix and suffix and selects the unwrapped text.
// The outer form is checked first.
func (t *Toggler) RemoveAsymmetric(prefix, suffix string) {
	p, s := textrange.RuneLen(prefix), textrange.RuneLen(suffix)

	if t.isWrappedOuter(prefix, suffix) {
		runes := []rune(t.content())
		inner := string(runes[p : len(runes)-s])
		t.m.ReplaceBetween(inner, t.start, t.end)
		t.m.SetSelection(t.start, len(runes)-p-s)
		return
	}

	inner := t.content()
	t.m.ReplaceBetween(inner, t.start-p, t.end+s)
	t.m.SetSelection(t.start-p, textrange.RuneLen(inner))
}

// RemoveSymmetric is RemoveAsymmetric(marker, marker).
func (t *Toggler) RemoveSymmetric(marker string) {
	t.RemoveAsymmetric(marker, marker)
}

// InsertMarker replaces the selection with marker and puts the caret right
// after it.
func (t *Toggler) InsertMarker(marker string) {
	t.m.ReplaceSelection(marker)
	t.m.SetCursor(t.start + textrange.RuneLen(marker))
}

// ToggleSymmetric inserts, removes or adds marker depending on the snapshot.
//
// At a bare caret a symmetric marker cannot be told apart as opening or
// closing, so a single marker is inserted and the next toggle decides.
func (t *Toggler) ToggleSymmetric(marker string) Outcome {
	switch {
	case !t.HasSelection():
		t.InsertMarker(marker)
		return Inserted
	case t.IsHighlightedSymmetric(marker):
		t.RemoveSymmetric(marker)
		return Removed
	default:
		t.AddSymmetric(marker)
		return Added
	}
}

// ToggleAsymmetric inserts, removes or adds prefix and suffix depending on
// the snapshot.
//
// At a bare caret the text before it is searched for the last prefix and the
// last suffix. If the prefix is more recent the caret is inside an open block
// and the suffix is inserted; otherwise, including when neither occurs, the
// prefix is inserted.
func (t *Toggler) ToggleAsymmetric(prefix, suffix string) Outcome {
	if !t.HasSelection() {
		before := t.m.TextBefore(t.start)
		if strings.LastIndex(before, prefix) > strings.LastIndex(before, suffix) {
			t.InsertMarker(suffix)
		} else {
			t.InsertMarker(prefix)
		}
		return Inserted
	}
	if t.IsHighlightedAsymmetric(prefix, suffix) {
		t.RemoveAsymmetric(prefix, suffix)
		return Removed
	}
	t.AddAsymmetric(prefix, suffix)
	return Added
}

// ToggleSymmetric snapshots m and toggles marker.
func ToggleSymmetric(m *textrange.Mutator, marker string) Outcome {
	return New(m).ToggleSymmetric(marker)
}

// ToggleAsymmetric snapshots m and toggles prefix and suffix.
func ToggleAsymmetric(m *textrange.Mutator, prefix, suffix string) Outcome {
	return New(m).ToggleAsymmetric(prefix, suffix)
}
