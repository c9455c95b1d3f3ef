package clipboard

import (
	"testing"

	"github.com/dshills/quill/internal/host"
)

var (
	_ host.Clipboard = (*Memory)(nil)
	_ host.Clipboard = (*System)(nil)
)

func TestMemory(t *testing.T) {
	m := NewMemory("seed")
	if got := m.ClipboardText(); got != "seed" {
		t.Errorf("ClipboardText() = %q, want %q", got, "seed")
	}
	m.SetClipboardText("next")
	if got := m.ClipboardText(); got != "next" {
		t.Errorf("ClipboardText() = %q, want %q", got, "next")
	}
}
