package plugin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/actions/markdown"
	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/host/clipboard"
	"github.com/dshills/quill/internal/host/memory"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

func newTestHost(t *testing.T, doc *memory.Document, opts ...HostOption) (*Host, *clipboard.Memory) {
	t.Helper()
	reg := actions.NewRegistry()
	reg.RegisterNamespace(markdown.NewHandler(markdown.DefaultOptions()))

	cb := clipboard.NewMemory("")
	h, err := NewHost(&host.Context{Editor: doc, Clipboard: cb}, reg, opts...)
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	return h, cb
}

func TestNewHostRequiresEditor(t *testing.T) {
	if _, err := NewHost(nil, nil); !errors.Is(err, ErrNoEditor) {
		t.Errorf("NewHost(nil) error = %v", err)
	}
	if _, err := NewHost(&host.Context{}, nil); !errors.Is(err, ErrNoEditor) {
		t.Errorf("NewHost(no editor) error = %v", err)
	}
}

func TestRunFile(t *testing.T) {
	doc := memory.NewDocument("- [ ] write tests\n- [ ] ship")
	h, _ := newTestHost(t, doc)

	path := filepath.Join(t.TempDir(), "check.lua")
	script := `
local quill = require("quill")
quill.doc.set_selection(0, quill.doc.len())
local status = quill.actions.run("markdown.toggleCheckboxes")
assert(status == "ok", status)
`
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := h.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if got := doc.DocumentText(); got != "- [x] write tests\n- [x] ship" {
		t.Errorf("text = %q", got)
	}
}

func TestRunFileMissing(t *testing.T) {
	h, _ := newTestHost(t, memory.NewDocument(""))
	err := h.RunFile(context.Background(), filepath.Join(t.TempDir(), "nope.lua"))
	if !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("RunFile() error = %v, want ErrScriptNotFound", err)
	}
}

func TestRunStringFreshStatePerRun(t *testing.T) {
	h, _ := newTestHost(t, memory.NewDocument("x"))
	ctx := context.Background()

	if err := h.RunString(ctx, "first", `leaked = 1`); err != nil {
		t.Fatal(err)
	}
	if err := h.RunString(ctx, "second", `assert(leaked == nil, "global leaked")`); err != nil {
		t.Errorf("second run saw first run's globals: %v", err)
	}
}

func TestRunStringErrorNamesScript(t *testing.T) {
	h, _ := newTestHost(t, memory.NewDocument(""))
	err := h.RunString(context.Background(), "broken.lua", `error("bad")`)
	if err == nil || !strings.Contains(err.Error(), "script broken.lua") {
		t.Errorf("error = %v", err)
	}
}

func TestRunStringTimeout(t *testing.T) {
	h, _ := newTestHost(t, memory.NewDocument(""), WithTimeout(50*time.Millisecond))
	err := h.RunString(context.Background(), "spin", `while true do end`)
	if !errors.Is(err, plua.ErrExecutionTimeout) {
		t.Errorf("error = %v, want ErrExecutionTimeout", err)
	}
}

func TestCapabilities(t *testing.T) {
	doc := memory.NewDocument("copy me")
	ctx := context.Background()

	h, _ := newTestHost(t, doc)
	if err := h.RunString(ctx, "clip", `assert(require("quill").clipboard == nil)`); err != nil {
		t.Errorf("clipboard available without capability: %v", err)
	}

	h, cb := newTestHost(t, doc, WithCapabilities(plua.CapabilityClipboard))
	if err := h.RunString(ctx, "clip", `local q = require("quill"); q.clipboard.set(q.doc.text())`); err != nil {
		t.Fatalf("RunString() error = %v", err)
	}
	if got := cb.ClipboardText(); got != "copy me" {
		t.Errorf("clipboard = %q", got)
	}
	if got := h.Capabilities(); len(got) != 1 || got[0] != plua.CapabilityClipboard {
		t.Errorf("Capabilities() = %v", got)
	}
}
