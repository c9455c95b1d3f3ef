package editing

import (
	"errors"
	"testing"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/host/clipboard"
	"github.com/dshills/quill/internal/host/memory"
)

type fixture struct {
	doc  *memory.Document
	clip *clipboard.Memory
	ctx  *host.Context
	h    *Handler
}

func newFixture(text string, start, length int) *fixture {
	doc := memory.NewDocument(text)
	doc.SetSelectedRange(start, length)
	clip := clipboard.NewMemory("")
	return &fixture{
		doc:  doc,
		clip: clip,
		ctx:  &host.Context{Editor: doc, Clipboard: clip},
		h:    NewHandler(Options{}),
	}
}

func (f *fixture) run(t *testing.T, action string) actions.Result {
	t.Helper()
	res := f.h.HandleAction(action, f.ctx)
	if res.IsError() {
		t.Fatalf("%s: %v", action, res.Error)
	}
	return res
}

func (f *fixture) expect(t *testing.T, text string, sel host.Range) {
	t.Helper()
	if got := f.doc.DocumentText(); got != text {
		t.Errorf("text = %q, want %q", got, text)
	}
	if got := f.doc.SelectedRange(); got != sel {
		t.Errorf("selection = %v, want %v", got, sel)
	}
}

func TestHandlerNamespace(t *testing.T) {
	h := NewHandler(Options{})
	if h.Namespace() != Namespace {
		t.Errorf("Namespace() = %q", h.Namespace())
	}
	for _, name := range []string{
		ActionCopyLineUp, ActionCopyLineDown, ActionCopyLineToClipboard,
		ActionCutLine, ActionDeleteLine, ActionPasteClipboard,
		ActionInsertDictation, ActionSelectLine, ActionSelectParagraph,
		ActionSelectResponse, ActionSelectAll,
	} {
		if !h.CanHandle(name) {
			t.Errorf("CanHandle(%q) = false", name)
		}
	}
	if h.CanHandle("editing.unknown") {
		t.Error("CanHandle(editing.unknown) = true")
	}
}

func TestCopyLineUp(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		caret    int
		wantText string
		wantSel  host.Range
	}{
		{"middle line", "one\ntwo\nthree", 5, "one\ntwo\ntwo\nthree", host.NewRange(5, 0)},
		{"last line", "one\ntwo", 6, "one\ntwo\ntwo", host.NewRange(6, 0)},
		{"single line", "abc", 1, "abc\nabc", host.NewRange(1, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.text, tc.caret, 0)
			f.run(t, ActionCopyLineUp)
			f.expect(t, tc.wantText, tc.wantSel)
		})
	}
}

func TestCopyLineDown(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		caret    int
		wantText string
		wantSel  host.Range
	}{
		{"middle line", "one\ntwo\nthree", 5, "one\ntwo\ntwo\nthree", host.NewRange(9, 0)},
		{"last line", "one\ntwo", 6, "one\ntwo\ntwo", host.NewRange(10, 0)},
		{"single line", "abc", 1, "abc\nabc", host.NewRange(5, 0)},
		{"empty line", "a\n\nb", 2, "a\n\n\nb", host.NewRange(3, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.text, tc.caret, 0)
			f.run(t, ActionCopyLineDown)
			f.expect(t, tc.wantText, tc.wantSel)
		})
	}
}

func TestCopyLineToClipboard(t *testing.T) {
	f := newFixture("one\ntwo\n", 5, 0)
	f.run(t, ActionCopyLineToClipboard)
	if got := f.clip.ClipboardText(); got != "two" {
		t.Errorf("clipboard = %q, want %q", got, "two")
	}

	f = newFixture("one\ntwo\n", 1, 5)
	f.run(t, ActionCopyLineToClipboard)
	if got := f.clip.ClipboardText(); got != "ne\ntw" {
		t.Errorf("clipboard = %q, want %q", got, "ne\ntw")
	}
	f.expect(t, "one\ntwo\n", host.NewRange(1, 5))
}

func TestCutLine(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		start, length int
		wantText      string
		wantClip      string
		wantSel       host.Range
	}{
		{"current line keeps newline", "one\ntwo\nthree", 5, 0, "one\n\nthree", "two", host.NewRange(4, 0)},
		{"last line", "one\ntwo", 5, 0, "one\n", "two", host.NewRange(4, 0)},
		{"selection", "one\ntwo", 1, 2, "o\ntwo", "ne", host.NewRange(1, 0)},
		{"selection ending in newline", "one\ntwo", 0, 4, "\ntwo", "one\n", host.NewRange(0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.text, tc.start, tc.length)
			f.run(t, ActionCutLine)
			f.expect(t, tc.wantText, tc.wantSel)
			if got := f.clip.ClipboardText(); got != tc.wantClip {
				t.Errorf("clipboard = %q, want %q", got, tc.wantClip)
			}
		})
	}
}

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		caret    int
		wantText string
		wantSel  host.Range
	}{
		{"single line", "only line", 4, "", host.NewRange(0, 0)},
		{"text follows", "one\ntwo\nthree", 5, "one\n\nthree", host.NewRange(4, 0)},
		{"first line", "one\ntwo", 1, "\ntwo", host.NewRange(0, 0)},
		{"blank tail moves to previous line", "one\ntwo\n\n", 5, "one\n\n\n", host.NewRange(0, 0)},
		{"last line", "one\ntwo", 5, "one\n", host.NewRange(0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.text, tc.caret, 0)
			f.run(t, ActionDeleteLine)
			f.expect(t, tc.wantText, tc.wantSel)
		})
	}
}

func TestPasteClipboard(t *testing.T) {
	f := newFixture("say world", 4, 0)
	f.clip.SetClipboardText("hello ")
	f.run(t, ActionPasteClipboard)
	f.expect(t, "say hello world", host.NewRange(10, 0))

	f = newFixture("replace me", 8, 2)
	f.clip.SetClipboardText("you")
	f.run(t, ActionPasteClipboard)
	f.expect(t, "replace you", host.NewRange(11, 0))

	f = newFixture("abc", 1, 0)
	if res := f.run(t, ActionPasteClipboard); res.Status != actions.StatusNoOp {
		t.Errorf("empty clipboard status = %v, want no-op", res.Status)
	}
}

func TestInsertDictation(t *testing.T) {
	f := newFixture("note: ", 6, 0)
	dict := memory.NewDictation("buy milk")
	f.ctx.Dictation = dict
	f.run(t, ActionInsertDictation)
	f.expect(t, "note: buy milk", host.NewRange(14, 0))
	if dict.Activations() != 1 {
		t.Errorf("Activations() = %d, want 1", dict.Activations())
	}

	res := f.run(t, ActionInsertDictation)
	if res.Status != actions.StatusNoOp {
		t.Errorf("empty dictation status = %v, want no-op", res.Status)
	}
	f.expect(t, "note: buy milk", host.NewRange(14, 0))
}

func TestInsertDictationWithoutProvider(t *testing.T) {
	f := newFixture("x", 0, 0)
	res := f.h.HandleAction(ActionInsertDictation, f.ctx)
	if !errors.Is(res.Error, actions.ErrMissingCapability) {
		t.Errorf("error = %v, want ErrMissingCapability", res.Error)
	}
}

func TestSelectActions(t *testing.T) {
	const text = "intro line\n\nfirst para\nstill first\n\n---\nreply body\n---\n"
	tests := []struct {
		action  string
		caret   int
		want    string
		wantSel host.Range
	}{
		{ActionSelectLine, 14, "first para", host.NewRange(12, 10)},
		{ActionSelectParagraph, 14, "first para\nstill first", host.NewRange(12, 22)},
		{ActionSelectResponse, 45, "reply body", host.NewRange(40, 10)},
		{ActionSelectAll, 3, text, host.NewRange(0, 55)},
	}
	for _, tc := range tests {
		t.Run(tc.action, func(t *testing.T) {
			f := newFixture(text, tc.caret, 0)
			f.run(t, tc.action)
			f.expect(t, text, tc.wantSel)
			if got := f.doc.SelectedText(); got != tc.want {
				t.Errorf("selected = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSelectResponseCopies(t *testing.T) {
	f := newFixture("q\n---\nanswer\n---\n", 8, 0)
	f.run(t, ActionSelectResponse)
	if got := f.clip.ClipboardText(); got != "answer" {
		t.Errorf("clipboard = %q, want %q", got, "answer")
	}
}

func TestCustomResponseSeparator(t *testing.T) {
	f := newFixture("a\n===\nb b\n===\nc", 7, 0)
	f.h = NewHandler(Options{ResponseSeparator: "==="})
	f.run(t, ActionSelectResponse)
	if got := f.doc.SelectedText(); got != "b b" {
		t.Errorf("selected = %q, want %q", got, "b b")
	}
}

func TestMissingEditor(t *testing.T) {
	h := NewHandler(Options{})
	res := h.HandleAction(ActionDeleteLine, &host.Context{})
	if !errors.Is(res.Error, actions.ErrMissingCapability) {
		t.Errorf("error = %v, want ErrMissingCapability", res.Error)
	}
}
