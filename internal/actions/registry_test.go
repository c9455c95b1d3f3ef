package actions

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/host/memory"
)

func demoHandler() *BaseNamespaceHandler {
	h := NewBaseNamespaceHandler("demo")
	h.Register("upper", "Replace the document with HELLO", func(ctx *host.Context) Result {
		ctx.Editor.SetDocumentText("HELLO")
		return Success()
	})
	h.Register("demo.nothing", "Do nothing", func(ctx *host.Context) Result {
		return NoOp()
	})
	h.Register("boom", "Panic", func(ctx *host.Context) Result {
		panic("boom")
	})
	return h
}

func TestBaseNamespaceHandler(t *testing.T) {
	h := demoHandler()
	if h.Namespace() != "demo" {
		t.Errorf("Namespace() = %q", h.Namespace())
	}

	tests := []struct {
		action string
		want   bool
	}{
		{"demo.upper", true},
		{"demo.nothing", true},
		{"demo.missing", false},
		{"other.upper", false},
	}
	for _, tc := range tests {
		if got := h.CanHandle(tc.action); got != tc.want {
			t.Errorf("CanHandle(%q) = %v, want %v", tc.action, got, tc.want)
		}
	}
}

func TestRegistryRun(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamespace(demoHandler())
	doc := memory.NewDocument("hello")
	ctx := &host.Context{Editor: doc}

	res := reg.Run("demo.upper", ctx)
	if !res.IsOK() {
		t.Fatalf("Run() status = %v, err = %v", res.Status, res.Error)
	}
	if doc.DocumentText() != "HELLO" {
		t.Errorf("DocumentText() = %q", doc.DocumentText())
	}

	if res := reg.Run("demo.nothing", ctx); res.Status != StatusNoOp {
		t.Errorf("demo.nothing status = %v, want no-op", res.Status)
	}
}

func TestRegistryRunUnknown(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamespace(demoHandler())

	for _, name := range []string{"demo.missing", "nope.upper", "plain"} {
		res := reg.Run(name, &host.Context{})
		if !res.IsError() || !errors.Is(res.Error, ErrUnknownAction) {
			t.Errorf("Run(%q) = %+v, want ErrUnknownAction", name, res)
		}
	}
}

func TestRegistryRunRecoversPanic(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamespace(demoHandler())

	res := reg.Run("demo.boom", &host.Context{})
	if !errors.Is(res.Error, ErrPanic) {
		t.Errorf("error = %v, want ErrPanic", res.Error)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterNamespace(demoHandler())
	other := NewBaseNamespaceHandler("alpha")
	other.Register("first", "First", func(*host.Context) Result { return Success() })
	reg.RegisterNamespace(other)

	want := []Info{
		{Name: "alpha.first", Description: "First"},
		{Name: "demo.boom", Description: "Panic"},
		{Name: "demo.nothing", Description: "Do nothing"},
		{Name: "demo.upper", Description: "Replace the document with HELLO"},
	}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alpha", "demo"}, reg.Namespaces()); diff != "" {
		t.Errorf("Namespaces() mismatch (-want +got):\n%s", diff)
	}
	if reg.Count() != 4 {
		t.Errorf("Count() = %d, want 4", reg.Count())
	}
}

func TestRequireCapabilities(t *testing.T) {
	if err := RequireEditor(nil); !errors.Is(err, ErrMissingCapability) {
		t.Errorf("RequireEditor(nil) = %v", err)
	}
	ctx := &host.Context{Editor: memory.NewDocument("")}
	if err := RequireEditor(ctx); err != nil {
		t.Errorf("RequireEditor() = %v", err)
	}
	if err := RequireClipboard(ctx); !errors.Is(err, ErrMissingCapability) {
		t.Errorf("RequireClipboard() = %v, want ErrMissingCapability", err)
	}
}

func TestResultHelpers(t *testing.T) {
	r := Success().WithMessage("done").WithData("n", 3)
	if r.Message != "done" {
		t.Errorf("Message = %q", r.Message)
	}
	if v, ok := r.GetData("n"); !ok || v != 3 {
		t.Errorf("GetData(n) = %v, %v", v, ok)
	}
	if _, ok := NoOp().GetData("n"); ok {
		t.Error("GetData on empty result should report false")
	}
	if r := Error(errors.New("bad")); !r.IsError() || r.Error.Error() != "bad" {
		t.Errorf("Error() = %+v", r)
	}
	if StatusNoOp.String() != "no-op" || ResultStatus(9).String() != "unknown" {
		t.Error("unexpected status strings")
	}
}

func TestQualifiedName(t *testing.T) {
	if got := QualifiedName("md", "bold"); got != "md.bold" {
		t.Errorf("QualifiedName = %q", got)
	}
	if got := QualifiedName("md", "md.bold"); got != "md.bold" {
		t.Errorf("QualifiedName = %q", got)
	}
	if got := Namespace("md.bold"); got != "md" {
		t.Errorf("Namespace = %q", got)
	}
}
