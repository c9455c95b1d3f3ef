package lua

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSandboxRequire(t *testing.T) {
	tests := []struct {
		module  string
		wantErr string
	}{
		{"string", ""},
		{"math", ""},
		{"io", "requires the unsafe capability"},
		{"os", "requires the unsafe capability"},
		{"socket", "is not available"},
		{"quill.missing", "not found"},
	}
	for _, tc := range tests {
		state := newTestState(t)
		err := state.DoString(context.Background(), `require("`+tc.module+`")`)
		switch {
		case tc.wantErr == "" && err != nil:
			t.Errorf("require(%q) error = %v", tc.module, err)
		case tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)):
			t.Errorf("require(%q) error = %v, want %q", tc.module, err, tc.wantErr)
		}
	}
}

func TestSandboxUnsafeCapability(t *testing.T) {
	state := newTestState(t)
	state.Sandbox().Grant(CapabilityUnsafe)

	if err := state.DoString(context.Background(), `local os = require("os"); t = os.time()`); err != nil {
		t.Errorf("os with unsafe capability: %v", err)
	}
}

func TestSandboxGrantRevoke(t *testing.T) {
	state := newTestState(t)
	sb := state.Sandbox()

	if sb.HasCapability(CapabilityClipboard) {
		t.Error("clipboard granted by default")
	}
	if err := sb.CheckCapability(CapabilityClipboard); err == nil {
		t.Error("CheckCapability should fail before Grant")
	}

	sb.Grant(CapabilityUnsafe)
	sb.Grant(CapabilityClipboard)
	if diff := cmp.Diff([]Capability{CapabilityClipboard, CapabilityUnsafe}, sb.Capabilities()); diff != "" {
		t.Errorf("Capabilities() mismatch (-want +got):\n%s", diff)
	}

	sb.Revoke(CapabilityClipboard)
	var capErr *CapabilityError
	if err := sb.CheckCapability(CapabilityClipboard); !errors.As(err, &capErr) || capErr.Capability != CapabilityClipboard {
		t.Errorf("CheckCapability() error = %v", err)
	}
}

func TestParseCapability(t *testing.T) {
	if c, err := ParseCapability(" clipboard "); err != nil || c != CapabilityClipboard {
		t.Errorf("ParseCapability(clipboard) = %q, %v", c, err)
	}
	if _, err := ParseCapability("network"); !errors.Is(err, ErrUnknownCapability) {
		t.Errorf("ParseCapability(network) error = %v", err)
	}
}
