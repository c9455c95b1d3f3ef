package plugin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/quill/internal/host"
	"github.com/dshills/quill/internal/plugin/api"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// Host runs scripts against an editing context.
type Host struct {
	hctx    *host.Context
	actions api.ActionRunner

	executionTimeout time.Duration
	callLimit        int64
	capabilities     []plua.Capability
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithTimeout sets the execution timeout for each run.
func WithTimeout(d time.Duration) HostOption {
	return func(h *Host) {
		h.executionTimeout = d
	}
}

// WithCallLimit sets the maximum host calls for each run.
func WithCallLimit(limit int64) HostOption {
	return func(h *Host) {
		h.callLimit = limit
	}
}

// WithCapabilities grants capabilities to every script.
func WithCapabilities(caps ...plua.Capability) HostOption {
	return func(h *Host) {
		h.capabilities = append(h.capabilities, caps...)
	}
}

// NewHost creates a script host. actions may be nil, in which case
// quill.actions raises when used.
func NewHost(hctx *host.Context, actions api.ActionRunner, opts ...HostOption) (*Host, error) {
	if hctx == nil || hctx.Editor == nil {
		return nil, ErrNoEditor
	}

	h := &Host{
		hctx:             hctx,
		actions:          actions,
		executionTimeout: plua.DefaultExecutionTimeout,
		callLimit:        plua.DefaultCallLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Capabilities returns the capabilities granted to scripts.
func (h *Host) Capabilities() []plua.Capability {
	return append([]plua.Capability(nil), h.capabilities...)
}

// RunFile executes the script at path.
func (h *Host) RunFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return fmt.Errorf("script %s: %w", path, err)
	}
	return h.run(filepath.Base(path), func(s *plua.State) error {
		return s.DoFile(ctx, path)
	})
}

// RunString executes code. name identifies the chunk in errors.
func (h *Host) RunString(ctx context.Context, name, code string) error {
	return h.run(name, func(s *plua.State) error {
		return s.DoString(ctx, code)
	})
}

func (h *Host) run(name string, exec func(*plua.State) error) error {
	state, err := h.newState()
	if err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	defer state.Close()

	if err := exec(state); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}

// newState builds a sandboxed state with the API modules injected.
func (h *Host) newState() (*plua.State, error) {
	state, err := plua.NewState(
		plua.WithExecutionTimeout(h.executionTimeout),
		plua.WithCallLimit(h.callLimit),
	)
	if err != nil {
		return nil, err
	}

	for _, c := range h.capabilities {
		state.Sandbox().Grant(c)
	}

	reg, err := api.DefaultRegistry(&api.Context{
		Host:    h.hctx,
		Actions: h.actions,
		Sandbox: state.Sandbox(),
	})
	if err == nil {
		err = reg.InjectAll(state.LuaState(), state.Sandbox())
	}
	if err != nil {
		state.Close()
		return nil, err
	}
	return state, nil
}
