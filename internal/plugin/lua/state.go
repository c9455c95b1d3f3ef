package lua

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Default limits for a Lua state.
const (
	DefaultExecutionTimeout = 5 * time.Second
	DefaultCallLimit        = 100_000
)

// State wraps gopher-lua with a sandbox and per-run limits.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes runs
// started from Go; scripts themselves are single-threaded.
type State struct {
	L *lua.LState

	mu sync.Mutex

	executionTimeout time.Duration
	callLimit        int64

	sandbox *Sandbox
	closed  bool
}

// StateOption configures a State.
type StateOption func(*State)

// WithExecutionTimeout sets the timeout for a single run. Zero disables it.
func WithExecutionTimeout(d time.Duration) StateOption {
	return func(s *State) {
		s.executionTimeout = d
	}
}

// WithCallLimit sets the maximum host calls per run. Zero disables it.
func WithCallLimit(limit int64) StateOption {
	return func(s *State) {
		s.callLimit = limit
	}
}

// NewState returns a state with the safe libraries open and the sandbox
// installed.
func NewState(opts ...StateOption) (*State, error) {
	s := &State{
		executionTimeout: DefaultExecutionTimeout,
		callLimit:        DefaultCallLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	if err := openLibraries(s.L, safeLibraries); err != nil {
		s.L.Close()
		return nil, err
	}
	s.sandbox = NewSandbox(s.L, s.callLimit)
	s.sandbox.Install()
	return s, nil
}

type library struct {
	name string
	open lua.LGFunction
}

// safeLibraries are open in every state. package is needed for preloaded
// modules; io, os and debug come only with CapabilityUnsafe.
var safeLibraries = []library{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

var unsafeLibraries = []library{
	{lua.IoLibName, lua.OpenIo},
	{lua.OsLibName, lua.OpenOs},
	{lua.DebugLibName, lua.OpenDebug},
}

func openLibraries(L *lua.LState, libs []library) error {
	for _, lib := range libs {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return fmt.Errorf("open lua library %q: %w", lib.name, err)
		}
	}
	return nil
}

// DoFile runs the script at path.
func (s *State) DoFile(ctx context.Context, path string) error {
	return s.run(ctx, func(L *lua.LState) error { return L.DoFile(path) })
}

// DoString runs a chunk of Lua source.
func (s *State) DoString(ctx context.Context, code string) error {
	return s.run(ctx, func(L *lua.LState) error { return L.DoString(code) })
}

// run executes fn with a fresh call budget under the execution timeout.
// Limit and timeout failures are reported as ErrCallLimit and
// ErrExecutionTimeout rather than the raw Lua error.
func (s *State) run(ctx context.Context, fn func(*lua.LState) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}

	s.sandbox.ResetCalls()
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if s.executionTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, s.executionTimeout)
	}
	defer cancel()
	s.L.SetContext(runCtx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	if err = fn(s.L); err == nil {
		return nil
	}

	switch {
	case s.sandbox.LimitExceeded():
		return fmt.Errorf("%w (%d calls)", ErrCallLimit, s.callLimit)
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s", ErrExecutionTimeout, s.executionTimeout)
	}
	return err
}

// Preload registers a module loader so scripts can require it by name.
func (s *State) Preload(name string, loader lua.LGFunction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	s.L.PreloadModule(name, loader)
	return nil
}

// GetGlobal returns the named global, or nil once the state is closed.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// LuaState returns the underlying gopher-lua state. Access through it
// bypasses the mutex.
func (s *State) LuaState() *lua.LState {
	return s.L
}

func (s *State) Sandbox() *Sandbox {
	return s.sandbox
}

func (s *State) IsClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close releases the Lua state. Later runs return ErrStateClosed.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
