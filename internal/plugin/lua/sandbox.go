package lua

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the module scripts require to reach the host API.
const ModuleName = "quill"

// Capability represents a permission that can be granted to scripts.
type Capability string

// Available capabilities.
const (
	CapabilityClipboard Capability = "clipboard"
	CapabilityUnsafe    Capability = "unsafe" // io, os and debug libraries
)

var knownCapabilities = map[Capability]bool{
	CapabilityClipboard: true,
	CapabilityUnsafe:    true,
}

// ParseCapability converts a configured capability name.
func ParseCapability(name string) (Capability, error) {
	c := Capability(strings.TrimSpace(name))
	if !knownCapabilities[c] {
		return "", fmt.Errorf("%w: %q", ErrUnknownCapability, name)
	}
	return c, nil
}

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L *lua.LState

	callLimit int64
	calls     int64
	exceeded  atomic.Bool

	mu           sync.RWMutex
	capabilities map[Capability]bool
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, callLimit int64) *Sandbox {
	return &Sandbox{
		L:            L,
		callLimit:    callLimit,
		capabilities: make(map[Capability]bool),
	}
}

// Install removes the chunk loaders and replaces require.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.installSafeRequire()
}

// installSafeRequire clears the package search paths and only lets
// require reach the safe libraries, preloaded quill modules, and the
// libraries unlocked by CapabilityUnsafe.
func (s *Sandbox) installSafeRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	safeModules := map[string]bool{
		"string": true,
		"table":  true,
		"math":   true,
	}
	gated := map[string]bool{
		"io":    true,
		"os":    true,
		"debug": true,
	}

	originalRequire := s.L.GetGlobal("require")

	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		modName := L.CheckString(1)

		switch {
		case safeModules[modName], modName == ModuleName, strings.HasPrefix(modName, ModuleName+"."):
		case gated[modName]:
			if !s.HasCapability(CapabilityUnsafe) {
				L.RaiseError("module %q requires the %s capability", modName, CapabilityUnsafe)
			}
		default:
			L.RaiseError("module %q is not available", modName)
		}

		L.Push(originalRequire)
		L.Push(lua.LString(modName))
		L.Call(1, 1)
		return 1
	}))
}

// ResetCalls resets the host call counter.
func (s *Sandbox) ResetCalls() {
	atomic.StoreInt64(&s.calls, 0)
	s.exceeded.Store(false)
}

// Calls returns the host calls made in the current run.
func (s *Sandbox) Calls() int64 {
	return atomic.LoadInt64(&s.calls)
}

// LimitExceeded reports whether the current run hit the call limit.
func (s *Sandbox) LimitExceeded() bool {
	return s.exceeded.Load()
}

// Charge counts one host call and raises a Lua error once the limit is
// exceeded.
func (s *Sandbox) Charge(L *lua.LState) {
	if s.callLimit <= 0 {
		return
	}
	if atomic.AddInt64(&s.calls, 1) > s.callLimit {
		s.exceeded.Store(true)
		L.RaiseError("%s", ErrCallLimit)
	}
}

// Grant enables a capability.
func (s *Sandbox) Grant(c Capability) {
	s.mu.Lock()
	already := s.capabilities[c]
	s.capabilities[c] = true
	s.mu.Unlock()

	if c == CapabilityUnsafe && !already {
		// The built-in openers do not raise.
		_ = openLibraries(s.L, unsafeLibraries)
	}
}

// Revoke disables a capability. Libraries already opened stay open.
func (s *Sandbox) Revoke(c Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.capabilities, c)
}

// HasCapability returns true if the capability is granted.
func (s *Sandbox) HasCapability(c Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capabilities[c]
}

// Capabilities returns the granted capabilities, sorted.
func (s *Sandbox) Capabilities() []Capability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	caps := make([]Capability, 0, len(s.capabilities))
	for c, granted := range s.capabilities {
		if granted {
			caps = append(caps, c)
		}
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// CheckCapability returns an error if the capability is not granted.
func (s *Sandbox) CheckCapability(c Capability) error {
	if !s.HasCapability(c) {
		return &CapabilityError{Capability: c}
	}
	return nil
}

// CapabilityError is returned when a capability is not granted.
type CapabilityError struct {
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return "capability not granted: " + string(e.Capability)
}
