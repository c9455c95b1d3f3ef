package api

import (
	"fmt"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/host"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// Version is reported to scripts as quill.version.
const Version = "1.0.0"

// globalPrefix names the temporary globals modules register under.
const globalPrefix = "_quill_"

// Module represents a Lua API module.
type Module interface {
	// Name returns the module name (e.g., "doc", "actions").
	Name() string

	// RequiredCapability returns the capability required to use this module.
	// Returns empty string if no capability is required.
	RequiredCapability() plua.Capability

	// Register registers the module functions into the Lua state under the
	// _quill_<name> global.
	Register(L *lua.LState) error
}

// CapabilityChecker reports granted capabilities. *plua.Sandbox implements it.
type CapabilityChecker interface {
	HasCapability(c plua.Capability) bool
}

// ActionRunner runs registered actions. *actions.Registry implements it.
type ActionRunner interface {
	Run(actionName string, ctx *host.Context) actions.Result
	List() []actions.Info
}

// Context gives API modules access to the host.
type Context struct {
	// Host is the editing context scripts operate on.
	Host *host.Context

	// Actions runs actions for quill.actions. May be nil.
	Actions ActionRunner

	// Sandbox, when set, is charged for every host call.
	Sandbox *plua.Sandbox
}

func (c *Context) charge(L *lua.LState) {
	if c.Sandbox != nil {
		c.Sandbox.Charge(L)
	}
}

func (c *Context) editor(L *lua.LState) host.Editor {
	c.charge(L)
	if c.Host == nil || c.Host.Editor == nil {
		L.RaiseError("no document available")
	}
	return c.Host.Editor
}

// Registry holds the modules offered to one script run. It is built and
// injected by a single goroutine.
type Registry struct {
	modules []Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds mod. Module names must be unique.
func (r *Registry) Register(mod Module) error {
	if _, dup := r.Get(mod.Name()); dup {
		return fmt.Errorf("module %q already registered", mod.Name())
	}
	r.modules = append(r.modules, mod)
	return nil
}

func (r *Registry) Get(name string) (Module, bool) {
	i := slices.IndexFunc(r.modules, func(m Module) bool { return m.Name() == name })
	if i < 0 {
		return nil, false
	}
	return r.modules[i], true
}

// List returns the module names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name()
	}
	slices.Sort(names)
	return names
}

// InjectAll registers every module whose capability checker grants, then
// makes them reachable through require("quill"). A nil checker grants
// nothing, so only capability-free modules are injected.
func (r *Registry) InjectAll(L *lua.LState, checker CapabilityChecker) error {
	var injected []string
	for _, mod := range r.modules {
		if c := mod.RequiredCapability(); c != "" && (checker == nil || !checker.HasCapability(c)) {
			continue
		}
		if err := mod.Register(L); err != nil {
			return fmt.Errorf("register module %q: %w", mod.Name(), err)
		}
		injected = append(injected, mod.Name())
	}
	installLoader(L, injected)
	return nil
}

// installLoader moves the _quill_* globals into the quill module table and
// preloads it so require("quill") works.
func installLoader(L *lua.LState, names []string) {
	mod := L.NewTable()
	for _, name := range names {
		global := globalPrefix + name
		if val := L.GetGlobal(global); val != lua.LNil {
			L.SetField(mod, name, val)
			L.SetGlobal(global, lua.LNil)
		}
	}
	L.SetField(mod, "version", lua.LString(Version))

	L.PreloadModule(plua.ModuleName, func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})
}

// DefaultRegistry returns a registry holding the doc, actions, clipboard
// and util modules bound to ctx.
func DefaultRegistry(ctx *Context) (*Registry, error) {
	r := NewRegistry()
	for _, mod := range []Module{
		NewDocModule(ctx),
		NewActionsModule(ctx),
		NewClipboardModule(ctx),
		NewUtilModule(),
	} {
		if err := r.Register(mod); err != nil {
			return nil, err
		}
	}
	return r, nil
}
