package actions

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/dshills/quill/internal/host"
)

// Registry routes action names to namespace handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string][]NamespaceHandler // namespace -> handlers in registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string][]NamespaceHandler),
	}
}

// RegisterNamespace adds a handler. Several handlers may share a namespace;
// the first one that can handle an action wins.
func (r *Registry) RegisterNamespace(h NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ns := h.Namespace()
	r.handlers[ns] = append(r.handlers[ns], h)
}

// Lookup returns the handler for actionName, or nil.
func (r *Registry) Lookup(actionName string) NamespaceHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.handlers[Namespace(actionName)] {
		if h.CanHandle(actionName) {
			return h
		}
	}
	return nil
}

// Has returns true if an action is registered under actionName.
func (r *Registry) Has(actionName string) bool {
	return r.Lookup(actionName) != nil
}

// Run executes an action. Unknown names and panics become error results.
func (r *Registry) Run(actionName string, ctx *host.Context) (result Result) {
	h := r.Lookup(actionName)
	if h == nil {
		return Error(fmt.Errorf("%w: %s", ErrUnknownAction, actionName))
	}

	defer func() {
		if p := recover(); p != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = Error(fmt.Errorf("%w for %s: %v\n%s", ErrPanic, actionName, p, stack[:n]))
		}
	}()
	return h.HandleAction(actionName, ctx)
}

// List returns every registered action sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Info
	for _, hs := range r.handlers {
		for _, h := range hs {
			out = append(out, h.Actions()...)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Namespaces returns the registered namespaces, sorted.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for ns := range r.handlers {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	return len(r.List())
}
