package actions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/quill/internal/host"
)

// Func is an action body.
type Func func(ctx *host.Context) Result

// Info describes a registered action.
type Info struct {
	// Name is the fully qualified action name, "namespace.name".
	Name string
	// Description is a one-line summary.
	Description string
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g., "markdown" in
// "markdown.bold").
type NamespaceHandler interface {
	// Namespace returns the namespace prefix.
	Namespace() string

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// HandleAction runs an action within this namespace.
	HandleAction(actionName string, ctx *host.Context) Result

	// Actions lists the actions this handler provides.
	Actions() []Info
}

type entry struct {
	info Info
	fn   Func
}

// BaseNamespaceHandler provides a map-backed NamespaceHandler.
type BaseNamespaceHandler struct {
	namespace string
	actions   map[string]entry
}

// NewBaseNamespaceHandler creates an empty handler for namespace.
func NewBaseNamespaceHandler(namespace string) *BaseNamespaceHandler {
	return &BaseNamespaceHandler{
		namespace: namespace,
		actions:   make(map[string]entry),
	}
}

// Register adds an action. name may be given with or without the namespace
// prefix.
func (h *BaseNamespaceHandler) Register(name, description string, fn Func) {
	full := QualifiedName(h.namespace, name)
	h.actions[full] = entry{info: Info{Name: full, Description: description}, fn: fn}
}

// Namespace implements NamespaceHandler.
func (h *BaseNamespaceHandler) Namespace() string {
	return h.namespace
}

// CanHandle implements NamespaceHandler.
func (h *BaseNamespaceHandler) CanHandle(actionName string) bool {
	_, ok := h.actions[actionName]
	return ok
}

// HandleAction implements NamespaceHandler.
func (h *BaseNamespaceHandler) HandleAction(actionName string, ctx *host.Context) Result {
	e, ok := h.actions[actionName]
	if !ok {
		return Error(fmt.Errorf("%w in namespace %s: %s", ErrUnknownAction, h.namespace, actionName))
	}
	return e.fn(ctx)
}

// Actions implements NamespaceHandler. The list is sorted by name.
func (h *BaseNamespaceHandler) Actions() []Info {
	out := make([]Info, 0, len(h.actions))
	for _, e := range h.actions {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// QualifiedName prefixes name with namespace unless it already has it.
func QualifiedName(namespace, name string) string {
	if strings.HasPrefix(name, namespace+".") {
		return name
	}
	return namespace + "." + name
}

// Namespace returns the namespace part of an action name.
func Namespace(actionName string) string {
	if i := strings.IndexByte(actionName, '.'); i >= 0 {
		return actionName[:i]
	}
	return ""
}

// RequireEditor reports ErrMissingCapability when ctx has no editor.
func RequireEditor(ctx *host.Context) error {
	if ctx == nil || ctx.Editor == nil {
		return fmt.Errorf("%w: editor", ErrMissingCapability)
	}
	return nil
}

// RequireClipboard reports ErrMissingCapability when ctx has no editor or
// clipboard.
func RequireClipboard(ctx *host.Context) error {
	if err := RequireEditor(ctx); err != nil {
		return err
	}
	if ctx.Clipboard == nil {
		return fmt.Errorf("%w: clipboard", ErrMissingCapability)
	}
	return nil
}
