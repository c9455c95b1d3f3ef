package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/host"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// ClipboardModule implements the quill.clipboard API module.
type ClipboardModule struct {
	ctx *Context
}

// NewClipboardModule creates a new clipboard module.
func NewClipboardModule(ctx *Context) *ClipboardModule {
	return &ClipboardModule{ctx: ctx}
}

// Name returns the module name.
func (m *ClipboardModule) Name() string {
	return "clipboard"
}

// RequiredCapability returns the capability required for this module.
func (m *ClipboardModule) RequiredCapability() plua.Capability {
	return plua.CapabilityClipboard
}

// Register registers the module into the Lua state.
func (m *ClipboardModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "get", L.NewFunction(m.get))
	L.SetField(mod, "set", L.NewFunction(m.set))

	L.SetGlobal(globalPrefix+m.Name(), mod)
	return nil
}

func (m *ClipboardModule) clipboard(L *lua.LState) host.Clipboard {
	m.ctx.charge(L)
	if m.ctx.Host == nil || m.ctx.Host.Clipboard == nil {
		L.RaiseError("no clipboard available")
	}
	return m.ctx.Host.Clipboard
}

// get() -> string
func (m *ClipboardModule) get(L *lua.LState) int {
	L.Push(lua.LString(m.clipboard(L).ClipboardText()))
	return 1
}

// set(text)
func (m *ClipboardModule) set(L *lua.LState) int {
	text := L.CheckString(1)
	m.clipboard(L).SetClipboardText(text)
	return 0
}
