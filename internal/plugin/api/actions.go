package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/actions"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// ActionsModule implements the quill.actions API module.
type ActionsModule struct {
	ctx *Context
}

// NewActionsModule creates a new actions module.
func NewActionsModule(ctx *Context) *ActionsModule {
	return &ActionsModule{ctx: ctx}
}

// Name returns the module name.
func (m *ActionsModule) Name() string {
	return "actions"
}

// RequiredCapability returns the capability required for this module.
func (m *ActionsModule) RequiredCapability() plua.Capability {
	return ""
}

// Register registers the module into the Lua state.
func (m *ActionsModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "run", L.NewFunction(m.run))
	L.SetField(mod, "has", L.NewFunction(m.has))
	L.SetField(mod, "list", L.NewFunction(m.list))

	L.SetGlobal(globalPrefix+m.Name(), mod)
	return nil
}

func (m *ActionsModule) runner(L *lua.LState) ActionRunner {
	m.ctx.charge(L)
	if m.ctx.Actions == nil {
		L.RaiseError("no action registry available")
	}
	return m.ctx.Actions
}

// run(name) -> status, message, data
// On failure returns nil and the error message.
func (m *ActionsModule) run(L *lua.LState) int {
	name := L.CheckString(1)

	res := m.runner(L).Run(name, m.ctx.Host)
	if res.Status == actions.StatusError {
		L.Push(lua.LNil)
		if res.Error != nil {
			L.Push(lua.LString(res.Error.Error()))
		} else {
			L.Push(lua.LString(res.Message))
		}
		return 2
	}

	L.Push(lua.LString(res.Status.String()))
	L.Push(lua.LString(res.Message))
	if len(res.Data) == 0 {
		L.Push(lua.LNil)
	} else {
		L.Push(plua.ToLua(L, res.Data))
	}
	return 3
}

// has(name) -> bool
func (m *ActionsModule) has(L *lua.LState) int {
	name := L.CheckString(1)
	for _, info := range m.runner(L).List() {
		if info.Name == name {
			L.Push(lua.LTrue)
			return 1
		}
	}
	L.Push(lua.LFalse)
	return 1
}

// list() -> {{name=, description=}, ...}
func (m *ActionsModule) list(L *lua.LState) int {
	infos := m.runner(L).List()

	tbl := L.CreateTable(len(infos), 0)
	for i, info := range infos {
		entry := L.NewTable()
		entry.RawSetString("name", lua.LString(info.Name))
		entry.RawSetString("description", lua.LString(info.Description))
		tbl.RawSetInt(i+1, entry)
	}
	L.Push(tbl)
	return 1
}
