package api

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/section"
	"github.com/dshills/quill/internal/engine/textrange"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// DocModule implements the quill.doc API module.
type DocModule struct {
	ctx *Context
}

// NewDocModule creates a new document module.
func NewDocModule(ctx *Context) *DocModule {
	return &DocModule{ctx: ctx}
}

// Name returns the module name.
func (m *DocModule) Name() string {
	return "doc"
}

// RequiredCapability returns the capability required for this module.
func (m *DocModule) RequiredCapability() plua.Capability {
	return ""
}

// Register registers the module into the Lua state.
func (m *DocModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "len", L.NewFunction(m.docLen))
	L.SetField(mod, "set_text", L.NewFunction(m.setText))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "selected_text", L.NewFunction(m.selectedText))
	L.SetField(mod, "set_selection", L.NewFunction(m.setSelection))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "set_cursor", L.NewFunction(m.setCursor))
	L.SetField(mod, "text_in_range", L.NewFunction(m.textInRange))
	L.SetField(mod, "replace_selection", L.NewFunction(m.replaceSelection))
	L.SetField(mod, "replace_range", L.NewFunction(m.replaceRange))
	L.SetField(mod, "current_line", L.NewFunction(m.currentLine))
	L.SetField(mod, "current_line_range", L.NewFunction(m.currentLineRange))
	L.SetField(mod, "select_section", L.NewFunction(m.selectSection))
	L.SetField(mod, "toggle", L.NewFunction(m.toggle))
	L.SetField(mod, "is_highlighted", L.NewFunction(m.isHighlighted))

	L.SetGlobal(globalPrefix+m.Name(), mod)
	return nil
}

func (m *DocModule) mutator(L *lua.LState) *textrange.Mutator {
	return textrange.NewMutator(m.ctx.editor(L))
}

// text() -> string
func (m *DocModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.mutator(L).DocumentText()))
	return 1
}

// len() -> number
// Returns the document length in characters.
func (m *DocModule) docLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.mutator(L).DocumentLength()))
	return 1
}

// set_text(text)
// Replaces the whole document; the selection becomes a caret at 0.
func (m *DocModule) setText(L *lua.LState) int {
	text := L.CheckString(1)
	m.mutator(L).SetDocumentText(text)
	return 0
}

// selection() -> start, length
func (m *DocModule) selection(L *lua.LState) int {
	r := m.mutator(L).SelectedRange()
	L.Push(lua.LNumber(r.Start))
	L.Push(lua.LNumber(r.Length))
	return 2
}

// selected_text() -> string
func (m *DocModule) selectedText(L *lua.LState) int {
	L.Push(lua.LString(m.mutator(L).SelectedText()))
	return 1
}

// set_selection(start, length)
func (m *DocModule) setSelection(L *lua.LState) int {
	start := L.CheckInt(1)
	length := L.OptInt(2, 0)
	m.mutator(L).SetSelection(start, length)
	return 0
}

// cursor() -> number
func (m *DocModule) cursor(L *lua.LState) int {
	L.Push(lua.LNumber(m.mutator(L).CursorPosition()))
	return 1
}

// set_cursor(offset)
func (m *DocModule) setCursor(L *lua.LState) int {
	offset := L.CheckInt(1)
	m.mutator(L).SetCursor(offset)
	return 0
}

// text_in_range(start, length) -> string
func (m *DocModule) textInRange(L *lua.LState) int {
	start := L.CheckInt(1)
	length := L.CheckInt(2)
	L.Push(lua.LString(m.mutator(L).TextInRange(start, length)))
	return 1
}

// replace_selection(text)
// The inserted text is selected afterwards.
func (m *DocModule) replaceSelection(L *lua.LState) int {
	text := L.CheckString(1)
	m.mutator(L).ReplaceSelection(text)
	return 0
}

// replace_range(start, length, text)
func (m *DocModule) replaceRange(L *lua.LState) int {
	start := L.CheckInt(1)
	length := L.CheckInt(2)
	text := L.CheckString(3)
	if length < 0 {
		L.ArgError(2, "length must be non-negative")
		return 0
	}
	m.mutator(L).ReplaceRange(text, start, length)
	return 0
}

// current_line() -> string
// Returns the current line without its trailing newline.
func (m *DocModule) currentLine(L *lua.LState) int {
	L.Push(lua.LString(m.mutator(L).CurrentLineText()))
	return 1
}

// current_line_range() -> start, length
func (m *DocModule) currentLineRange(L *lua.LState) int {
	r := m.mutator(L).CurrentLineRange()
	L.Push(lua.LNumber(r.Start))
	L.Push(lua.LNumber(r.Length))
	return 2
}

// select_section(separator) -> start, length
// Selects the trimmed span between the separators around the caret.
func (m *DocModule) selectSection(L *lua.LState) int {
	sep := L.OptString(1, section.Line)
	if sep == "" {
		L.ArgError(1, "separator must not be empty")
		return 0
	}
	r := section.Select(m.mutator(L), sep)
	L.Push(lua.LNumber(r.Start))
	L.Push(lua.LNumber(r.Length))
	return 2
}

// toggle(prefix [, suffix]) -> "inserted" | "added" | "removed"
// Toggles symmetric markup when suffix is omitted.
func (m *DocModule) toggle(L *lua.LState) int {
	prefix := L.CheckString(1)
	if prefix == "" {
		L.ArgError(1, "marker must not be empty")
		return 0
	}

	mut := m.mutator(L)
	var outcome highlight.Outcome
	if L.GetTop() >= 2 {
		outcome = highlight.ToggleAsymmetric(mut, prefix, L.CheckString(2))
	} else {
		outcome = highlight.ToggleSymmetric(mut, prefix)
	}
	L.Push(lua.LString(outcome.String()))
	return 1
}

// is_highlighted(prefix [, suffix]) -> bool
func (m *DocModule) isHighlighted(L *lua.LState) int {
	prefix := L.CheckString(1)
	t := highlight.New(m.mutator(L))
	if L.GetTop() >= 2 {
		L.Push(lua.LBool(t.IsHighlightedAsymmetric(prefix, L.CheckString(2))))
	} else {
		L.Push(lua.LBool(t.IsHighlightedSymmetric(prefix)))
	}
	return 1
}
