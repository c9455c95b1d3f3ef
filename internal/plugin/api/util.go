package api

import (
	"strings"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/actions/transform"
	"github.com/dshills/quill/internal/expr"
	plua "github.com/dshills/quill/internal/plugin/lua"
)

// UtilModule implements the quill.util API module.
// Its functions are pure and do not touch the host.
type UtilModule struct{}

// NewUtilModule creates a new util module.
func NewUtilModule() *UtilModule {
	return &UtilModule{}
}

// Name returns the module name.
func (m *UtilModule) Name() string {
	return "util"
}

// RequiredCapability returns the capability required for this module.
func (m *UtilModule) RequiredCapability() plua.Capability {
	return ""
}

// caseFuncs backs util.convert.
var caseFuncs = map[string]func(string) string{
	"lower":      transform.LowerCase,
	"upper":      transform.UpperCase,
	"title":      transform.TitleCase,
	"capitalize": transform.Capitalize,
	"snake":      transform.SnakeCase,
	"hyphen":     transform.HyphenCase,
	"pascal":     transform.PascalCase,
	"camel":      transform.CamelCase,
	"meme":       transform.MemeCase,
}

// Register installs quill.util. The string helpers wrap package strings
// directly; char_len counts runes, the unit document offsets use.
func (m *UtilModule) Register(L *lua.LState) error {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"split": func(L *lua.LState) int {
			pushStrings(L, strings.Split(L.CheckString(1), L.CheckString(2)))
			return 1
		},
		"lines": func(L *lua.LState) int {
			text := strings.ReplaceAll(L.CheckString(1), "\r\n", "\n")
			pushStrings(L, strings.Split(text, "\n"))
			return 1
		},
		"trim":        stringFunc(strings.TrimSpace),
		"starts_with": predicate(strings.HasPrefix),
		"ends_with":   predicate(strings.HasSuffix),
		"contains":    predicate(strings.Contains),
		"join":        join,
		"char_len": func(L *lua.LState) int {
			L.Push(lua.LNumber(utf8.RuneCountInString(L.CheckString(1))))
			return 1
		},
		"convert": convert,
		"eval":    eval,
	})
	L.SetGlobal(globalPrefix+m.Name(), mod)
	return nil
}

func stringFunc(fn func(string) string) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LString(fn(L.CheckString(1))))
		return 1
	}
}

func predicate(fn func(s, arg string) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(fn(L.CheckString(1), L.CheckString(2))))
		return 1
	}
}

func pushStrings(L *lua.LState, parts []string) {
	tbl := L.CreateTable(len(parts), 0)
	for _, part := range parts {
		tbl.Append(lua.LString(part))
	}
	L.Push(tbl)
}

// join(list, sep?) joins the sequence part of list. Non-string items are
// rendered with tostring semantics.
func join(L *lua.LState) int {
	list := L.CheckTable(1)
	sep := L.OptString(2, "")

	var b strings.Builder
	for i := 1; i <= list.Len(); i++ {
		if i > 1 {
			b.WriteString(sep)
		}
		b.WriteString(lua.LVAsString(L.ToStringMeta(list.RawGetInt(i))))
	}
	L.Push(lua.LString(b.String()))
	return 1
}

// convert(style, text) applies one of the case styles in caseFuncs.
func convert(L *lua.LState) int {
	style := L.CheckString(1)
	fn, ok := caseFuncs[style]
	if !ok {
		L.ArgError(1, "unknown style "+style)
		return 0
	}
	L.Push(lua.LString(fn(L.CheckString(2))))
	return 1
}

// eval(expression) returns the value, or nil and a message when the
// expression is not plain arithmetic.
func eval(L *lua.LState) int {
	v, err := expr.Eval(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(v))
	return 1
}
