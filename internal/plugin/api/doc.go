// Package api provides the Lua modules exposed to quill scripts.
//
// Scripts reach the host through the "quill" module, which aggregates:
//
//   - quill.doc: the document, selection, sections and highlight toggles
//   - quill.actions: run and list registered actions
//   - quill.clipboard: clipboard access (requires the clipboard capability)
//   - quill.util: string helpers and arithmetic evaluation
//
// Each module implements Module. A Registry injects the modules a script
// is allowed to use into its Lua state and installs the "quill" loader:
//
//	reg, err := api.DefaultRegistry(&api.Context{Host: hctx, Actions: actions})
//	if err != nil {
//	    return err
//	}
//	err = reg.InjectAll(state.LuaState(), state.Sandbox())
//
// From Lua:
//
//	local quill = require("quill")
//	local s, n = quill.doc.selection()
//	quill.doc.toggle("**")
//	quill.actions.run("transform.upperCase")
//
// Offsets are zero-based character offsets, matching the host.
package api
