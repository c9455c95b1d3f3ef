// Package plugin runs user Lua scripts against a document.
//
// A Host owns the editing context and the action registry. Each run gets a
// fresh sandboxed state with the quill API modules injected, so scripts do
// not share globals:
//
//	h, err := plugin.NewHost(hctx, registry,
//	    plugin.WithTimeout(2*time.Second),
//	    plugin.WithCapabilities(lua.CapabilityClipboard),
//	)
//	if err != nil {
//	    return err
//	}
//	if err := h.RunFile(ctx, "wrap.lua"); err != nil {
//	    return err
//	}
//
// A script sees the document through require("quill"); see package api.
package plugin
