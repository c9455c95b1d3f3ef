// Package lua provides the sandboxed Lua runtime used to run user scripts.
//
// This package wraps the gopher-lua library to provide:
//   - A Lua state with only the safe standard libraries opened
//   - A whitelist-based require
//   - Capability grants for host features such as the clipboard
//   - A per-run execution timeout and host call limit
//
// # State
//
//	state, err := lua.NewState(
//	    lua.WithExecutionTimeout(2 * time.Second),
//	    lua.WithCallLimit(10_000),
//	)
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	if err := state.DoFile(ctx, "script.lua"); err != nil {
//	    return err
//	}
//
// The timeout is enforced through the state's context, so it interrupts
// pure Lua loops as well. The call limit counts calls into host modules;
// modules report each call through Sandbox.Charge.
//
// # Capabilities
//
//	state.Sandbox().Grant(lua.CapabilityClipboard)
//
// Available capabilities:
//   - CapabilityClipboard: read and write the host clipboard
//   - CapabilityUnsafe: open the io, os and debug libraries
package lua
