// Package actions provides the named-action model shared by every action
// family.
//
// An action is a zero-argument procedure identified by "namespace.name"
// (for example "markdown.bold") that reads and edits the host through a
// *host.Context and reports a Result. Families implement NamespaceHandler,
// usually by embedding BaseNamespaceHandler, and are collected in a
// Registry:
//
//	reg := actions.NewRegistry()
//	reg.RegisterNamespace(editing.NewHandler(editing.Options{}))
//	res := reg.Run("editing.deleteLine", ctx)
//
// Actions never panic into the caller. Failures are reported as StatusError
// results; a host capability that yields nothing (an empty dictation, for
// example) is StatusNoOp.
package actions
