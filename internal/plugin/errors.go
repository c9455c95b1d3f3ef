package plugin

import "errors"

// Script host errors.
var (
	// ErrScriptNotFound is returned when a script file cannot be located.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNoEditor is returned when the host context has no editor.
	ErrNoEditor = errors.New("host context has no editor")
)
