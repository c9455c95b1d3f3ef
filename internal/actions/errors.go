package actions

import "errors"

// Errors reported in action results.
var (
	// ErrEmptySelection indicates an action needs selected text.
	ErrEmptySelection = errors.New("empty selection")

	// ErrUnknownAction indicates no handler is registered for an action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrMissingCapability indicates a host provider the action needs is nil.
	ErrMissingCapability = errors.New("missing host capability")

	// ErrPanic indicates an action panicked.
	ErrPanic = errors.New("action panic")
)
