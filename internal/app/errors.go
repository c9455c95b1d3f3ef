// Package app wires configuration, logging, the action registry and the
// script host into the quill application.
package app

import (
	"errors"
	"strings"
)

var (
	// ErrInitialization matches every *ComponentError.
	ErrInitialization = errors.New("initialization failed")

	// ErrNoDocument is returned when a run has no editor to act on.
	ErrNoDocument = errors.New("no document")
)

// OperationError identifies the action or script that failed.
type OperationError struct {
	Op     string // "action" or "script"
	Target string // action name or script path
	Err    error
}

// NewOperationError wraps err for the named operation.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	return joinError([]string{e.Op, e.Target}, " ", e.Err)
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ComponentError reports a component that could not be set up.
type ComponentError struct {
	Component string // e.g. "config"
	Action    string // e.g. "load"
	Err       error
}

// NewComponentError wraps err for component.
func NewComponentError(component, action string, err error) *ComponentError {
	return &ComponentError{Component: component, Action: action, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	return joinError([]string{e.Component, e.Action}, ": ", e.Err)
}

func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ComponentError) Is(target error) bool {
	return e != nil && target == ErrInitialization
}

// joinError joins the non-empty parts with sep and appends ": err".
func joinError(parts []string, sep string, err error) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	msg := strings.Join(kept, sep)
	if err != nil {
		msg += ": " + err.Error()
	}
	return msg
}
