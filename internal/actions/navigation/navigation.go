// Package navigation provides caret movement actions.
package navigation

import (
	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// Namespace is the action namespace of this package.
const Namespace = "navigation"

// Action names.
const (
	ActionMoveCursorLeft       = "navigation.moveCursorLeft"
	ActionMoveCursorRight      = "navigation.moveCursorRight"
	ActionJumpToPreviousHeader = "navigation.jumpToPreviousHeader"
	ActionJumpToNextHeader     = "navigation.jumpToNextHeader"
)

// headerMarker starts a markdown header on any line but the first.
const headerMarker = "\n#"

// Handler provides the navigation namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
}

// NewHandler creates the navigation handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace)}
	h.Register(ActionMoveCursorLeft, "Move the caret one character left", moveCursorLeft)
	h.Register(ActionMoveCursorRight, "Move the caret one character right", moveCursorRight)
	h.Register(ActionJumpToPreviousHeader, "Move the caret to the previous markdown header", jumpToPreviousHeader)
	h.Register(ActionJumpToNextHeader, "Move the caret to the next markdown header", jumpToNextHeader)
	return h
}

func moveCursorLeft(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	start := m.CursorPosition()
	if start <= 0 {
		return actions.NoOp()
	}
	m.SetCursor(start - 1)
	return actions.Success()
}

func moveCursorRight(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	start := m.CursorPosition()
	if start >= m.DocumentLength() {
		return actions.NoOp()
	}
	m.SetCursor(start + 1)
	return actions.Success()
}

// jumpToPreviousHeader moves to the start of the closest header line before
// the caret, or to the start of the document.
func jumpToPreviousHeader(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	pos := m.PreviousOccurrenceIndex(headerMarker, m.CursorPosition()) + 1
	if pos == 1 {
		pos = 0
	}
	m.SetCursor(pos)
	return actions.Success()
}

// jumpToNextHeader moves to the start of the next header line after the
// caret, or to the end of the document.
func jumpToNextHeader(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	pos := m.NextOccurrenceIndex(headerMarker, m.CursorPosition()) + 1
	m.SetCursor(min(pos, m.DocumentLength()))
	return actions.Success()
}
