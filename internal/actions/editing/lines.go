package editing

import (
	"strings"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// copyLineUp inserts a copy of the current line above it. The caret keeps
// its offset, which puts it on the new upper copy.
func copyLineUp(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	line := m.CurrentLineRange()
	text := m.TextInRange(line.Start, line.Length)
	cursor := m.CursorPosition()

	m.ReplaceRange(text+"\n", line.Start, 0)
	m.SetCursor(cursor)
	return actions.Success()
}

// copyLineDown inserts a copy of the current line below it and moves the
// caret to the same column on the copy.
func copyLineDown(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	line := m.CurrentLineRange()
	text := m.TextInRange(line.Start, line.Length)
	cursor := m.CursorPosition()

	m.ReplaceRange("\n"+text, line.End(), 0)
	m.SetCursor(cursor + line.Length + 1)
	return actions.Success()
}

func copyLineToClipboard(ctx *host.Context) actions.Result {
	if err := actions.RequireClipboard(ctx); err != nil {
		return actions.Error(err)
	}
	text := textrange.NewAccessor(ctx.Editor).SelectionOrCurrentLineText()
	ctx.Clipboard.SetClipboardText(text)
	return actions.Success().WithData("text", text)
}

// cutLine moves the selection, or the current line, to the clipboard. A
// line's terminating newline is left in place.
func cutLine(ctx *host.Context) actions.Result {
	if err := actions.RequireClipboard(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	r := m.SelectionOrCurrentLineRange()
	text := m.TextInRange(r.Start, r.Length)

	ctx.Clipboard.SetClipboardText(text)
	m.SetSelectionKeepNewline(r.Start, r.Length)
	m.ReplaceSelection("")
	return actions.Success().WithData("text", text)
}

// deleteLine empties the current line.
//
// Afterwards the caret goes to the start of the emptied line when any
// non-blank text follows, probed from two characters before the old line
// end. Otherwise it goes to the start of the previous line.
func deleteLine(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	line := m.CurrentLineRange()

	m.ReplaceRange("", line.Start, line.Length)

	remaining := m.TextInRange(line.Start+line.Length-2, m.DocumentLength())
	if strings.TrimSpace(remaining) != "" {
		m.SetCursor(line.Start)
		return actions.Success()
	}

	m.SetCursor(max(line.Start-1, 0))
	m.SetCursor(m.CurrentLineRange().Start)
	return actions.Success()
}
