package editing

import (
	"fmt"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

func pasteClipboard(ctx *host.Context) actions.Result {
	if err := actions.RequireClipboard(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	text := ctx.Clipboard.ClipboardText()
	if text == "" && m.SelectedRange().IsEmpty() {
		return actions.NoOpWithMessage("clipboard is empty")
	}
	m.InsertAndPlaceCursorAfter(text, m.CursorPosition())
	return actions.Success()
}

// insertDictation replaces the selection with dictated text. Nothing
// dictated is a no-op.
func insertDictation(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	if ctx.Dictation == nil {
		return actions.Error(fmt.Errorf("%w: dictation", actions.ErrMissingCapability))
	}
	m := textrange.NewMutator(ctx.Editor)
	sel := m.SelectedRange()

	text, ok := ctx.Dictation.Dictate()
	if !ok || text == "" {
		return actions.NoOpWithMessage("nothing dictated")
	}
	m.ReplaceRange(text, sel.Start, sel.Length)
	m.SetCursor(sel.Start + textrange.RuneLen(text))
	ctx.Dictation.Activate()
	return actions.Success()
}
