package editing

import (
	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/section"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// selectSeparated returns an action selecting the section around the caret.
// With toClipboard set the selection is also put on the clipboard.
func (h *Handler) selectSeparated(separator string, toClipboard bool) actions.Func {
	return func(ctx *host.Context) actions.Result {
		check := actions.RequireEditor
		if toClipboard {
			check = actions.RequireClipboard
		}
		if err := check(ctx); err != nil {
			return actions.Error(err)
		}

		r := section.Select(textrange.NewMutator(ctx.Editor), separator)
		if toClipboard {
			ctx.Clipboard.SetClipboardText(ctx.Editor.SelectedText())
		}
		return actions.Success().WithData("range", r)
	}
}

func selectAll(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	m.SetSelection(0, m.DocumentLength())
	return actions.Success()
}
