package editing

import (
	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/section"
)

// Namespace is the action namespace of this package.
const Namespace = "editing"

// Action names.
const (
	ActionCopyLineUp          = "editing.copyLineUp"
	ActionCopyLineDown        = "editing.copyLineDown"
	ActionCopyLineToClipboard = "editing.copyLineToClipboard"
	ActionCutLine             = "editing.cutLine"
	ActionDeleteLine          = "editing.deleteLine"
	ActionPasteClipboard      = "editing.pasteClipboard"
	ActionInsertDictation     = "editing.insertDictation"
	ActionSelectLine          = "editing.selectLine"
	ActionSelectParagraph     = "editing.selectParagraph"
	ActionSelectResponse      = "editing.selectResponse"
	ActionSelectAll           = "editing.selectAll"
)

// Options configures the editing actions.
type Options struct {
	// ResponseSeparator delimits blocks for selectResponse. Defaults to "---".
	ResponseSeparator string
}

// Handler provides the editing namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
	opts Options
}

// NewHandler creates the editing handler.
func NewHandler(opts Options) *Handler {
	if opts.ResponseSeparator == "" {
		opts.ResponseSeparator = section.Response
	}
	h := &Handler{
		BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace),
		opts:                 opts,
	}

	h.Register(ActionCopyLineUp, "Duplicate the current line above it", copyLineUp)
	h.Register(ActionCopyLineDown, "Duplicate the current line below it", copyLineDown)
	h.Register(ActionCopyLineToClipboard, "Copy the selection or current line to the clipboard", copyLineToClipboard)
	h.Register(ActionCutLine, "Cut the selection or current line to the clipboard", cutLine)
	h.Register(ActionDeleteLine, "Delete the content of the current line", deleteLine)
	h.Register(ActionPasteClipboard, "Replace the selection with the clipboard", pasteClipboard)
	h.Register(ActionInsertDictation, "Replace the selection with dictated text", insertDictation)
	h.Register(ActionSelectLine, "Select the current line", h.selectSeparated(section.Line, false))
	h.Register(ActionSelectParagraph, "Select the current paragraph", h.selectSeparated(section.Paragraph, false))
	h.Register(ActionSelectResponse, "Select the current response block and copy it", h.selectSeparated(opts.ResponseSeparator, true))
	h.Register(ActionSelectAll, "Select the whole document", selectAll)
	return h
}
