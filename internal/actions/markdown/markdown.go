package markdown

import (
	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// Namespace is the action namespace of this package.
const Namespace = "markdown"

// Action names.
const (
	ActionBold                     = "markdown.bold"
	ActionItalic                   = "markdown.italic"
	ActionCode                     = "markdown.code"
	ActionCodeBlock                = "markdown.codeBlock"
	ActionLink                     = "markdown.link"
	ActionImage                    = "markdown.image"
	ActionToggleTasks              = "markdown.toggleTasks"
	ActionToggleCheckboxes         = "markdown.toggleCheckboxes"
	ActionLinebreakKeepIndentation = "markdown.linebreakKeepIndentation"
)

// Options sets the markers used by the highlight actions. Empty fields take
// the defaults.
type Options struct {
	Bold        string
	Italic      string
	Code        string
	FencePrefix string
	FenceSuffix string
}

// DefaultOptions returns the standard markdown markers.
func DefaultOptions() Options {
	return Options{
		Bold:        "**",
		Italic:      "*",
		Code:        "`",
		FencePrefix: "```\n",
		FenceSuffix: "\n```",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Bold == "" {
		o.Bold = d.Bold
	}
	if o.Italic == "" {
		o.Italic = d.Italic
	}
	if o.Code == "" {
		o.Code = d.Code
	}
	if o.FencePrefix == "" {
		o.FencePrefix = d.FencePrefix
	}
	if o.FenceSuffix == "" {
		o.FenceSuffix = d.FenceSuffix
	}
	return o
}

// Handler provides the markdown namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
	opts Options
}

// NewHandler creates the markdown handler.
func NewHandler(opts Options) *Handler {
	h := &Handler{
		BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace),
		opts:                 opts.withDefaults(),
	}

	h.Register(ActionBold, "Toggle bold around the selection", h.symmetric(h.opts.Bold))
	h.Register(ActionItalic, "Toggle italic around the selection", h.symmetric(h.opts.Italic))
	h.Register(ActionCode, "Toggle inline code around the selection", h.symmetric(h.opts.Code))
	h.Register(ActionCodeBlock, "Toggle a fenced code block around the selection", h.asymmetric(h.opts.FencePrefix, h.opts.FenceSuffix))
	h.Register(ActionLink, "Insert a markdown link using the clipboard URL", linkAction(""))
	h.Register(ActionImage, "Insert a markdown image using the clipboard URL", linkAction("!"))
	h.Register(ActionToggleTasks, "Add or remove task markers on the selected lines", toggleLines(ToggleTasks))
	h.Register(ActionToggleCheckboxes, "Check or uncheck task checkboxes on the selected lines", toggleLines(ToggleCheckboxes))
	h.Register(ActionLinebreakKeepIndentation, "Start a new line keeping the current indentation", linebreakKeepIndentation)
	return h
}

// Options returns the markers in use.
func (h *Handler) Options() Options {
	return h.opts
}

func (h *Handler) symmetric(marker string) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireEditor(ctx); err != nil {
			return actions.Error(err)
		}
		outcome := highlight.ToggleSymmetric(textrange.NewMutator(ctx.Editor), marker)
		return actions.SuccessWithMessage(outcome.String())
	}
}

func (h *Handler) asymmetric(prefix, suffix string) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireEditor(ctx); err != nil {
			return actions.Error(err)
		}
		outcome := highlight.ToggleAsymmetric(textrange.NewMutator(ctx.Editor), prefix, suffix)
		return actions.SuccessWithMessage(outcome.String())
	}
}
