package transform

import (
	"golang.org/x/text/language"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

// Namespace is the action namespace of this package.
const Namespace = "transform"

// Action names.
const (
	ActionRemoveWhitespace = "transform.removeWhitespace"
	ActionTrimWhitespace   = "transform.trimWhitespace"
	ActionLowerCase        = "transform.lowerCase"
	ActionUpperCase        = "transform.upperCase"
	ActionTitleCase        = "transform.titleCase"
	ActionCapitalize       = "transform.capitalize"
	ActionMemeCase         = "transform.memeCase"
	ActionSnakeCase        = "transform.snakeCase"
	ActionHyphenCase       = "transform.hyphenCase"
	ActionPascalCase       = "transform.pascalCase"
	ActionCamelCase        = "transform.camelCase"
	ActionSortLines        = "transform.sortLines"
)

// Options configures the transform actions.
type Options struct {
	// SortLanguage selects the collation for sortLines. Defaults to
	// language.Und.
	SortLanguage language.Tag
}

// Handler provides the transform namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
	opts Options
}

// NewHandler creates the transform handler.
func NewHandler(opts Options) *Handler {
	h := &Handler{
		BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace),
		opts:                 opts,
	}
	h.Register(ActionRemoveWhitespace, "Remove all whitespace from the selection", replaceSelection(RemoveWhitespace))
	h.Register(ActionTrimWhitespace, "Trim the selection and collapse whitespace", replaceSelection(RemoveExtraWhitespace))
	h.Register(ActionLowerCase, "Lowercase the selection", replaceSelection(LowerCase))
	h.Register(ActionUpperCase, "Uppercase the selection", replaceSelection(UpperCase))
	h.Register(ActionTitleCase, "Title-case the selection", replaceSelection(TitleCase))
	h.Register(ActionCapitalize, "Capitalize the selection", replaceSelection(Capitalize))
	h.Register(ActionMemeCase, "aLtErNaTe the case of the selection", replaceSelection(MemeCase))
	h.Register(ActionSnakeCase, "Join the selected words with underscores", replaceSelection(SnakeCase))
	h.Register(ActionHyphenCase, "Join the selected words with hyphens", replaceSelection(HyphenCase))
	h.Register(ActionPascalCase, "PascalCase the selection", replaceSelection(PascalCase))
	h.Register(ActionCamelCase, "camelCase the selection", replaceSelection(CamelCase))
	h.Register(ActionSortLines, "Sort the selected lines", replaceSelection(func(s string) string {
		return SortLines(s, h.opts.SortLanguage)
	}))
	return h
}

// replaceSelection returns an action replacing the selected text with
// fn(selected text). An empty selection is an error and leaves the document
// unchanged.
func replaceSelection(fn func(string) string) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireEditor(ctx); err != nil {
			return actions.Error(err)
		}
		m := textrange.NewMutator(ctx.Editor)
		selected := m.SelectedText()
		if selected == "" {
			return actions.Error(actions.ErrEmptySelection)
		}
		out := fn(selected)
		if out == selected {
			return actions.NoOp()
		}
		m.ReplaceSelection(out)
		return actions.Success()
	}
}
