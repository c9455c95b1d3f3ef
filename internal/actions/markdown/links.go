package markdown

import (
	"regexp"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

var urlPattern = regexp.MustCompile(`(ftp|http|https)://(\w+:?\w*@)?(\S+)(:[0-9]+)?(/|/([\w#!:.?+=&%@\-/]))?`)

// IsURL reports whether s contains a URL.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// Link is a markdown link or image to be inserted at a selection.
type Link struct {
	// Prefix is "!" for images and empty for links.
	Prefix string
	// Text is the selected text used as the link label.
	Text string
	// URL is the link target, empty if unknown.
	URL string
}

// String renders the link.
func (l Link) String() string {
	return l.Prefix + "[" + l.Text + "](" + l.URL + ")"
}

// CaretOffset returns where the caret goes, relative to the start of the
// rendered link: inside the brackets when there is no label, inside the
// parentheses when there is no URL, otherwise after the link.
func (l Link) CaretOffset() int {
	p := textrange.RuneLen(l.Prefix)
	switch {
	case l.Text == "":
		return p + 1
	case l.URL == "":
		return p + textrange.RuneLen(l.Text) + 3
	default:
		return textrange.RuneLen(l.String())
	}
}

func linkAction(prefix string) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireClipboard(ctx); err != nil {
			return actions.Error(err)
		}
		m := textrange.NewMutator(ctx.Editor)

		link := Link{Prefix: prefix, Text: m.SelectedText()}
		if clip := ctx.Clipboard.ClipboardText(); IsURL(clip) {
			link.URL = clip
		}
		start := m.CursorPosition()

		m.ReplaceSelection(link.String())
		m.SetCursor(start + link.CaretOffset())
		return actions.Success().WithData("link", link.String())
	}
}
