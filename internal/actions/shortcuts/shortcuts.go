// Package shortcuts provides actions that gather host metadata into the
// clipboard.
package shortcuts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/host"
)

// Namespace is the action namespace of this package.
const Namespace = "shortcuts"

// ActionCopyAllTags copies every tag known to the host to the clipboard.
const ActionCopyAllTags = "shortcuts.copyAllTags"

// Handler provides the shortcuts namespace.
type Handler struct {
	*actions.BaseNamespaceHandler
}

// NewHandler creates the shortcuts handler.
func NewHandler() *Handler {
	h := &Handler{BaseNamespaceHandler: actions.NewBaseNamespaceHandler(Namespace)}
	h.Register(ActionCopyAllTags, "Copy all tags, sorted, one per line", copyAllTags)
	return h
}

// JoinTags sorts a copy of tags and joins them with newlines.
func JoinTags(tags []string) string {
	sorted := append([]string(nil), tags...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\n")
}

func copyAllTags(ctx *host.Context) actions.Result {
	if ctx == nil || ctx.Tags == nil {
		return actions.Error(fmt.Errorf("%w: tags", actions.ErrMissingCapability))
	}
	if ctx.Clipboard == nil {
		return actions.Error(fmt.Errorf("%w: clipboard", actions.ErrMissingCapability))
	}

	tags := ctx.Tags.QueryAllTags()
	ctx.Clipboard.SetClipboardText(JoinTags(tags))
	return actions.SuccessWithMessage(fmt.Sprintf("copied %d tags", len(tags))).
		WithData("count", len(tags))
}
