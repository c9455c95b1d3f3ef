package markdown

import (
	"regexp"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

var (
	indentPattern   = regexp.MustCompile(`^\s*`)
	listItemPattern = regexp.MustCompile(`^\s*([-*+]|\d+\.)\s`)
)

// listIndentation is added after a list item's indentation so the new line
// lines up with the item text.
const listIndentation = "  "

// ContinuationIndent returns the indentation for a line continuing line.
func ContinuationIndent(line string) string {
	indent := indentPattern.FindString(line)
	if listItemPattern.MatchString(line) {
		indent += listIndentation
	}
	return indent
}

// linebreakKeepIndentation inserts a newline at the end of the current line
// followed by its continuation indent.
func linebreakKeepIndentation(ctx *host.Context) actions.Result {
	if err := actions.RequireEditor(ctx); err != nil {
		return actions.Error(err)
	}
	m := textrange.NewMutator(ctx.Editor)
	line := m.CurrentLineRange()
	text := m.TextInRange(line.Start, line.Length)

	end := line.End()
	m.SetCursor(end)
	m.InsertAndPlaceCursorAfter("\n"+ContinuationIndent(text), end)
	return actions.Success()
}
