package markdown

import (
	"strings"
	"unicode"

	"github.com/dshills/quill/internal/actions"
	"github.com/dshills/quill/internal/engine/textrange"
	"github.com/dshills/quill/internal/host"
)

const (
	uncheckedBox  = "[ ]"
	checkedBox    = "[x]"
	uncheckedTask = "- " + uncheckedBox
	checkedTask   = "- " + checkedBox
)

var (
	taskPatterns     = []string{uncheckedTask, checkedTask}
	checkboxPatterns = []string{uncheckedBox, checkedBox, uncheckedTask, checkedTask}
)

func hasPattern(line string, patterns []string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range patterns {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func anyLine(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if pred(line) {
			return true
		}
	}
	return false
}

func mapLines(lines []string, fn func(string) string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = fn(line)
	}
	return strings.Join(out, "\n")
}

func isTask(line string) bool {
	return hasPattern(line, taskPatterns)
}

// removeTaskMarker drops task markers and surrounding whitespace.
func removeTaskMarker(line string) string {
	for _, p := range taskPatterns {
		line = strings.TrimSpace(strings.Replace(line, p, "", 1))
	}
	return line
}

// addTaskMarker turns a line into an unchecked task. Indentation is kept and
// an existing "-" bullet is replaced. Tasks and blank lines are unchanged.
func addTaskMarker(line string) string {
	if isTask(line) || strings.TrimSpace(line) == "" {
		return line
	}
	body := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := line[:len(line)-len(body)]
	if strings.HasPrefix(body, "-") {
		body = strings.TrimLeftFunc(body[1:], unicode.IsSpace)
	}
	return indent + uncheckedTask + " " + body
}

// ToggleTasks removes task markers from every line if any line is a task,
// and adds them to every non-blank line otherwise.
func ToggleTasks(text string) string {
	lines := strings.Split(text, "\n")
	if anyLine(lines, isTask) {
		return mapLines(lines, removeTaskMarker)
	}
	return mapLines(lines, addTaskMarker)
}

func hasCheckbox(line string) bool {
	return hasPattern(line, checkboxPatterns)
}

func isChecked(line string) bool {
	return hasCheckbox(line) && strings.Contains(line, checkedBox)
}

// ToggleCheckboxes unchecks every checkbox if any is checked and checks
// every checkbox otherwise.
func ToggleCheckboxes(text string) string {
	lines := strings.Split(text, "\n")
	if anyLine(lines, isChecked) {
		return mapLines(lines, func(line string) string {
			if !hasCheckbox(line) {
				return line
			}
			return strings.Replace(line, checkedBox, uncheckedBox, 1)
		})
	}
	return mapLines(lines, func(line string) string {
		if !hasCheckbox(line) {
			return line
		}
		return strings.Replace(line, uncheckedBox, checkedBox, 1)
	})
}

// toggleLines applies fn to the selection, or the current line, and puts
// the caret at the effective end of the result.
func toggleLines(fn func(string) string) actions.Func {
	return func(ctx *host.Context) actions.Result {
		if err := actions.RequireEditor(ctx); err != nil {
			return actions.Error(err)
		}
		m := textrange.NewMutator(ctx.Editor)
		r := m.SelectionOrCurrentLineRange()
		text := m.TextInRange(r.Start, r.Length)
		toggled := fn(text)
		if toggled == text {
			return actions.NoOp()
		}

		m.SetSelection(r.Start, r.Length)
		m.ReplaceSelection(toggled)
		m.SetCursor(m.EffectiveEnd(r.Start, textrange.RuneLen(toggled)))
		return actions.Success()
	}
}
