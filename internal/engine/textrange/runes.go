package textrange

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuneLen returns the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// byteOffset converts a character offset into s to a byte offset, clamped to
// [0, len(s)].
func byteOffset(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	n := 0
	for i := range s {
		if n == offset {
			return i
		}
		n++
	}
	return len(s)
}

// lastIndex is strings.LastIndex in characters.
func lastIndex(s, substr string) int {
	i := strings.LastIndex(s, substr)
	if i < 0 {
		return -1
	}
	return RuneLen(s[:i])
}

// isBlank reports whether s is empty or only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func trimLeftSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
