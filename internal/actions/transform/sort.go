package transform

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortLines sorts the lines of s in locale order.
func SortLines(s string, tag language.Tag) string {
	lines := strings.Split(s, "\n")
	c := collate.New(tag)
	sort.SliceStable(lines, func(i, j int) bool {
		return c.CompareString(lines[i], lines[j]) < 0
	})
	return strings.Join(lines, "\n")
}
