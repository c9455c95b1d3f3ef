// Package transform provides whitespace, case and line-sorting actions.
//
// The case transforms first normalise whitespace: the text is trimmed and
// every whitespace run becomes one space. Word-level transforms then work on
// grapheme clusters, so combining sequences and emoji stay intact.
package transform

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RemoveExtraWhitespace trims s and collapses whitespace runs to one space.
func RemoveExtraWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveWhitespace removes all whitespace.
func RemoveWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// LowerCase lowercases the normalised text.
func LowerCase(s string) string {
	return cases.Lower(language.Und).String(RemoveExtraWhitespace(s))
}

// UpperCase uppercases the normalised text.
func UpperCase(s string) string {
	return cases.Upper(language.Und).String(RemoveExtraWhitespace(s))
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// splitFirst returns the first grapheme cluster of s and the rest.
func splitFirst(s string) (string, string) {
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return first, rest
}

// titleWord uppercases the first character of word. Single-character words
// are left alone.
func titleWord(word string) string {
	if uniseg.GraphemeClusterCount(word) <= 1 {
		return word
	}
	first, rest := splitFirst(word)
	return upper(first) + rest
}

// TitleCase uppercases the first character of every word longer than one
// character. The rest of each word is kept as is.
func TitleCase(s string) string {
	words := strings.Split(RemoveExtraWhitespace(s), " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// Capitalize uppercases the first character and lowercases the rest.
func Capitalize(s string) string {
	norm := RemoveExtraWhitespace(s)
	if norm == "" {
		return ""
	}
	first, rest := splitFirst(norm)
	return upper(first) + lower(rest)
}

// MemeCase alternates lower and upper case within each word, starting
// lowercase.
func MemeCase(s string) string {
	words := strings.Split(RemoveExtraWhitespace(s), " ")
	for i, w := range words {
		var sb strings.Builder
		g := uniseg.NewGraphemes(w)
		for n := 0; g.Next(); n++ {
			if n%2 == 0 {
				sb.WriteString(lower(g.Str()))
			} else {
				sb.WriteString(upper(g.Str()))
			}
		}
		words[i] = sb.String()
	}
	return strings.Join(words, " ")
}

// SnakeCase joins the words with underscores.
func SnakeCase(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// HyphenCase joins the words with hyphens.
func HyphenCase(s string) string {
	return strings.Join(strings.Fields(s), "-")
}

// PascalCase title-cases the words and joins them.
func PascalCase(s string) string {
	return strings.ReplaceAll(TitleCase(s), " ", "")
}

// CamelCase is PascalCase with a lowercase first character.
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return ""
	}
	first, rest := splitFirst(pascal)
	return lower(first) + rest
}
