// Package mathops provides arithmetic actions over the selected text.
//
// Aggregates (sum, product, min, max, mean) read a list of numbers from the
// selection. The list separator is the first of newline, comma, semicolon
// found in the text, falling back to whitespace. evaluate parses the
// selection with package expr.
package mathops

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Errors returned when reading numbers.
var (
	// ErrNoNumbers indicates the text contains no numbers.
	ErrNoNumbers = errors.New("no numbers")

	// ErrInvalidNumber indicates a token is not a number.
	ErrInvalidNumber = errors.New("invalid number")
)

var separators = []string{"\n", ",", ";"}

// Separator returns the list separator used for text. An empty result
// means whitespace.
func Separator(text string) string {
	for _, sep := range separators {
		if strings.Contains(text, sep) {
			return sep
		}
	}
	return ""
}

// ParseNumbers reads the numbers in text. Empty tokens are skipped.
func ParseNumbers(text string) ([]float64, error) {
	var tokens []string
	if sep := Separator(text); sep != "" {
		tokens = strings.Split(text, sep)
	} else {
		tokens = strings.Fields(text)
	}

	nums := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || !isDecimal(tok) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
		}
		nums = append(nums, v)
	}
	if len(nums) == 0 {
		return nil, ErrNoNumbers
	}
	return nums, nil
}

// isDecimal reports whether tok is written in plain decimal notation,
// excluding the NaN, Inf and hex forms strconv also accepts.
func isDecimal(tok string) bool {
	digits := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digits = true
		case strings.ContainsRune("+-.eE", r):
		default:
			return false
		}
	}
	return digits
}

// Sum returns the sum of nums.
func Sum(nums []float64) float64 {
	var s float64
	for _, n := range nums {
		s += n
	}
	return s
}

// Product returns the product of nums.
func Product(nums []float64) float64 {
	p := 1.0
	for _, n := range nums {
		p *= n
	}
	return p
}

// Min returns the smallest of nums, which must not be empty.
func Min(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Min(m, n)
	}
	return m
}

// Max returns the largest of nums, which must not be empty.
func Max(nums []float64) float64 {
	m := nums[0]
	for _, n := range nums[1:] {
		m = math.Max(m, n)
	}
	return m
}

// Mean returns the arithmetic mean of nums, which must not be empty.
func Mean(nums []float64) float64 {
	return Sum(nums) / float64(len(nums))
}

// Format renders v in the shortest decimal form.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
