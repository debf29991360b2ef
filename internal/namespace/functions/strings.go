// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mia-platform/pype/internal/expr"
)

// Quote wraps the string representation of the input value in double quotes.
func Quote(s any) string {
	return fmt.Sprintf("%q", expr.Format(s))
}

// Strip removes all leading and trailing whitespace from the input string.
func Strip(s string) string {
	return strings.TrimSpace(s)
}

// LStrip removes leading whitespace from the input string.
func LStrip(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// RStrip removes trailing whitespace, line terminators included, from the input string.
func RStrip(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// TrimPrefix removes prefix from s when present.
func TrimPrefix(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// TrimSuffix removes suffix from s when present.
func TrimSuffix(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

// Replace substitutes every occurrence of toChange with toBe in s.
func Replace(s, toChange, toBe string) string {
	return strings.ReplaceAll(s, toChange, toBe)
}

// Upper converts the input string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Lower converts the input string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Title uppercases the first letter of every word and lowercases the rest.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Truncate keeps a portion of s based on length.
// A positive length returns the prefix, a negative length preserves the suffix,
// and values outside the string bounds leave s unchanged.
func Truncate(s string, length int) string {
	// length is negative, truncate from the end
	if length < 0 && len(s)+length > 0 {
		return s[len(s)+length:]
	}

	// length is positive, truncate from the beginning
	if length >= 0 && len(s) > length {
		return s[:length]
	}

	return s
}

// Split splits the input string by the given separator. Without a separator the
// string is split around runs of whitespace.
func Split(s string, sep ...string) ([]string, error) {
	switch len(sep) {
	case 0:
		return strings.Fields(s), nil
	case 1:
		return strings.Split(s, sep[0]), nil
	default:
		return nil, fmt.Errorf("%w: split accepts at most one separator", expr.ErrArity)
	}
}

// Join concatenates the string representation of every element of list, placing
// sep between them.
func Join(list []any, sep string) string {
	parts := make([]string, len(list))
	for idx, item := range list {
		parts[idx] = expr.Format(item)
	}

	return strings.Join(parts, sep)
}

// Contains reports whether substr is within s.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Count returns the number of non-overlapping occurrences of substr in s.
func Count(s, substr string) int {
	return strings.Count(s, substr)
}

// Index returns the index of the first occurrence of substr in s, or -1.
func Index(s, substr string) int {
	return strings.Index(s, substr)
}

// Repeat returns count copies of s.
func Repeat(s string, count int) (string, error) {
	if count < 0 {
		return "", fmt.Errorf("%w: negative repeat count %d", expr.ErrValue, count)
	}
	if count > 0 && len(s) > math.MaxInt/count {
		return "", fmt.Errorf("%w: repeat count %d overflows the result length", expr.ErrValue, count)
	}

	return strings.Repeat(s, count), nil
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string {
	return strings.Fields(s)
}
