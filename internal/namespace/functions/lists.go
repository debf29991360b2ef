// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"slices"

	"github.com/mia-platform/pype/internal/expr"
)

// List creates a list from the provided elements.
func List(elements ...any) []any {
	return elements
}

// Append returns a new list with elements added after the items of list.
func Append(list []any, elements ...any) []any {
	return slices.Concat(list, elements)
}

// Prepend returns a new list with elements added before the items of list.
func Prepend(list []any, elements ...any) []any {
	return slices.Concat(elements, list)
}

// First returns the first element of a list or the first character of a string.
// Empty inputs return nil.
func First(list any) (any, error) {
	switch v := list.(type) {
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		return v[0], nil
	case string:
		runes := []rune(v)
		if len(runes) == 0 {
			return nil, nil
		}
		return string(runes[0]), nil
	default:
		return nil, fmt.Errorf("%w: cannot find first element of %s", expr.ErrType, expr.TypeName(list))
	}
}

// Last returns the last element of a list or the last character of a string.
// Empty inputs return nil.
func Last(list any) (any, error) {
	switch v := list.(type) {
	case []any:
		if len(v) == 0 {
			return nil, nil
		}
		return v[len(v)-1], nil
	case string:
		runes := []rune(v)
		if len(runes) == 0 {
			return nil, nil
		}
		return string(runes[len(runes)-1]), nil
	default:
		return nil, fmt.Errorf("%w: cannot find last element of %s", expr.ErrType, expr.TypeName(list))
	}
}

// At returns the element at idx, counting negative indexes from the end, or
// defaultValue when idx is out of range.
func At(list []any, idx int, defaultValue any) any {
	if idx < 0 {
		idx += len(list)
	}
	if idx < 0 || idx >= len(list) {
		return defaultValue
	}

	return list[idx]
}

// Reverse returns a reversed copy of a list, or the reversed characters of a string.
func Reverse(list any) (any, error) {
	switch v := list.(type) {
	case []any:
		reversed := slices.Clone(v)
		slices.Reverse(reversed)
		return reversed, nil
	case string:
		runes := []rune(v)
		slices.Reverse(runes)
		return string(runes), nil
	default:
		return nil, fmt.Errorf("%w: cannot reverse %s", expr.ErrType, expr.TypeName(list))
	}
}

// Sort returns a sorted copy of list. Elements must be mutually comparable.
func Sort(list []any) ([]any, error) {
	sorted := slices.Clone(list)
	var sortErr error
	slices.SortStableFunc(sorted, func(a, b any) int {
		order, err := expr.Compare(a, b)
		if err != nil && sortErr == nil {
			sortErr = err
		}
		return order
	})

	if sortErr != nil {
		return nil, sortErr
	}
	return sorted, nil
}

// Uniq returns the elements of list without duplicates, keeping the first occurrence.
func Uniq(list []any) []any {
	unique := make([]any, 0, len(list))
	for _, item := range list {
		if !slices.ContainsFunc(unique, func(seen any) bool { return expr.Equal(seen, item) }) {
			unique = append(unique, item)
		}
	}

	return unique
}
