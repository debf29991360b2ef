// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mia-platform/pype/internal/expr"
)

// Len returns the number of characters of a string or the number of items of a
// list or object.
func Len(value any) (int, error) {
	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v), nil
	case []any:
		return len(v), nil
	case map[string]any:
		return len(v), nil
	default:
		return 0, fmt.Errorf("%w: %s has no length", expr.ErrType, expr.TypeName(value))
	}
}

// Str returns the text representation of value.
func Str(value any) string {
	return expr.Format(value)
}

// Int converts value to an integer. Strings are parsed in base 10 after trimming
// surrounding whitespace and floats are truncated toward zero.
func Int(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: cannot convert %s to int", expr.ErrType, expr.Format(v))
		}
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid literal for int: %s", expr.ErrType, expr.Repr(v))
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %s to int", expr.ErrType, expr.TypeName(value))
	}
}

// Float converts value to a float. Strings are parsed after trimming surrounding
// whitespace.
func Float(value any) (float64, error) {
	switch v := value.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: could not convert string to float: %s", expr.ErrType, expr.Repr(v))
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %s to float", expr.ErrType, expr.TypeName(value))
	}
}

// Bool reports the truth value of value.
func Bool(value any) bool {
	return expr.Truthy(value)
}

// Repr returns the source representation of value, quoting strings.
func Repr(value any) string {
	return expr.Repr(value)
}

// Type returns the name of the dynamic type of value.
func Type(value any) string {
	return expr.TypeName(value)
}

// Range returns the integers from start up to stop, excluded, advancing by step.
// With one argument the sequence starts at zero.
func Range(bounds ...int) ([]int, error) {
	start, stop, step := 0, 0, 1
	switch len(bounds) {
	case 1:
		stop = bounds[0]
	case 2:
		start, stop = bounds[0], bounds[1]
	case 3:
		start, stop, step = bounds[0], bounds[1], bounds[2]
	default:
		return nil, fmt.Errorf("%w: range expects 1 to 3 arguments, got %d", expr.ErrArity, len(bounds))
	}

	if step == 0 {
		return nil, fmt.Errorf("%w: range step must not be zero", expr.ErrType)
	}

	values := make([]int, 0)
	for current := start; (step > 0 && current < stop) || (step < 0 && current > stop); current += step {
		values = append(values, current)
	}
	return values, nil
}

// Any reports whether at least one item of list is truthy.
func Any(list []any) bool {
	for _, item := range list {
		if expr.Truthy(item) {
			return true
		}
	}
	return false
}

// All reports whether every item of list is truthy.
func All(list []any) bool {
	for _, item := range list {
		if !expr.Truthy(item) {
			return false
		}
	}
	return true
}
