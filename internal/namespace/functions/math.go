// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"fmt"
	"math"

	"github.com/mia-platform/pype/internal/expr"
)

// Abs returns the absolute value of a number, keeping integers integral.
func Abs(number any) (any, error) {
	switch v := number.(type) {
	case int64:
		if v < 0 {
			return -v, nil
		}
		return v, nil
	case float64:
		return math.Abs(v), nil
	default:
		return nil, fmt.Errorf("%w: bad operand type for abs: %s", expr.ErrType, expr.TypeName(number))
	}
}

// Ceil returns the least integer greater than or equal to x.
func Ceil(x float64) int64 {
	return int64(math.Ceil(x))
}

// Floor returns the greatest integer less than or equal to x.
func Floor(x float64) int64 {
	return int64(math.Floor(x))
}

// Round rounds x to the given number of decimal places, halves away from zero.
func Round(x float64, places ...int) (float64, error) {
	switch len(places) {
	case 0:
		return math.Round(x), nil
	case 1:
		scale := math.Pow(10, float64(places[0]))
		return math.Round(x*scale) / scale, nil
	default:
		return 0, fmt.Errorf("%w: round accepts at most one precision", expr.ErrArity)
	}
}

// Sqrt returns the square root of x.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: square root of negative number", expr.ErrType)
	}
	return math.Sqrt(x), nil
}

// Pow returns x raised to y.
func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}

// Max returns the largest of its arguments, or of the single list argument.
func Max(values ...any) (any, error) {
	return extreme("max", 1, values)
}

// Min returns the smallest of its arguments, or of the single list argument.
func Min(values ...any) (any, error) {
	return extreme("min", -1, values)
}

func extreme(name string, direction int, values []any) (any, error) {
	if len(values) == 1 {
		if list, ok := values[0].([]any); ok {
			values = list
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s of an empty sequence", expr.ErrArity, name)
	}

	best := values[0]
	for _, candidate := range values[1:] {
		order, err := expr.Compare(candidate, best)
		if err != nil {
			return nil, err
		}
		if order*direction > 0 {
			best = candidate
		}
	}

	return best, nil
}

// Sum adds the numbers of list.
func Sum(list []any) (any, error) {
	var integer int64
	var float float64
	isFloat := false
	for _, item := range list {
		switch v := item.(type) {
		case int64:
			integer += v
		case float64:
			float += v
			isFloat = true
		default:
			return nil, fmt.Errorf("%w: cannot sum %s", expr.ErrType, expr.TypeName(item))
		}
	}

	if isFloat {
		return float + float64(integer), nil
	}
	return integer, nil
}
