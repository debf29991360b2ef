// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package expr

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Format renders value as text the way it is written to the output.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return formatFloat(v)
	case []any, map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	switch normalized := Normalize(value).(type) {
	case int64, []any, map[string]any:
		return Format(normalized)
	default:
		return fmt.Sprint(normalized)
	}
}

// Repr renders value as source text: strings are quoted, everything else is formatted.
func Repr(value any) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return Format(value)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	formatted := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(formatted, '.') {
		formatted += ".0"
	}
	return formatted
}

// Truthy reports whether value counts as true in a boolean context.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// TypeName returns a short description of the dynamic type of value.
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	case time.Time:
		return "time"
	}

	if reflect.TypeOf(value).Kind() == reflect.Func {
		return "function"
	}
	return reflect.TypeOf(value).String()
}

// Normalize converts Go values returned by called functions into the dynamic kinds
// exchanged with expressions: sized integers become int64, float32 becomes float64,
// byte slices become strings, other slices become []any and string keyed maps become
// map[string]any.
func Normalize(value any) any {
	switch v := value.(type) {
	case nil, bool, int64, float64, string, []any, map[string]any:
		return v
	case int:
		return int64(v)
	case []byte:
		return string(v)
	case []string:
		list := make([]any, len(v))
		for idx, item := range v {
			list[idx] = item
		}
		return list
	case error:
		return v
	case fmt.Stringer:
		return v
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflected.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(reflected.Uint())
	case reflect.Float32, reflect.Float64:
		return reflected.Float()
	case reflect.String:
		return reflected.String()
	case reflect.Bool:
		return reflected.Bool()
	case reflect.Slice, reflect.Array:
		list := make([]any, reflected.Len())
		for idx := range reflected.Len() {
			list[idx] = Normalize(reflected.Index(idx).Interface())
		}
		return list
	case reflect.Map:
		if reflected.Type().Key().Kind() != reflect.String {
			return value
		}
		object := make(map[string]any, reflected.Len())
		iter := reflected.MapRange()
		for iter.Next() {
			object[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return object
	default:
		return value
	}
}

// Equal reports whether a and b hold the same value. Integers and floats compare by
// numeric value.
func Equal(a, b any) bool {
	if x, ok := a.(int64); ok {
		if y, ok := b.(int64); ok {
			return x == y
		}
	}
	if x, y, ok := numericPair(a, b); ok {
		return x == y
	}

	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for idx := range x {
			if !Equal(x[idx], y[idx]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for key, value := range x {
			other, exists := y[key]
			if !exists || !Equal(value, other) {
				return false
			}
		}
		return true
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Compare orders a and b, returning a negative number, zero or a positive number.
// Only numbers with numbers and strings with strings can be ordered.
func Compare(a, b any) (int, error) {
	if x, ok := a.(int64); ok {
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y), nil
		}
	}
	if x, y, ok := numericPair(a, b); ok {
		return cmp.Compare(x, y), nil
	}

	if x, ok := a.(string); ok {
		if y, ok := b.(string); ok {
			return strings.Compare(x, y), nil
		}
	}

	return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrType, TypeName(a), TypeName(b))
}

// numericPair returns both operands as float64 when both are numbers.
func numericPair(a, b any) (float64, float64, bool) {
	x, ok := toFloat(a)
	if !ok {
		return 0, 0, false
	}
	y, ok := toFloat(b)
	if !ok {
		return 0, 0, false
	}
	return x, y, true
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
