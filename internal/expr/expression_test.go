// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package expr

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/risor/v2/pkg/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapEnv map[string]any

func (m mapEnv) Globals() map[string]any {
	return m
}

var errFromCalledCode = errors.New("failure from called code")

func testEnv() Env {
	return mapEnv{
		"upper": strings.ToUpper,
		"fail": func(string) (string, error) {
			return "", errFromCalledCode
		},
		"typed": func(string) (string, error) {
			return "", ErrType
		},
		"type": func(v any) string {
			return TypeName(v)
		},
		"range": func(stop int) []int {
			values := make([]int, 0, stop)
			for idx := range stop {
				values = append(values, idx)
			}
			return values
		},
		"strings": object.NewBuiltinsModule("strings", map[string]object.Object{
			"trim": object.NewGoFunc(reflect.ValueOf(strings.TrimSpace), "strings.trim", object.DefaultRegistry()),
			"sep":  object.NewString(","),
		}),
	}
}

func TestEval(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		source   string
		value    any
		expected any
	}{
		"binding lookup": {
			source:   "value",
			value:    "abc\n",
			expected: "abc\n",
		},
		"go function call": {
			source:   "upper(value)",
			value:    "abc",
			expected: "ABC",
		},
		"module member call": {
			source:   "strings.trim(value)",
			value:    "  abc \n",
			expected: "abc",
		},
		"module constant": {
			source:   "strings.sep",
			expected: ",",
		},
		"names reserved in other languages": {
			source:   "type(range(value))",
			value:    int64(3),
			expected: "list",
		},
		"go slice result": {
			source:   "range(value)",
			value:    int64(3),
			expected: []any{int64(0), int64(1), int64(2)},
		},
		"integer arithmetic": {
			source:   "(value + 4) * 2 - 7 % 4",
			value:    int64(1),
			expected: int64(7),
		},
		"float promotion": {
			source:   "value / 2.0",
			value:    int64(7),
			expected: 3.5,
		},
		"string concatenation": {
			source:   `value + "!"`,
			value:    "hi",
			expected: "hi!",
		},
		"single quoted string": {
			source:   `value + 'bc'`,
			value:    "a",
			expected: "abc",
		},
		"template string": {
			source:   "`${value}!`",
			value:    "a",
			expected: "a!",
		},
		"list concatenation": {
			source:   `value + [3]`,
			value:    []any{int64(1), int64(2)},
			expected: []any{int64(1), int64(2), int64(3)},
		},
		"comparison": {
			source:   `value >= 2 && value < 4`,
			value:    int64(3),
			expected: true,
		},
		"negative list index": {
			source:   `value[-1]`,
			value:    []any{"a", "b", "c"},
			expected: "c",
		},
		"map index": {
			source:   `value["name"]`,
			value:    map[string]any{"name": "pype"},
			expected: "pype",
		},
		"map attribute": {
			source:   `value.name`,
			value:    map[string]any{"name": "pype"},
			expected: "pype",
		},
		"string slice": {
			source:   `value[1:3]`,
			value:    "hello",
			expected: "el",
		},
		"string methods": {
			source:   `value.trim_space().to_upper()`,
			value:    " abc\n",
			expected: "ABC",
		},
		"string split": {
			source:   `value.split(",")`,
			value:    "a,b",
			expected: []any{"a", "b"},
		},
		"map literal": {
			source:   `{line: value}`,
			value:    "x",
			expected: map[string]any{"line": "x"},
		},
		"lambda": {
			source:   `[1, 2, 3].map(x => x * value)`,
			value:    int64(2),
			expected: []any{int64(2), int64(4), int64(6)},
		},
		"if expression": {
			source:   `if value > 0 { "positive" } else { "other" }`,
			value:    int64(1),
			expected: "positive",
		},
		"nil binding": {
			source:   `value == nil`,
			expected: true,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			expression, err := Compile(ctx, test.source, testEnv(), "value")
			require.NoError(t, err)

			result, err := expression.Eval(ctx, map[string]any{"value": test.value})
			require.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		source        string
		expectedError error
		expectedMsg   string
	}{
		"undefined name": {
			source:        "missing(value)",
			expectedError: ErrUndefined,
			expectedMsg:   `name error: undefined variable "missing" (1:1)`,
		},
		"invalid syntax": {
			source:        "upper(value",
			expectedError: ErrSyntax,
		},
		"unterminated string": {
			source:        "'abc",
			expectedError: ErrSyntax,
		},
		"variable declaration": {
			source:        "let x = value",
			expectedError: ErrSyntax,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(t.Context(), test.source, testEnv(), "value")
			require.ErrorIs(t, err, test.expectedError)
			if test.expectedMsg != "" {
				assert.EqualError(t, err, test.expectedMsg)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		source        string
		value         any
		expectedError error
	}{
		"mismatched operands": {
			source:        `value + 1`,
			value:         "abc",
			expectedError: ErrType,
		},
		"list repetition with huge count": {
			source:        `[value, 2] * 9223372036854775807`,
			value:         "x",
			expectedError: ErrType,
		},
		"string repetition with huge count": {
			source:        `value * 9223372036854775807`,
			value:         "3",
			expectedError: ErrType,
		},
		"integer division by zero": {
			source:        "value / 0",
			value:         int64(1),
			expectedError: ErrValue,
		},
		"error returned by called code": {
			source:        "fail(value)",
			value:         "x",
			expectedError: errFromCalledCode,
		},
		"classified error returned by called code": {
			source:        "typed(value)",
			value:         "x",
			expectedError: ErrType,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			expression, err := Compile(ctx, test.source, testEnv(), "value")
			require.NoError(t, err)

			assert.NotPanics(t, func() {
				_, err = expression.Eval(ctx, map[string]any{"value": test.value})
			})
			assert.ErrorIs(t, err, test.expectedError)
		})
	}

	t.Run("repeat method overflow is an error", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		expression := MustCompile(ctx, `value.repeat(9223372036854775807)`, testEnv(), "value")
		assert.NotPanics(t, func() {
			_, err := expression.Eval(ctx, map[string]any{"value": "3"})
			assert.Error(t, err)
		})
	})
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("keeps the original source", func(t *testing.T) {
		t.Parallel()

		expression, err := Compile(t.Context(), `upper('a')`, testEnv())
		require.NoError(t, err)
		assert.Equal(t, `upper('a')`, expression.String())
	})

	t.Run("nil env resolves only bindings", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		result, err := MustCompile(ctx, "value == nil", nil, "value").Eval(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, true, result)
	})

	t.Run("compiled expression is reusable", func(t *testing.T) {
		t.Parallel()

		ctx := t.Context()
		expression := MustCompile(ctx, "upper(value)", testEnv(), "value")
		for _, input := range []string{"a", "b"} {
			result, err := expression.Eval(ctx, map[string]any{"value": input})
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(input), result)
		}
	})
}
