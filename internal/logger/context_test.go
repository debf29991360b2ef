// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		ctx      func(t *testing.T, log Logger) context.Context
		expected func(log Logger) Logger
	}{
		"nil context discards logs": {
			ctx:      func(*testing.T, Logger) context.Context { return nil },
			expected: func(Logger) Logger { return nullLogger },
		},
		"context without logger discards logs": {
			ctx:      func(t *testing.T, _ Logger) context.Context { return t.Context() },
			expected: func(Logger) Logger { return nullLogger },
		},
		"stored logger is returned": {
			ctx:      func(t *testing.T, log Logger) context.Context { return WithContext(t.Context(), log) },
			expected: func(log Logger) Logger { return log },
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			log := NewLogger(new(bytes.Buffer))
			assert.Equal(t, test.expected(log), FromContext(test.ctx(t, log)))
		})
	}
}

func TestNamed(t *testing.T) {
	t.Parallel()

	t.Run("component name is attached to every entry", func(t *testing.T) {
		t.Parallel()

		buffer := new(bytes.Buffer)
		ctx := WithContext(t.Context(), NewJSONLogger(buffer))
		Named(ctx, "pype:writer").Warn("output write failed", "written", 2)

		decoded := map[string]any{}
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
		assert.Equal(t, "pype:writer", decoded["@module"])
		assert.Equal(t, "output write failed", decoded["@message"])
	})

	t.Run("without a stored logger nothing is written", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			Named(t.Context(), "pype:pipeline").Error("discarded")
		})
	})
}
