// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"maps"
	"slices"

	"github.com/mia-platform/pype/internal/expr"
)

// Object builds a map from alternating key and value arguments.
func Object(keyAndValues ...any) map[string]any {
	obj := make(map[string]any)
	parametersLength := len(keyAndValues)
	for idx := 0; idx < parametersLength; idx += 2 {
		key := expr.Format(keyAndValues[idx])
		var value any
		if idx+1 < parametersLength {
			value = keyAndValues[idx+1]
		}

		obj[key] = value
	}

	return obj
}

// Pick creates a map containing only the specified keys found in object.
func Pick(object map[string]any, keys ...string) map[string]any {
	result := make(map[string]any, len(keys))
	for _, key := range keys {
		if val, exists := object[key]; exists {
			result[key] = val
		}
	}

	return result
}

// Get returns object[key] or defaultValue when the key is missing.
func Get(object map[string]any, key string, defaultValue any) any {
	if val, exists := object[key]; exists {
		return val
	}

	return defaultValue
}

// Set returns a copy of object with value stored at key.
func Set(object map[string]any, key string, value any) map[string]any {
	updated := maps.Clone(object)
	if updated == nil {
		updated = make(map[string]any, 1)
	}
	updated[key] = value
	return updated
}

// Keys returns the sorted keys of object.
func Keys(object map[string]any) []string {
	return slices.Sorted(maps.Keys(object))
}

// Values returns the values of object ordered by key.
func Values(object map[string]any) []any {
	values := make([]any, 0, len(object))
	for _, key := range Keys(object) {
		values = append(values, object[key])
	}

	return values
}
