// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToJSON converts a value to its compact JSON representation.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FromJSON decodes a JSON document. Integral numbers decode to integers, every other
// number to a float.
func FromJSON(input string) (any, error) {
	decoder := json.NewDecoder(strings.NewReader(input))
	decoder.UseNumber()

	var decoded any
	if err := decoder.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	return jsonNumbers(decoded), nil
}

// jsonNumbers replaces every json.Number in value with an int64 or a float64.
func jsonNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if integer, err := v.Int64(); err == nil {
			return integer
		}
		float, _ := v.Float64()
		return float
	case []any:
		for idx, item := range v {
			v[idx] = jsonNumbers(item)
		}
		return v
	case map[string]any:
		for key, item := range v {
			v[key] = jsonNumbers(item)
		}
		return v
	default:
		return v
	}
}

// ToYAML converts a value to a YAML document.
func ToYAML(v any) (string, error) {
	buffer := new(bytes.Buffer)
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}

	return buffer.String(), nil
}

// FromYAML decodes a single YAML document.
func FromYAML(input string) (any, error) {
	var decoded any
	if err := yaml.Unmarshal([]byte(input), &decoded); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	return decoded, nil
}

// EncodeBase64 encodes the input string to its Base64 representation.
func EncodeBase64(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// DecodeBase64 decodes a Base64-encoded string, surrounding whitespace ignored,
// and returns the original value.
func DecodeBase64(input string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}
