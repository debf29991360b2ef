// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strings"
	"time"
)

var nowFn = time.Now

// Now returns the current time in UTC in RFC3339 format.
func Now() string {
	return nowFn().UTC().Format(time.RFC3339)
}

// Unix returns the current time as seconds since the Unix epoch.
func Unix() int64 {
	return nowFn().Unix()
}

// FormatTime parses input as RFC3339, surrounding whitespace ignored, and formats it
// with the given Go reference layout.
func FormatTime(input, layout string) (string, error) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(input))
	if err != nil {
		return "", err
	}

	return parsed.Format(layout), nil
}

// FromUnix converts seconds since the Unix epoch to an RFC3339 UTC timestamp.
func FromUnix(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format(time.RFC3339)
}
