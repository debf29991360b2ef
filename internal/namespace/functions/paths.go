// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"path/filepath"
	"strings"
)

// Base returns the last element of path, surrounding whitespace ignored.
func Base(path string) string {
	return filepath.Base(strings.TrimSpace(path))
}

// Dir returns all but the last element of path, surrounding whitespace ignored.
func Dir(path string) string {
	return filepath.Dir(strings.TrimSpace(path))
}

// Ext returns the file name extension of path, surrounding whitespace ignored.
func Ext(path string) string {
	return filepath.Ext(strings.TrimSpace(path))
}

// JoinPath joins any number of path elements into a single path.
func JoinPath(elements ...string) string {
	return filepath.Join(elements...)
}

// Clean returns the shortest path name equivalent to path.
func Clean(path string) string {
	return filepath.Clean(strings.TrimSpace(path))
}
