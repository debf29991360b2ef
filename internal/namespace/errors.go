// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package namespace

import (
	"errors"
	"strings"
)

// Ensure ResolutionError implements the error interface.
var _ error = &ResolutionError{}

var (
	// ErrUnknownNamespace is wrapped by every ResolutionError.
	ErrUnknownNamespace = errors.New("no namespace named")
)

// ResolutionError reports a namespace name that cannot be resolved.
type ResolutionError struct {
	Name      string
	Available []string
}

// NewResolutionError returns a ResolutionError for name listing the available namespaces.
func NewResolutionError(name string, available []string) *ResolutionError {
	return &ResolutionError{
		Name:      name,
		Available: available,
	}
}

func (e *ResolutionError) Error() string {
	msg := ErrUnknownNamespace.Error() + " " + "\"" + e.Name + "\""
	if len(e.Available) > 0 {
		msg += " (available: " + strings.Join(e.Available, ", ") + ")"
	}
	return msg
}

func (e *ResolutionError) Unwrap() error {
	return ErrUnknownNamespace
}

func (e *ResolutionError) Is(target error) bool {
	if e == nil || target == nil {
		return e == target
	}

	if t, ok := target.(*ResolutionError); ok {
		return e.Name == t.Name
	}

	return false
}
