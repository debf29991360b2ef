// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package functions

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDV4 generates a new UUID version 4.
func UUIDV4() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UUIDV6 generates a new UUID version 6.
func UUIDV6() (string, error) {
	id, err := uuid.NewV6()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UUIDV7 generates a new UUID version 7.
func UUIDV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UUIDParse validates input, surrounding whitespace ignored, and returns it in the
// canonical lowercase form.
func UUIDParse(input string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UUIDVersion returns the version number of the UUID in input.
func UUIDVersion(input string) (int, error) {
	id, err := uuid.Parse(strings.TrimSpace(input))
	if err != nil {
		return 0, err
	}
	return int(id.Version()), nil
}
