// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

const (
	// Stdin is the path that selects the standard input.
	Stdin = "-"
)

// Open returns the input stream found at path on fs. An empty path or Stdin select
// stdin, that is returned wrapped so that closing it is a no-op.
func Open(fs afero.Fs, path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(stdin), nil
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening input stream: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening input stream: %s is a directory", path)
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input stream: %w", err)
	}

	return file, nil
}
