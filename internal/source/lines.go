// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package source

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Lines returns the lines read from reader, terminators included. The last line is
// returned without terminator when the input does not end with one, and nothing is
// returned for it when the input ends right after a terminator.
// A read error is yielded once and ends the sequence. The sequence reads from
// reader while it is iterated, so it can be consumed only once.
func Lines(reader io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		buffered := bufio.NewReader(reader)
		for {
			line, err := buffered.ReadString('\n')
			if line != "" {
				if !yield(line, nil) {
					return
				}
			}

			switch {
			case errors.Is(err, io.EOF):
				return
			case err != nil:
				yield("", err)
				return
			}
		}
	}
}
