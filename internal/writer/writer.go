// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package writer

import (
	"context"
	"io"
	"iter"

	"github.com/mia-platform/pype/internal/expr"
	"github.com/mia-platform/pype/internal/logger"
)

const (
	loggerName = "pype:writer"
	// Terminator is written once after the last result.
	Terminator = "\n"
)

// Writer sends pipeline results to an io.Writer.
// Writer is not safe for concurrent use.
type Writer struct {
	writer io.Writer
}

// New returns a Writer sending results to w.
func New(w io.Writer) *Writer {
	return &Writer{
		writer: w,
	}
}

// Write sends the text representation of value, without adding any separator.
func (w *Writer) Write(value any) error {
	_, err := io.WriteString(w.writer, expr.Format(value))
	return err
}

// Close writes the final Terminator.
func (w *Writer) Close() error {
	_, err := io.WriteString(w.writer, Terminator)
	return err
}

// Drain writes every result as soon as it is produced and then the final Terminator.
// The first error, coming from results or from the underlying writer, stops the
// iteration and is returned; results already written are left in place and the
// Terminator is not written.
func (w *Writer) Drain(ctx context.Context, results iter.Seq2[any, error]) error {
	log := logger.Named(ctx, loggerName)

	written := 0
	for value, err := range results {
		if err != nil {
			log.Debug("stopping output on error", "written", written)
			return err
		}

		if err := w.Write(value); err != nil {
			log.Debug("output write failed", "written", written, "error", err)
			return err
		}
		written++
	}

	log.Trace("output completed", "written", written)
	return w.Close()
}
