// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/mia-platform/pype/internal/logger"
	"github.com/mia-platform/pype/internal/namespace"
	"github.com/mia-platform/pype/internal/pipeline"
	"github.com/mia-platform/pype/internal/source"
	"github.com/mia-platform/pype/internal/writer"
)

const (
	loggerName = "pype:cmd"
)

// options configures a single pipeline run.
type options struct {
	command     string
	inStream    string
	imports     []string
	placeholder string

	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
}

// validate checks the configured values and reports invalid setups.
func (o *options) validate() error {
	if err := validatePlaceholder(o.placeholder); err != nil {
		return fmt.Errorf("%w %q: %s", errInvalidPlaceholder, o.placeholder, err)
	}

	return nil
}

// execute resolves the namespaces and compiles the pipeline before opening the
// input stream, so that no line is read when the setup fails. Then every line is
// processed and written in order until the input ends or a stage fails.
func (o *options) execute(ctx context.Context) error {
	log := logger.Named(ctx, loggerName)

	mapping, err := namespace.Resolve(ctx, o.imports)
	if err != nil {
		return err
	}

	stages := pipeline.Parse(o.command, o.placeholder)
	log.Debug("pipeline parsed", "stages", len(stages), "imports", mapping.Names())

	pipe, err := pipeline.New(ctx, stages, mapping)
	if err != nil {
		return err
	}

	reader, err := source.Open(o.fs, o.inStream, o.stdin)
	if err != nil {
		return err
	}
	defer reader.Close()

	return writer.New(o.stdout).Drain(ctx, pipe.Run(ctx, source.Lines(reader)))
}

// listNamespaces writes the members of the namespaces called names, or of every
// available namespace when names is empty.
func listNamespaces(ctx context.Context, out io.Writer, names []string) error {
	if len(names) == 0 {
		names = namespace.Available()
	}

	mapping, err := namespace.Resolve(ctx, names)
	if err != nil {
		return err
	}

	for _, name := range mapping.Names() {
		ns, _ := mapping.Namespace(name)
		if _, err := fmt.Fprintf(out, "%s: %s\n", name, strings.Join(ns.Members(), ", ")); err != nil {
			return err
		}
	}

	return nil
}
