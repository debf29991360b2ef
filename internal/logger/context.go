// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"context"
)

type loggerKey struct{}

// WithContext stores log in ctx, so that every pipeline component reached
// through ctx writes to the same destination.
func WithContext(ctx context.Context, log Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext returns the Logger stored in ctx. Commands run without a configured
// Logger, like the ones built in tests, get one that discards everything.
func FromContext(ctx context.Context) Logger {
	if ctx == nil {
		return nullLogger
	}

	if log, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return log
	}
	return nullLogger
}

// Named returns the Logger stored in ctx scoped to a component, as in pype:writer.
func Named(ctx context.Context, component string) Logger {
	return FromContext(ctx).WithName(component)
}
