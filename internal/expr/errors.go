// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package expr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rerrors "github.com/deepnoodle-ai/risor/v2/pkg/errors"
	"github.com/deepnoodle-ai/risor/v2/pkg/syntax"
)

var (
	// ErrSyntax reports an expression that cannot be parsed or uses a disallowed construct.
	ErrSyntax = errors.New("syntax error")
	// ErrUndefined reports a lookup of a name that does not exist.
	ErrUndefined = errors.New("name error")
	// ErrType reports an operation applied to values of the wrong type.
	ErrType = errors.New("type error")
	// ErrArity reports a call with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrValue reports an argument or operand with an invalid value, such as a
	// division by zero or an index out of range.
	ErrValue = errors.New("value error")
	// ErrRuntime reports any other failure raised while evaluating an expression.
	ErrRuntime = errors.New("runtime error")
)

var kinds = []error{ErrSyntax, ErrUndefined, ErrType, ErrArity, ErrValue, ErrRuntime}

// Error is a failure raised by the script engine, classified under one of the
// package sentinel errors.
type Error struct {
	kind error
	err  error
}

// Kind returns the sentinel error classifying e.
func (e *Error) Kind() error {
	return e.kind
}

func (e *Error) Error() string {
	var compileErr *rerrors.CompileError
	if errors.As(e.err, &compileErr) {
		return fmt.Sprintf("%s: %s (%d:%d)", e.kind, compileErr.Message, compileErr.Line, compileErr.Column)
	}

	message := e.err.Error()
	if strings.HasPrefix(message, e.kind.Error()) {
		return message
	}
	return e.kind.Error() + ": " + message
}

// Unwrap returns the classifying sentinel together with the engine error.
func (e *Error) Unwrap() []error {
	return []error{e.kind, e.err}
}

// classify maps an engine failure onto the package sentinels. Errors already
// carrying one of them, such as those returned by namespace functions, and context
// errors are returned unchanged; unrecognized failures are classified as fallback.
func classify(err error, fallback error) error {
	if err == nil {
		return nil
	}

	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var (
		compileErr    *rerrors.CompileError
		structuredErr *rerrors.StructuredError
		validationErr *syntax.ValidationErrors
		typeErr       *rerrors.TypeError
		argsErr       *rerrors.ArgsError
		valueErr      *rerrors.ValueError
		indexErr      *rerrors.IndexError
	)

	kind := fallback
	switch {
	case errors.As(err, &compileErr):
		kind = ErrSyntax
		if compileErr.Code == rerrors.E2001 {
			kind = ErrUndefined
		}
	case errors.As(err, &validationErr):
		kind = ErrSyntax
	case errors.As(err, &structuredErr):
		switch structuredErr.Kind {
		case rerrors.ErrSyntax:
			kind = ErrSyntax
		case rerrors.ErrType:
			kind = ErrType
		case rerrors.ErrName:
			kind = ErrUndefined
		case rerrors.ErrValue:
			kind = ErrValue
		}
	case errors.As(err, &typeErr):
		kind = ErrType
	case errors.As(err, &argsErr):
		kind = ErrArity
	case errors.As(err, &valueErr), errors.As(err, &indexErr):
		kind = ErrValue
	}

	return &Error{kind: kind, err: err}
}
