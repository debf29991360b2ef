// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"errors"
	"fmt"
)

// Ensure EvaluationError implements the error interface.
var _ error = &EvaluationError{}

var (
	// ErrEvaluation is wrapped by every EvaluationError.
	ErrEvaluation = errors.New("evaluation failed")
)

// EvaluationError reports a fault raised while compiling or evaluating a stage.
type EvaluationError struct {
	// Stage is the zero based position of the failing stage.
	Stage int
	// Expression is the normalized text of the failing stage.
	Expression string
	// Line is the 1 based number of the input line being processed, 0 when the
	// stage failed to compile.
	Line int
	err  error
}

// NewEvaluationError returns an EvaluationError for the stage at index.
func NewEvaluationError(stage int, expression string, line int, err error) *EvaluationError {
	return &EvaluationError{
		Stage:      stage,
		Expression: expression,
		Line:       line,
		err:        err,
	}
}

func (e *EvaluationError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("stage %d (%s): %s", e.Stage+1, e.Expression, e.err)
	}
	return fmt.Sprintf("line %d: stage %d (%s): %s", e.Line, e.Stage+1, e.Expression, e.err)
}

// Unwrap returns the sentinel ErrEvaluation together with the underlying cause.
func (e *EvaluationError) Unwrap() []error {
	return []error{ErrEvaluation, e.err}
}

func (e *EvaluationError) Is(target error) bool {
	if e == nil || target == nil {
		return e == target
	}

	if t, ok := target.(*EvaluationError); ok {
		return e.Stage == t.Stage && e.Line == t.Line
	}

	return false
}
