// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"iter"

	"github.com/mia-platform/pype/internal/expr"
	"github.com/mia-platform/pype/internal/logger"
)

const (
	loggerName = "pype:pipeline"
)

type compiledStage struct {
	Stage
	expression *expr.Expression
}

// Pipeline is an ordered list of stages compiled against the environment they are
// evaluated in. It holds no per-line state and can be run any number of times.
type Pipeline struct {
	stages []compiledStage
}

// New compiles every stage. The first stage that cannot be compiled is returned as
// an *EvaluationError and no Pipeline is built.
func New(ctx context.Context, stages []Stage, env expr.Env) (*Pipeline, error) {
	log := logger.Named(ctx, loggerName)

	compiled := make([]compiledStage, 0, len(stages))
	for idx, stage := range stages {
		expression, err := expr.Compile(ctx, stage.Expression, env, Binding)
		if err != nil {
			return nil, NewEvaluationError(idx, stage.Expression, 0, err)
		}

		log.Debug("stage compiled", "stage", idx+1, "segment", stage.Segment, "expression", stage.Expression)
		compiled = append(compiled, compiledStage{
			Stage:      stage,
			expression: expression,
		})
	}

	return &Pipeline{
		stages: compiled,
	}, nil
}

// Stages returns the stages of the pipeline in evaluation order.
func (p *Pipeline) Stages() []Stage {
	stages := make([]Stage, len(p.stages))
	for idx, stage := range p.stages {
		stages[idx] = stage.Stage
	}
	return stages
}

// Run returns the lazy sequence of the results of the pipeline, one for every line.
// Each line is fully evaluated before the next one is read. The first read error,
// evaluation error or context cancellation is yielded as the last element.
func (p *Pipeline) Run(ctx context.Context, lines iter.Seq2[string, error]) iter.Seq2[any, error] {
	log := logger.Named(ctx, loggerName)

	return func(yield func(any, error) bool) {
		lineNumber := 0
		for line, err := range lines {
			if err != nil {
				log.Debug("input read failed", "line", lineNumber+1, "error", err)
				yield(nil, err)
				return
			}

			if err := ctx.Err(); err != nil {
				log.Debug("pipeline cancelled from context", "line", lineNumber+1, "error", err)
				yield(nil, err)
				return
			}

			lineNumber++
			log.Trace("evaluating line", "line", lineNumber)
			result, err := p.Apply(ctx, line, lineNumber)
			if err != nil {
				log.Debug("stage evaluation failed", "line", lineNumber, "error", err)
				yield(nil, err)
				return
			}

			if !yield(result, nil) {
				return
			}
		}

		log.Trace("input exhausted", "lines", lineNumber)
	}
}

// Apply threads value through every stage. lineNumber is only used to annotate a
// returned *EvaluationError.
func (p *Pipeline) Apply(ctx context.Context, value any, lineNumber int) (any, error) {
	bindings := map[string]any{Binding: value}
	for idx, stage := range p.stages {
		result, err := stage.expression.Eval(ctx, bindings)
		if err != nil {
			return nil, NewEvaluationError(idx, stage.Expression, lineNumber, err)
		}
		bindings[Binding] = result
	}

	return bindings[Binding], nil
}
