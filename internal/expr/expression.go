// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package expr

import (
	"context"
	"maps"

	"github.com/deepnoodle-ai/risor/v2"
	"github.com/deepnoodle-ai/risor/v2/pkg/bytecode"
)

// Env is the read-only global scope an expression is compiled and evaluated against.
type Env interface {
	// Globals returns the values bound to every global name. Values are either
	// plain Go values or Risor objects.
	Globals() map[string]any
}

// stageSyntax allows expressions, lambdas and if or match expressions, but no
// statements that declare or assign variables.
var stageSyntax = risor.SyntaxConfig{
	DisallowVariableDecl: true,
	DisallowAssignment:   true,
	DisallowTryCatch:     true,
	DisallowDestructure:  true,
}

// Expression is a compiled expression that can be evaluated any number of times.
type Expression struct {
	source   string
	code     *bytecode.Code
	globals  map[string]any
	bindings []string
}

// Compile compiles source against the global names of env plus the given binding
// names. Every binding must then be supplied to each Eval call. A nil env provides
// no globals.
func Compile(ctx context.Context, source string, env Env, bindings ...string) (*Expression, error) {
	globals := map[string]any{}
	if env != nil {
		maps.Copy(globals, env.Globals())
	}

	compileEnv := maps.Clone(globals)
	for _, name := range bindings {
		compileEnv[name] = nil
	}

	code, err := risor.Compile(ctx, source, risor.WithEnv(compileEnv), risor.WithSyntax(stageSyntax))
	if err != nil {
		return nil, classify(err, ErrSyntax)
	}

	return &Expression{
		source:   source,
		code:     code,
		globals:  globals,
		bindings: bindings,
	}, nil
}

// MustCompile is like Compile but panics if the source cannot be compiled.
func MustCompile(ctx context.Context, source string, env Env, bindings ...string) *Expression {
	expression, err := Compile(ctx, source, env, bindings...)
	if err != nil {
		panic(err)
	}
	return expression
}

// String returns the source text the expression was compiled from.
func (e *Expression) String() string {
	return e.source
}

// Eval runs the expression with values assigned to its bindings. Bindings missing
// from values are bound to nil.
func (e *Expression) Eval(ctx context.Context, values map[string]any) (any, error) {
	env := maps.Clone(e.globals)
	for _, name := range e.bindings {
		env[name] = values[name]
	}

	// the virtual machine watches ctx from a goroutine that lives until ctx is done
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	result, err := risor.Run(runCtx, e.code, risor.WithEnv(env))
	if err != nil {
		return nil, classify(err, ErrRuntime)
	}

	return result, nil
}
