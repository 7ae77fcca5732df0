// Package expreval is the public API of the expression evaluator.
//
// The evaluator understands infix arithmetic, logical, string and
// bitwise expressions in a classic-BASIC dialect:
//
//	ctx := expreval.NewContext()
//	ctx.Define("x", expreval.NewInteger(41))
//	v, err := expreval.Eval("x+1", ctx)
//
// Evaluation is a pure function of the source and the context; the
// context mutates only through the ++ and -- operators.
package expreval

import (
	"github.com/eantcal/nuexpreval/internal/errors"
	"github.com/eantcal/nuexpreval/internal/interp"
	"github.com/eantcal/nuexpreval/internal/parser"
)

// Value is the evaluator's polymorphic typed datum.
type Value = interp.Value

// Type tags a Value.
type Type = interp.Type

// Context maps identifiers to values.
type Context = interp.Context

// RuntimeError reports an evaluation failure with an enumerated code.
type RuntimeError = errors.RuntimeError

// SyntaxError reports a tokenizer or compiler failure with a source
// position.
type SyntaxError = errors.SyntaxError

// Value constructors.
var (
	NewInteger = interp.NewInteger
	NewLong64  = interp.NewLong64
	NewFloat   = interp.NewFloat
	NewDouble  = interp.NewDouble
	NewBoolean = interp.NewBoolean
	NewString  = interp.NewString
	NewVector  = interp.NewVector
)

// NewContext creates an empty evaluation context.
func NewContext() *Context {
	return interp.NewContext()
}

// Eval compiles and evaluates source against ctx. A nil ctx evaluates
// against a fresh empty context.
func Eval(source string, ctx *Context) (Value, error) {
	if ctx == nil {
		ctx = interp.NewContext()
	}

	node, err := parser.Compile(source)
	if err != nil {
		return Value{}, err
	}
	return node.Eval(ctx)
}

// Compile parses source into a reusable expression tree.
func Compile(source string) (interp.Node, error) {
	return parser.Compile(source)
}
