// Package errors provides the error model for the expression evaluator.
// Two kinds exist: syntax errors, raised by the tokenizer and compiler
// with a source position and a caret rendering, and runtime errors,
// raised by value operations and function dispatch with an enumerated
// code.
package errors

import (
	"fmt"
	"strings"
)

// Code identifies a runtime error condition.
type Code int

// Runtime error codes, in the original table order.
const (
	ErrDivByZero Code = iota
	ErrInvalidArgs
	ErrFuncUndef
	ErrTypeMismatch
	ErrTypeIllegal
	ErrInvIdentif
	ErrValOutOfRange
	ErrVarUndef
)

// codeMessages maps Code values to their fixed English messages.
// Tests match against these strings; do not reword them.
var codeMessages = [...]string{
	ErrDivByZero:     "division by zero",
	ErrInvalidArgs:   "invalid arguments",
	ErrFuncUndef:     "function not defined",
	ErrTypeMismatch:  "type mismatch",
	ErrTypeIllegal:   "type illegal",
	ErrInvIdentif:    "invalid identifier",
	ErrValOutOfRange: "value out of range",
	ErrVarUndef:      "variable not defined",
}

// Message returns the fixed message for the code, or "" for an unknown one.
func (c Code) Message() string {
	if c >= 0 && int(c) < len(codeMessages) {
		return codeMessages[c]
	}
	return ""
}

// RuntimeError is an evaluation failure carrying a code and an optional
// statement prefix (the identifier or function name involved).
type RuntimeError struct {
	Stmt string
	Code Code
}

// NewRuntimeError creates a runtime error for code with an optional
// statement prefix.
func NewRuntimeError(code Code, stmt string) *RuntimeError {
	return &RuntimeError{Code: code, Stmt: stmt}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.Stmt == "" {
		return e.Code.Message()
	}
	return e.Stmt + " " + e.Code.Message()
}

// SyntaxError is a tokenizer or compiler failure. When Source is
// non-empty the rendering includes the source line with a caret run
// under the suffix starting at the offending byte position; a position
// at or past the end of Source renders the position alone, without the
// line and carets.
type SyntaxError struct {
	Msg    string
	Source string
	Pos    int
}

// NewSyntaxError creates a positioned syntax error. An empty msg falls
// back to the generic "Syntax Error".
func NewSyntaxError(source string, pos int, msg string) *SyntaxError {
	if msg == "" {
		msg = "Syntax Error"
	}
	return &SyntaxError{Source: source, Pos: pos, Msg: msg}
}

// NewPlainSyntaxError creates a syntax error without source context,
// used for function arity and argument-type mismatches.
func NewPlainSyntaxError(format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Source == "" {
		return e.Msg
	}

	var sb strings.Builder
	sb.WriteString(e.Msg)
	sb.WriteString(fmt.Sprintf(" at (%d):\n", e.Pos+1))

	if len(e.Source) > e.Pos {
		sb.WriteString(e.Source)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", e.Pos))
		sb.WriteString(strings.Repeat("^", len(e.Source)-e.Pos))
	}

	return sb.String()
}
