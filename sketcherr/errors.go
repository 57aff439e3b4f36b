/*
File    : sketch/sketcherr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package sketcherr defines the three fatal error kinds of the interpreter
// pipeline (LexError, ParseError, RuntimeError), each carrying source
// position for reporting. Internally the evaluator still propagates errors
// as sentinel *values.Error results (the teacher's idiom, see eval package);
// these types are what the CLI boundary converts those into.
package sketcherr

import (
	"fmt"

	"github.com/samber/oops"
)

// Kind distinguishes the three fatal error categories of §7.
type Kind string

const (
	KindLex     Kind = "LexError"
	KindParse   Kind = "ParseError"
	KindRuntime Kind = "RuntimeError"
)

// SourceError is a position-carrying fatal error produced anywhere in the
// lex/parse/evaluate pipeline. It wraps github.com/samber/oops for
// structured context (line, column, kind, offending lexeme) while still
// rendering as a single reportable line via Error().
type SourceError struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
	Lexeme  string
	wrapped error
}

func build(kind Kind, line, column int, lexeme, format string, args ...interface{}) *SourceError {
	msg := fmt.Sprintf(format, args...)
	err := oops.
		Code(string(kind)).
		With("line", line).
		With("column", column).
		With("lexeme", lexeme).
		Errorf("%s", msg)
	return &SourceError{Kind: kind, Message: msg, Line: line, Column: column, Lexeme: lexeme, wrapped: err}
}

// NewLex builds a LexError at the given position.
func NewLex(line, column int, format string, args ...interface{}) *SourceError {
	return build(KindLex, line, column, "", format, args...)
}

// NewParse builds a ParseError for the given offending token lexeme.
func NewParse(line, column int, lexeme, format string, args ...interface{}) *SourceError {
	return build(KindParse, line, column, lexeme, format, args...)
}

// NewRuntime builds a RuntimeError at the given position.
func NewRuntime(line, column int, format string, args ...interface{}) *SourceError {
	return build(KindRuntime, line, column, "", format, args...)
}

// Error implements the error interface as "[KIND] message (line:col)".
func (e *SourceError) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[%s] %s (%d:%d)", e.Kind, e.Message, e.Line, e.Column)
}

// Unwrap exposes the oops-wrapped error for structured inspection (e.g. in
// tests that want to assert on context fields rather than message text).
func (e *SourceError) Unwrap() error {
	return e.wrapped
}
