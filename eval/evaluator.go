/*
File    : sketch/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: one recursive Eval
// dispatcher over ast.Node, operating on the three-environment scope.Scope
// and producing values.Object results. Errors propagate internally as a
// *values.Error sentinel (checked after every sub-evaluation), the
// teacher's own idiom; only the cmd/sketch CLI boundary converts a
// terminal *values.Error into a *sketcherr.SourceError.
package eval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/scope"
	"github.com/akashmaji946/go-mix/values"
)

// Function is the runtime closure value produced by a `sketch` statement.
// It is a distinct type from ast.Func (the declaration) and lives in eval,
// not values, because it embeds *scope.Scope and scope.Scope stores
// values.Object -- keeping it here avoids a values<->scope import cycle.
type Function struct {
	Name   string
	Params []string
	Body   []ast.Node
	Scp    *scope.Scope
}

func (Function) Kind() string      { return "Function" }
func (f Function) Inspect() string { return fmt.Sprintf("<function %s>", f.Name) }

// FunctionName satisfies builtin.Named so the print builtin can render
// a closure as "function <name>" without eval and builtin importing
// each other.
func (f *Function) FunctionName() string { return f.Name }

// Evaluator owns the global scope and the I/O streams builtins use.
type Evaluator struct {
	Global *scope.Scope
	Writer io.Writer
	Reader *bufio.Reader
}

// New builds an Evaluator with a fresh global scope. Callers (normally
// cmd/sketch) populate ev.Global.Functions with builtins before Run.
func New(w io.Writer, r io.Reader) *Evaluator {
	return &Evaluator{
		Global: scope.NewScope(nil),
		Writer: w,
		Reader: bufio.NewReader(r),
	}
}

// Run executes a top-level statement list against the global scope. It
// returns the unwrapped value of a `finished` at top level (rare, but
// legal) or values.None{} otherwise, and the terminal error if any
// statement produced one.
func (ev *Evaluator) Run(stmts []ast.Node) (values.Object, error) {
	result := ev.evalBlock(stmts, ev.Global)
	if errObj, ok := result.(*values.Error); ok {
		return nil, errObj
	}
	if ret, ok := result.(*values.ReturnSignal); ok {
		return ret.Value, nil
	}
	return values.None{}, nil
}

// evalBlock runs stmts in lexical order against scp, short-circuiting on
// the first *values.Error or *values.ReturnSignal and propagating it
// unmodified to the caller.
func (ev *Evaluator) evalBlock(stmts []ast.Node, scp *scope.Scope) values.Object {
	var last values.Object = values.None{}
	for _, stmt := range stmts {
		last = ev.Eval(stmt, scp)
		if values.IsError(last) || values.IsReturn(last) {
			return last
		}
	}
	return last
}

func runtimeErrorAt(n ast.Node, format string, args ...interface{}) *values.Error {
	line, col := n.Pos()
	return &values.Error{Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}
