/*
File    : sketch/values/values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values defines the runtime value domain of the evaluator: a
// closed set of Object variants distinct from the ast package (an AST
// node is a program shape; an Object is a runtime result). Errors
// propagate internally as a sentinel Object (see Error/IsError), the
// teacher's own idiom -- real Go error values only appear at the
// sketcherr boundary in cmd/sketch.
package values

import (
	"fmt"
	"sort"
	"strings"
)

// Object is implemented by every runtime value variant.
type Object interface {
	Kind() string
	Inspect() string
}

// Number is the sole numeric type: sketch has no int/float distinction,
// every number is a float64 (see SPEC_FULL.md §4.2).
type Number struct{ Value float64 }

func (Number) Kind() string { return "Number" }
func (n Number) Inspect() string {
	if n.Value == float64(int64(n.Value)) {
		return fmt.Sprintf("%d", int64(n.Value))
	}
	return fmt.Sprintf("%g", n.Value)
}

// String is a sketch string value.
type String struct{ Value string }

func (String) Kind() string          { return "String" }
func (s String) Inspect() string     { return s.Value }
func (s String) QuotedInspect() string { return fmt.Sprintf("%q", s.Value) }

// Boolean is a sketch boolean value.
type Boolean struct{ Value bool }

func (Boolean) Kind() string { return "Boolean" }
func (b Boolean) Inspect() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// None is the absence-of-value sentinel, returned by statements and by
// falling off the end of a function body with no explicit `finished`.
type None struct{}

func (None) Kind() string      { return "None" }
func (None) Inspect() string   { return "none" }

// Error is the internal sentinel-propagation value: evaluator functions
// return an Error instead of panicking, and block evaluation checks
// IsError after every step to short-circuit (mirrors the teacher's
// eval.CreateError pattern, see DESIGN.md). It carries source position
// so the CLI boundary can convert it into a *sketcherr.SourceError.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (Error) Kind() string      { return "Error" }
func (e Error) Inspect() string { return "error: " + e.Message }

// Error implements the standard error interface so a *Error can be
// returned directly from Evaluator.Run, carrying Line/Column through to
// the cmd/sketch CLI boundary for conversion into a *sketcherr.SourceError
// (see DESIGN.md) instead of losing position in a bare fmt.Errorf string.
func (e *Error) Error() string { return e.Message }

// IsError reports whether obj is a propagating *Error.
func IsError(obj Object) bool {
	_, ok := obj.(*Error)
	return ok
}

// ReturnSignal wraps a value produced by `finished expr`, distinguishing
// an early return from an ordinary statement result as it unwinds
// through nested block evaluation (see SPEC_FULL.md §9, recommendation
// against smuggling returns through the AST itself).
type ReturnSignal struct {
	Value Object
}

func (ReturnSignal) Kind() string      { return "ReturnSignal" }
func (r ReturnSignal) Inspect() string { return r.Value.Inspect() }

// IsReturn reports whether obj is a propagating *ReturnSignal.
func IsReturn(obj Object) bool {
	_, ok := obj.(*ReturnSignal)
	return ok
}

// Array is a mutable, pointer-backed sequence. Pointer backing is what
// makes in-place array-method mutation (push/pop/reverse/sort) visible
// through every alias holding the same Array, without needing a copy-
// on-write scheme.
type Array struct {
	Elements []Object
}

func (*Array) Kind() string { return "Array" }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		if s, ok := el.(String); ok {
			parts[i] = s.QuotedInspect()
		} else {
			parts[i] = el.Inspect()
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Push appends v in place.
func (a *Array) Push(v Object) { a.Elements = append(a.Elements, v) }

// Pop removes and returns the last element, or None if empty.
func (a *Array) Pop() Object {
	if len(a.Elements) == 0 {
		return None{}
	}
	last := a.Elements[len(a.Elements)-1]
	a.Elements = a.Elements[:len(a.Elements)-1]
	return last
}

// Reverse reverses the elements in place.
func (a *Array) Reverse() {
	for i, j := 0, len(a.Elements)-1; i < j; i, j = i+1, j-1 {
		a.Elements[i], a.Elements[j] = a.Elements[j], a.Elements[i]
	}
}

// Sort sorts the elements in place by Compare. Mixed-kind arrays sort
// by Kind() name, as Compare does, so booleans come before numbers
// before strings.
func (a *Array) Sort() {
	sort.SliceStable(a.Elements, func(i, j int) bool {
		return Compare(a.Elements[i], a.Elements[j]) < 0
	})
}

// BoundMethod is a first-class value binding one of the fixed array
// methods to a receiver, replacing the STDLIB_ARRAY_<NAME> magic-prefix
// pseudo-function encoding of the original source (see SPEC_FULL.md §9
// and DESIGN.md). ReceiverVar names the variable the receiver was read
// from, so the evaluator can additionally write the mutated receiver
// back to that binding, satisfying the spec's literal "updates the
// variable" wording even though pointer aliasing already propagates it.
type BoundMethod struct {
	Receiver    *Array
	ReceiverVar string
	Method      string
}

func (BoundMethod) Kind() string      { return "BoundMethod" }
func (b BoundMethod) Inspect() string { return fmt.Sprintf("<bound method %s>", b.Method) }

// Function is declared in the eval package, not here: a closure needs to
// embed *scope.Scope, and scope needs Object, so the concrete Function
// value lives one layer up to avoid values<->scope import cycle (see
// DESIGN.md). It still satisfies Object there.

// Instance is a record value constructed via `prep`.
type Instance struct {
	TypeName   string
	Fields     map[string]Object
	FieldOrder []string
}

func (*Instance) Kind() string { return "Instance" }
func (i *Instance) Inspect() string {
	parts := make([]string, 0, len(i.FieldOrder))
	for _, name := range i.FieldOrder {
		parts = append(parts, fmt.Sprintf("%s: %s", name, i.Fields[name].Inspect()))
	}
	return fmt.Sprintf("%s{%s}", i.TypeName, strings.Join(parts, ", "))
}

// Builtin is a host function exposed to sketch programs (print, input,
// and the standalone forms of the array methods), mirroring the
// teacher's std.Builtin callback-registration pattern.
type Builtin struct {
	Name string
	Fn   func(args []Object) Object
}

func (Builtin) Kind() string      { return "Builtin" }
func (b Builtin) Inspect() string { return fmt.Sprintf("<builtin %s>", b.Name) }

// Truthy maps a value to a bool: Boolean uses its own value; None is
// always false; every other value is true. The evaluator does not call
// it: if/elif conditions must be Boolean, and while stops on any
// non-Boolean condition.
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case Boolean:
		return v.Value
	case None:
		return false
	default:
		return true
	}
}

// Compare orders two values for < <= > >= and Array.Sort (== and !=
// use Equal). Numbers
// compare numerically, strings lexically, booleans false < true;
// mismatched kinds compare by Kind() name so Sort still produces a
// total, deterministic order.
func Compare(a, b Object) int {
	switch av := a.(type) {
	case Number:
		if bv, ok := b.(Number); ok {
			switch {
			case av.Value < bv.Value:
				return -1
			case av.Value > bv.Value:
				return 1
			default:
				return 0
			}
		}
	case String:
		if bv, ok := b.(String); ok {
			return strings.Compare(av.Value, bv.Value)
		}
	case Boolean:
		if bv, ok := b.(Boolean); ok {
			if av.Value == bv.Value {
				return 0
			}
			if !av.Value {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a.Kind(), b.Kind())
}

// Equal implements sketch's == for scalar values. Arrays/records compare
// by identity, matching the teacher's reference-equality treatment of
// compound values.
func Equal(a, b Object) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case None:
		_, ok := b.(None)
		return ok
	case *Array:
		bv, ok := b.(*Array)
		return ok && av == bv
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av == bv
	}
	return false
}
