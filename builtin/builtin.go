/*
File    : sketch/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin registers the host functions exposed to sketch
// programs: print, input, and the standalone forms of the array methods
// (push/pop/reverse/sort taking the array as their first argument).
// Modeled on the teacher's std.Builtin/std.Runtime callback-registration
// pattern, generalized to the new values.Object domain.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/go-mix/scope"
	"github.com/akashmaji946/go-mix/values"
)

// Named is implemented by eval.Function so print can render a closure as
// "function <name>" without builtin importing eval (eval never imports
// builtin, so this keeps the dependency one-directional).
type Named interface {
	FunctionName() string
}

// Register installs every built-in into scp's function environment. w is
// where print writes; r is the persistent reader input() consumes from
// (the teacher's std/io.go keeps one reader alive across calls rather
// than reopening stdin per call).
func Register(scp *scope.Scope, w io.Writer, r *bufio.Reader) {
	scp.BindFunction("print", values.Builtin{Name: "print", Fn: printBuiltin(w)})
	scp.BindFunction("input", values.Builtin{Name: "input", Fn: inputBuiltin(r)})
	scp.BindFunction("push", values.Builtin{Name: "push", Fn: pushBuiltin})
	scp.BindFunction("pop", values.Builtin{Name: "pop", Fn: popBuiltin})
	scp.BindFunction("reverse", values.Builtin{Name: "reverse", Fn: reverseBuiltin})
	scp.BindFunction("sort", values.Builtin{Name: "sort", Fn: sortBuiltin})
}

// printBuiltin renders each argument via ToPrint, one line per argument,
// and returns None.
func printBuiltin(w io.Writer) func([]values.Object) values.Object {
	return func(args []values.Object) values.Object {
		for _, a := range args {
			fmt.Fprintln(w, ToPrint(a))
		}
		return values.None{}
	}
}

// inputBuiltin reads one line from r, stripping the trailing newline, and
// returns it as a string value. At EOF it returns an empty string rather
// than failing, matching a batch (non-interactive) CLI's expectations.
func inputBuiltin(r *bufio.Reader) func([]values.Object) values.Object {
	return func(args []values.Object) values.Object {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return values.String{Value: ""}
		}
		return values.String{Value: strings.TrimRight(line, "\r\n")}
	}
}

func pushBuiltin(args []values.Object) values.Object {
	if len(args) != 2 {
		return &values.Error{Message: "push(array, value) requires two arguments"}
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return &values.Error{Message: "push requires an array as its first argument"}
	}
	arr.Push(args[1])
	return arr
}

func popBuiltin(args []values.Object) values.Object {
	if len(args) != 1 {
		return &values.Error{Message: "pop(array) requires one argument"}
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return &values.Error{Message: "pop requires an array argument"}
	}
	arr.Pop()
	return arr
}

func reverseBuiltin(args []values.Object) values.Object {
	if len(args) != 1 {
		return &values.Error{Message: "reverse(array) requires one argument"}
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return &values.Error{Message: "reverse requires an array argument"}
	}
	arr.Reverse()
	return arr
}

func sortBuiltin(args []values.Object) values.Object {
	if len(args) != 1 {
		return &values.Error{Message: "sort(array) requires one argument"}
	}
	arr, ok := args[0].(*values.Array)
	if !ok {
		return &values.Error{Message: "sort requires an array argument"}
	}
	if !uniformSortable(arr) {
		return &values.Error{Message: "sort requires a homogeneous numeric or string array"}
	}
	arr.Sort()
	return arr
}

func uniformSortable(a *values.Array) bool {
	if len(a.Elements) == 0 {
		return true
	}
	kind := a.Elements[0].Kind()
	if kind != "Number" && kind != "String" {
		return false
	}
	for _, el := range a.Elements {
		if el.Kind() != kind {
			return false
		}
	}
	return true
}

// ToPrint renders obj per §4.5's to_print rules: strings verbatim,
// numbers in the host's default double format, booleans true/false,
// arrays recursively, instances as "Name { f1: v1, f2: v2 }", functions
// as "function <name>".
func ToPrint(obj values.Object) string {
	switch v := obj.(type) {
	case values.String:
		return v.Value
	case values.Number:
		return v.Inspect()
	case values.Boolean:
		return v.Inspect()
	case values.None:
		return v.Inspect()
	case *values.Array:
		parts := make([]string, len(v.Elements))
		for i, el := range v.Elements {
			parts[i] = ToPrint(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *values.Instance:
		parts := make([]string, 0, len(v.FieldOrder))
		for _, name := range v.FieldOrder {
			parts = append(parts, fmt.Sprintf("%s: %s", name, ToPrint(v.Fields[name])))
		}
		return fmt.Sprintf("%s { %s }", v.TypeName, strings.Join(parts, ", "))
	default:
		if named, ok := obj.(Named); ok {
			return "function " + named.FunctionName()
		}
		return obj.Inspect()
	}
}
