/*
File    : sketch/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/scope"
	"github.com/akashmaji946/go-mix/values"
)

// evalCall implements Call(callee, args): evaluate callee to an
// invocable (Function, Builtin, or BoundMethod), evaluate each argument
// left-to-right, then dispatch.
func (ev *Evaluator) evalCall(n *ast.Call, scp *scope.Scope) values.Object {
	callee := ev.Eval(n.Callee, scp)
	if values.IsError(callee) {
		return callee
	}

	args := make([]values.Object, 0, len(n.Args))
	for _, a := range n.Args {
		val := ev.Eval(a, scp)
		if values.IsError(val) {
			return val
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *Function:
		return ev.callFunction(n, fn, args)
	case values.Builtin:
		return fn.Fn(args)
	case values.BoundMethod:
		return ev.callBoundMethod(n, fn, args, scp)
	default:
		return runtimeErrorAt(n, "call target is not a function (%s)", callee.Kind())
	}
}

// callFunction invokes fn with a fresh call frame (scope.NewScope(fn.Scp))
// rather than mutating the captured scope directly -- the fresh-frame
// fix resolving spec.md §9's recounted shared-mutation hazard, already
// the teacher's own CallFunction behavior (see DESIGN.md).
func (ev *Evaluator) callFunction(n *ast.Call, fn *Function, args []values.Object) values.Object {
	if len(args) != len(fn.Params) {
		return runtimeErrorAt(n, "function %q expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	frame := scope.NewScope(fn.Scp)
	for i, param := range fn.Params {
		frame.BindValue(param, args[i])
	}
	result := ev.evalBlock(fn.Body, frame)
	if values.IsError(result) {
		return result
	}
	if ret, ok := result.(*values.ReturnSignal); ok {
		return ret.Value
	}
	return values.None{}
}

// callBoundMethod performs the array method mutation and writes the
// mutated array back into the scope that owns the receiver's binding, so
// aliased callers observe the change (spec.md's "receiver write-back").
// values.Array is pointer-backed, so in-place mutation already propagates
// to every alias; the explicit write-back satisfies spec's wording that
// the *binding* itself is updated.
func (ev *Evaluator) callBoundMethod(n *ast.Call, bm values.BoundMethod, args []values.Object, scp *scope.Scope) values.Object {
	if bm.Method == "push" {
		if len(args) != 1 {
			return runtimeErrorAt(n, "push requires one argument")
		}
		bm.Receiver.Push(args[0])
	} else {
		switch bm.Method {
		case "pop":
			bm.Receiver.Pop()
		case "reverse":
			bm.Receiver.Reverse()
		case "sort":
			if !isUniformSortable(bm.Receiver) {
				return runtimeErrorAt(n, "sort requires a homogeneous numeric or string array")
			}
			bm.Receiver.Sort()
		default:
			return runtimeErrorAt(n, "unknown array method %q", bm.Method)
		}
	}
	if bm.ReceiverVar != "" {
		scp.AssignValue(bm.ReceiverVar, bm.Receiver)
	}
	return bm.Receiver
}

func isUniformSortable(a *values.Array) bool {
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

// evalGet implements Get(target, key, key_is_expression) for both index
// access and named ('.'-style) access, including the array-method and
// record-field cases of §4.4.
func (ev *Evaluator) evalGet(n *ast.Get, scp *scope.Scope) values.Object {
	target := ev.Eval(n.Target, scp)
	if values.IsError(target) {
		return target
	}

	receiverVar := ""
	if v, ok := n.Target.(*ast.Var); ok && v.Initializer == nil {
		receiverVar = v.Name
	}

	switch t := target.(type) {
	case *values.Array:
		return ev.evalArrayGet(n, t, receiverVar, scp)
	case *values.Instance:
		return ev.evalInstanceGet(n, t, scp)
	default:
		return runtimeErrorAt(n, "cannot access a member of %s", target.Kind())
	}
}

func (ev *Evaluator) evalArrayGet(n *ast.Get, arr *values.Array, receiverVar string, scp *scope.Scope) values.Object {
	if n.KeyIsExpression {
		key := ev.Eval(n.Key, scp)
		if values.IsError(key) {
			return key
		}
		idx, ok := key.(values.Number)
		if !ok {
			return runtimeErrorAt(n, "array index must be a number, got %s", key.Kind())
		}
		i := int(idx.Value)
		if i < 0 || i >= len(arr.Elements) {
			return runtimeErrorAt(n, "index %d out of range for array of length %d", i, len(arr.Elements))
		}
		return arr.Elements[i]
	}

	lit, ok := n.Key.(*ast.Literal)
	if !ok || lit.Kind != ast.StringContent {
		return runtimeErrorAt(n, "array member access requires a name")
	}
	switch lit.Str {
	case "length":
		return values.Number{Value: float64(len(arr.Elements))}
	case "push", "pop", "reverse", "sort":
		return values.BoundMethod{Receiver: arr, ReceiverVar: receiverVar, Method: lit.Str}
	default:
		return runtimeErrorAt(n, "unknown array member %q", lit.Str)
	}
}

func (ev *Evaluator) evalInstanceGet(n *ast.Get, inst *values.Instance, scp *scope.Scope) values.Object {
	var name string
	if n.KeyIsExpression {
		key := ev.Eval(n.Key, scp)
		if values.IsError(key) {
			return key
		}
		s, ok := key.(values.String)
		if !ok {
			return runtimeErrorAt(n, "record field access requires a string key, got %s", key.Kind())
		}
		name = s.Value
	} else {
		lit := n.Key.(*ast.Literal)
		name = lit.Str
	}
	val, ok := inst.Fields[name]
	if !ok {
		return runtimeErrorAt(n, "record %q has no field %q", inst.TypeName, name)
	}
	return val
}

// evalSet implements Set(var, field, e): require V[var] to be an
// Instance, evaluate e, write the field, and write the instance back.
func (ev *Evaluator) evalSet(n *ast.Set, scp *scope.Scope) values.Object {
	val, ok := scp.LookupValue(n.VarName)
	if !ok {
		return runtimeErrorAt(n, "undefined variable %q", n.VarName)
	}
	inst, ok := val.(*values.Instance)
	if !ok {
		return runtimeErrorAt(n, "cannot set field %q: %q is not a record", n.FieldName, n.VarName)
	}
	if _, declared := inst.Fields[n.FieldName]; !declared {
		return runtimeErrorAt(n, "record %q has no field %q", inst.TypeName, n.FieldName)
	}
	newVal := ev.Eval(n.Value, scp)
	if values.IsError(newVal) {
		return newVal
	}
	inst.Fields[n.FieldName] = newVal
	scp.AssignValue(n.VarName, inst)
	return values.None{}
}

// evalInstance implements Instance(type, fields): R[type] must exist and
// every supplied field must be declared in that shape.
func (ev *Evaluator) evalInstance(n *ast.Instance, scp *scope.Scope) values.Object {
	shape, ok := scp.LookupRecord(n.TypeName)
	if !ok {
		return runtimeErrorAt(n, "undefined record type %q", n.TypeName)
	}
	fields := make(map[string]values.Object, len(shape.FieldNames))
	for _, f := range shape.FieldNames {
		fields[f] = values.None{}
	}
	for _, name := range n.FieldOrder {
		if _, declared := fields[name]; !declared {
			return runtimeErrorAt(n, "record %q has no field %q", n.TypeName, name)
		}
		val := ev.Eval(n.Fields[name], scp)
		if values.IsError(val) {
			return val
		}
		fields[name] = val
	}
	return &values.Instance{TypeName: n.TypeName, Fields: fields, FieldOrder: shape.FieldNames}
}
