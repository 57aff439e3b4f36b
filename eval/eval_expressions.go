/*
File    : sketch/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/akashmaji946/go-mix/scope"
	"github.com/akashmaji946/go-mix/values"
)

// Eval is the single recursive dispatcher over every AST node variant,
// mirroring the teacher's type-switch-based Eval in eval_expressions.go.
func (ev *Evaluator) Eval(n ast.Node, scp *scope.Scope) values.Object {
	switch node := n.(type) {
	case *ast.Literal:
		return ev.evalLiteral(node)
	case *ast.Array:
		return ev.evalArray(node, scp)
	case *ast.Var:
		return ev.evalVar(node, scp)
	case *ast.Binary:
		return ev.evalBinary(node, scp)
	case *ast.Unary:
		return ev.evalUnary(node, scp)
	case *ast.Func:
		fn := &Function{Name: node.Name, Params: node.Params, Body: node.Body, Scp: scp}
		scp.BindFunction(node.Name, fn)
		return values.None{}
	case *ast.Return:
		val := ev.Eval(node.Value, scp)
		if values.IsError(val) {
			return val
		}
		return &values.ReturnSignal{Value: val}
	case *ast.For:
		return ev.evalFor(node, scp)
	case *ast.While:
		return ev.evalWhile(node, scp)
	case *ast.Conditional:
		return ev.evalConditional(node, scp)
	case *ast.Struct:
		scp.BindRecord(node.Name, &scope.RecordShape{Name: node.Name, FieldNames: node.FieldNames})
		return values.None{}
	case *ast.Instance:
		return ev.evalInstance(node, scp)
	case *ast.Call:
		return ev.evalCall(node, scp)
	case *ast.Get:
		return ev.evalGet(node, scp)
	case *ast.PointGet:
		return ev.evalGet(&ast.Get{Target: node.Target, Key: &ast.Literal{Kind: ast.StringContent, Str: node.Field}, KeyIsExpression: false, Position: ast.NewPos(node.Pos())}, scp)
	case *ast.Set:
		return ev.evalSet(node, scp)
	case *ast.None:
		return values.None{}
	default:
		return runtimeErrorAt(n, "cannot evaluate unknown node")
	}
}

func (ev *Evaluator) evalLiteral(n *ast.Literal) values.Object {
	switch n.Kind {
	case ast.StringContent:
		return values.String{Value: n.Str}
	case ast.NumberContent:
		return values.Number{Value: n.Num}
	case ast.BooleanContent:
		return values.Boolean{Value: n.Boolean}
	}
	return values.None{}
}

func (ev *Evaluator) evalArray(n *ast.Array, scp *scope.Scope) values.Object {
	elements := make([]values.Object, 0, len(n.Items))
	for _, item := range n.Items {
		val := ev.Eval(item, scp)
		if values.IsError(val) {
			return val
		}
		elements = append(elements, val)
	}
	return &values.Array{Elements: elements}
}

// evalVar implements: a bare identifier resolves against values first,
// then functions (SPEC_FULL.md §3); `prepare name as expr` binds into V.
func (ev *Evaluator) evalVar(n *ast.Var, scp *scope.Scope) values.Object {
	if n.Initializer != nil {
		val := ev.Eval(n.Initializer, scp)
		if values.IsError(val) {
			return val
		}
		// `prepare` reassigns an existing binding wherever it lives up the
		// scope chain (so loop-body and while-body accumulation survives
		// the fresh per-iteration scope each iteration runs in) and only
		// declares a new binding in the current scope when the name is not
		// yet bound anywhere -- AssignValue/BindValue split mirrors the
		// teacher's own Assign-falls-back-to-Bind pattern in scope.go.
		if !scp.AssignValue(n.Name, val) {
			scp.BindValue(n.Name, val)
		}
		return values.None{}
	}
	if val, ok := scp.Resolve(n.Name); ok {
		return val
	}
	return runtimeErrorAt(n, "undefined variable or function %q", n.Name)
}

func (ev *Evaluator) evalUnary(n *ast.Unary, scp *scope.Scope) values.Object {
	operand := ev.Eval(n.Operand, scp)
	if values.IsError(operand) {
		return operand
	}
	b, ok := operand.(values.Boolean)
	if !ok {
		return runtimeErrorAt(n, "unary '!' requires a boolean operand, got %s", operand.Kind())
	}
	return values.Boolean{Value: !b.Value}
}

// evalBinary implements §4.2's arithmetic/comparison/logical semantics:
// string '+' concatenates, number '*' on a string repeats it, divide and
// modulo by zero fail, ordering comparisons require matching kinds
// ('=='/'!=' on mixed kinds give false/true), '&&'/'||' require booleans.
func (ev *Evaluator) evalBinary(n *ast.Binary, scp *scope.Scope) values.Object {
	left := ev.Eval(n.Left, scp)
	if values.IsError(left) {
		return left
	}
	right := ev.Eval(n.Right, scp)
	if values.IsError(right) {
		return right
	}

	switch n.Op {
	case "&&", "||":
		lb, lok := left.(values.Boolean)
		rb, rok := right.(values.Boolean)
		if !lok || !rok {
			return runtimeErrorAt(n, "operator %q requires boolean operands", n.Op)
		}
		if n.Op == "&&" {
			return values.Boolean{Value: lb.Value && rb.Value}
		}
		return values.Boolean{Value: lb.Value || rb.Value}
	case "==":
		return values.Boolean{Value: values.Equal(left, right)}
	case "!=":
		return values.Boolean{Value: !values.Equal(left, right)}
	case "<", "<=", ">", ">=":
		return ev.evalComparison(n, left, right)
	case "+":
		return ev.evalPlus(n, left, right)
	case "-", "*", "/", "%":
		return ev.evalArithmetic(n, left, right)
	}
	return runtimeErrorAt(n, "unknown operator %q", n.Op)
}

// evalComparison defers to values.Compare -- the same per-kind ordering
// Array.Sort uses -- so numeric-numeric, string-string, and
// boolean-boolean are all orderable and only mismatched kinds are a
// runtime error (SPEC_FULL.md §4.2 / spec.md's ordering-operators rule).
func (ev *Evaluator) evalComparison(n *ast.Binary, left, right values.Object) values.Object {
	if left.Kind() != right.Kind() {
		return runtimeErrorAt(n, "operator %q requires operands of the same kind, got %s and %s", n.Op, left.Kind(), right.Kind())
	}
	cmp := values.Compare(left, right)
	var result bool
	switch n.Op {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	}
	return values.Boolean{Value: result}
}

func (ev *Evaluator) evalPlus(n *ast.Binary, left, right values.Object) values.Object {
	if ls, ok := left.(values.String); ok {
		if rs, ok := right.(values.String); ok {
			return values.String{Value: ls.Value + rs.Value}
		}
		return runtimeErrorAt(n, "cannot add %s to string", right.Kind())
	}
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return runtimeErrorAt(n, "operator '+' requires two numbers or two strings, got %s and %s", left.Kind(), right.Kind())
	}
	return values.Number{Value: ln.Value + rn.Value}
}

func (ev *Evaluator) evalArithmetic(n *ast.Binary, left, right values.Object) values.Object {
	// '*' on a string repeats it the given number of times, mirroring
	// the teacher's evaluateBinaryOp string*number special case.
	if n.Op == "*" {
		if ls, ok := left.(values.String); ok {
			rn, ok := right.(values.Number)
			if !ok {
				return runtimeErrorAt(n, "cannot multiply string by %s", right.Kind())
			}
			return values.String{Value: repeatString(ls.Value, int(rn.Value))}
		}
	}
	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return runtimeErrorAt(n, "operator %q requires numeric operands, got %s and %s", n.Op, left.Kind(), right.Kind())
	}
	switch n.Op {
	case "-":
		return values.Number{Value: ln.Value - rn.Value}
	case "*":
		return values.Number{Value: ln.Value * rn.Value}
	case "/":
		if rn.Value == 0 {
			return runtimeErrorAt(n, "division by zero")
		}
		return values.Number{Value: ln.Value / rn.Value}
	case "%":
		if rn.Value == 0 {
			return runtimeErrorAt(n, "modulo by zero")
		}
		return values.Number{Value: math.Mod(ln.Value, rn.Value)}
	}
	return runtimeErrorAt(n, "unknown arithmetic operator %q", n.Op)
}

func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
