/*
File    : sketch/eval/eval_loops.go
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

// evalFor implements For(id, [a,b], body): a fresh per-iteration scope
// over the half-open integer range [floor(a), floor(b)), ported from the
// teacher's evalForLoop two-level loop/iteration scope structure.
func (ev *Evaluator) evalFor(n *ast.For, scp *scope.Scope) values.Object {
	begin := ev.Eval(n.Range[0], scp)
	if values.IsError(begin) {
		return begin
	}
	end := ev.Eval(n.Range[1], scp)
	if values.IsError(end) {
		return end
	}
	bn, bok := begin.(values.Number)
	en, eok := end.(values.Number)
	if !bok || !eok {
		return runtimeErrorAt(n, "loop range bounds must be numbers")
	}

	loopScope := scope.NewScope(scp)
	for i := int(math.Floor(bn.Value)); i < int(math.Floor(en.Value)); i++ {
		iterScope := scope.NewScope(loopScope)
		iterScope.BindValue(n.ID, values.Number{Value: float64(i)})
		result := ev.evalBlock(n.Body, iterScope)
		if values.IsError(result) || values.IsReturn(result) {
			return result
		}
	}
	return values.None{}
}

// evalWhile implements While(c, body): loop while c evaluates to the
// literal boolean true, stopping as soon as it is anything else.
func (ev *Evaluator) evalWhile(n *ast.While, scp *scope.Scope) values.Object {
	loopScope := scope.NewScope(scp)
	for {
		cond := ev.Eval(n.Condition, loopScope)
		if values.IsError(cond) {
			return cond
		}
		b, ok := cond.(values.Boolean)
		if !ok || !b.Value {
			return values.None{}
		}
		iterScope := scope.NewScope(loopScope)
		result := ev.evalBlock(n.Body, iterScope)
		if values.IsError(result) || values.IsReturn(result) {
			return result
		}
	}
}

// evalConditional implements Conditional(c, t, else_chain): run Then when
// c is true; otherwise hand off to the next chained clause (an elif or
// the trailing else, itself a *ast.Conditional), if any.
func (ev *Evaluator) evalConditional(n *ast.Conditional, scp *scope.Scope) values.Object {
	cond := ev.Eval(n.Condition, scp)
	if values.IsError(cond) {
		return cond
	}
	b, ok := cond.(values.Boolean)
	if !ok {
		return runtimeErrorAt(n, "condition must evaluate to a boolean, got %s", cond.Kind())
	}
	if b.Value {
		return ev.evalBlock(n.Then, scope.NewScope(scp))
	}
	if len(n.ElseChain) > 0 {
		return ev.evalConditional(n.ElseChain[0], scp)
	}
	return values.None{}
}
