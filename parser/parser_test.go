/*
File    : sketch/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-mix/ast"
	"github.com/stretchr/testify/assert"
)

func TestParser_PrecedenceMultiplyBeforeAdd(t *testing.T) {
	p := New("2 + 3 * 4")
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		bin := stmts[0].(*ast.Binary)
		assert.Equal(t, "+", bin.Op)
		assert.Equal(t, float64(2), bin.Left.(*ast.Literal).Num)
		rhs := bin.Right.(*ast.Binary)
		assert.Equal(t, "*", rhs.Op)
	}
}

func TestParser_LeftNestingMatchesOriginalRotation(t *testing.T) {
	// "1 - 2 - 3" does not rotate at equal precedence (ported literally
	// from the original parser's single-level check), so it nests as
	// 1 - (2 - 3), not (1 - 2) - 3.
	p := New("1 - 2 - 3")
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		outer := stmts[0].(*ast.Binary)
		assert.Equal(t, "-", outer.Op)
		assert.Equal(t, float64(1), outer.Left.(*ast.Literal).Num)
		inner := outer.Right.(*ast.Binary)
		assert.Equal(t, "-", inner.Op)
		assert.Equal(t, float64(2), inner.Left.(*ast.Literal).Num)
		assert.Equal(t, float64(3), inner.Right.(*ast.Literal).Num)
	}
}

func TestParser_AssignStatement(t *testing.T) {
	p := New(`prepare x as 2 + 3 * 4`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		v := stmts[0].(*ast.Var)
		assert.Equal(t, "x", v.Name)
		assert.NotNil(t, v.Initializer)
	}
}

func TestParser_FieldAssignment(t *testing.T) {
	p := New(`prepare p.age as 10`)
	stmts, _ := p.Parse()
	if assert.Len(t, stmts, 1) {
		set := stmts[0].(*ast.Set)
		assert.Equal(t, "p", set.VarName)
		assert.Equal(t, "age", set.FieldName)
	}
}

func TestParser_FuncDeclWithEarlyReturn(t *testing.T) {
	p := New(`sketch max needs (a, b) { if (a > b) { finished a } finished b }`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		fn := stmts[0].(*ast.Func)
		assert.Equal(t, "max", fn.Name)
		assert.Equal(t, []string{"a", "b"}, fn.Params)
		if assert.Len(t, fn.Body, 2) {
			cond := fn.Body[0].(*ast.Conditional)
			bin := cond.Condition.(*ast.Binary)
			assert.Equal(t, ">", bin.Op)
			ret := fn.Body[1].(*ast.Return)
			assert.Equal(t, "b", ret.Value.(*ast.Var).Name)
		}
	}
}

func TestParser_CallChain(t *testing.T) {
	p := New(`a.push(1)[0].value`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		pg := stmts[0].(*ast.PointGet)
		assert.Equal(t, "value", pg.Field)
		get := pg.Target.(*ast.Get)
		assert.True(t, get.KeyIsExpression)
		call := get.Target.(*ast.Call)
		assert.Len(t, call.Args, 1)
		method := call.Callee.(*ast.PointGet)
		assert.Equal(t, "push", method.Field)
	}
}

func TestParser_ForLoop(t *testing.T) {
	p := New(`loop i through (0, 5) { print(i) }`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		f := stmts[0].(*ast.For)
		assert.Equal(t, "i", f.ID)
		assert.Equal(t, float64(0), f.Range[0].(*ast.Literal).Num)
		assert.Equal(t, float64(5), f.Range[1].(*ast.Literal).Num)
	}
}

func TestParser_WhileLoop(t *testing.T) {
	p := New(`while (i < 5) { prepare i as i + 1 }`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		w := stmts[0].(*ast.While)
		assert.IsType(t, &ast.Binary{}, w.Condition)
		assert.Len(t, w.Body, 1)
	}
}

func TestParser_ConditionalChain(t *testing.T) {
	p := New(`if (a > b) { finished 1 } elif (a == b) { finished 0 } else { finished 0 - 1 }`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 1) {
		cond := stmts[0].(*ast.Conditional)
		if assert.Len(t, cond.ElseChain, 1) {
			elif := cond.ElseChain[0]
			assert.Equal(t, "==", elif.Condition.(*ast.Binary).Op)
			if assert.Len(t, elif.ElseChain, 1) {
				elseClause := elif.ElseChain[0]
				lit := elseClause.Condition.(*ast.Literal)
				assert.Equal(t, ast.BooleanContent, lit.Kind)
				assert.True(t, lit.Boolean)
			}
		}
	}
}

func TestParser_StructDeclAndInstance(t *testing.T) {
	p := New(`brush Point has { x, y }
prepare origin as prep Point(x: 0, y: 0)`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	if assert.Len(t, stmts, 2) {
		decl := stmts[0].(*ast.Struct)
		assert.Equal(t, "Point", decl.Name)
		assert.Equal(t, []string{"x", "y"}, decl.FieldNames)

		v := stmts[1].(*ast.Var)
		inst := v.Initializer.(*ast.Instance)
		assert.Equal(t, "Point", inst.TypeName)
		assert.Equal(t, []string{"x", "y"}, inst.FieldOrder)
	}
}

func TestParser_ArrayLiteral(t *testing.T) {
	p := New(`prepare a as [3, 1, 2]`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	arr := stmts[0].(*ast.Var).Initializer.(*ast.Array)
	assert.Len(t, arr.Items, 3)
}

func TestParser_UnaryNot(t *testing.T) {
	p := New(`!true`)
	stmts, errs := p.Parse()
	assert.Empty(t, errs)
	u := stmts[0].(*ast.Unary)
	assert.Equal(t, "!", u.Op)
}

func TestParser_UnexpectedTokenRecordsError(t *testing.T) {
	p := New(`)`)
	_, errs := p.Parse()
	assert.NotEmpty(t, errs)
}
