/*
File    : sketch/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-mix/builtin"
	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses and executes src and returns what it wrote to stdout; a parse
// or run error fails the test.
func run(t *testing.T, src string) string {
	t.Helper()
	p := parser.New(src)
	stmts, errs := p.Parse()
	require.Empty(t, errs)

	var out bytes.Buffer
	ev := eval.New(&out, strings.NewReader(""))
	builtin.Register(ev.Global, &out, ev.Reader)

	_, err := ev.Run(stmts)
	require.NoError(t, err)
	return out.String()
}

func TestScenario1_ArithmeticAndPrecedence(t *testing.T) {
	out := run(t, `prepare x as 2 + 3 * 4~comment
print(x)`)
	assert.Equal(t, "14\n", out)
}

func TestScenario2_StringRepetition(t *testing.T) {
	out := run(t, `print("ab" * 3)`)
	assert.Equal(t, "ababab\n", out)
}

func TestScenario3_FunctionWithEarlyReturn(t *testing.T) {
	out := run(t, `sketch max needs (a, b) { if (a > b) { finished a } finished b }
print(max(7, 3))`)
	assert.Equal(t, "7\n", out)
}

func TestScenario4_BoundedLoopWithClosureSideEffect(t *testing.T) {
	out := run(t, `prepare s as 0
loop i through (0, 5) { prepare s as s + i }
print(s)`)
	assert.Equal(t, "10\n", out)
}

func TestScenario5_RecordConstructionAndFieldUpdate(t *testing.T) {
	out := run(t, `brush P has { x, y }
prepare p as prep P(x: 1, y: 2)
prepare p.x as 10
print(p)`)
	assert.Equal(t, "P { x: 10, y: 2 }\n", out)
}

func TestScenario6_ArrayMethodRewritingVariable(t *testing.T) {
	out := run(t, `prepare a as [3, 1, 2]
a.sort()
print(a)`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestInvariant_ReverseTwiceRestoresArray(t *testing.T) {
	out := run(t, `prepare a as [1, 2, 3]
a.reverse()
a.reverse()
print(a)`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestInvariant_SortIsIdempotent(t *testing.T) {
	out := run(t, `prepare a as [3, 1, 2]
a.sort()
a.sort()
print(a)`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestDivisionByZeroFails(t *testing.T) {
	p := parser.New(`print(1 / 0)`)
	stmts, errs := p.Parse()
	require.Empty(t, errs)
	var out bytes.Buffer
	ev := eval.New(&out, strings.NewReader(""))
	builtin.Register(ev.Global, &out, ev.Reader)
	_, err := ev.Run(stmts)
	assert.Error(t, err)
}

func TestUndefinedVariableFails(t *testing.T) {
	p := parser.New(`print(missing)`)
	stmts, errs := p.Parse()
	require.Empty(t, errs)
	var out bytes.Buffer
	ev := eval.New(&out, strings.NewReader(""))
	builtin.Register(ev.Global, &out, ev.Reader)
	_, err := ev.Run(stmts)
	assert.Error(t, err)
}

func TestComparison_StringOrderingSucceeds(t *testing.T) {
	out := run(t, `print("abc" < "abd")`)
	assert.Equal(t, "true\n", out)
}

func TestComparison_BooleanOrderingSucceeds(t *testing.T) {
	out := run(t, `print(true > false)`)
	assert.Equal(t, "true\n", out)
}

func TestComparison_MixedKindsFails(t *testing.T) {
	p := parser.New(`print(1 < "a")`)
	stmts, errs := p.Parse()
	require.Empty(t, errs)
	var out bytes.Buffer
	ev := eval.New(&out, strings.NewReader(""))
	builtin.Register(ev.Global, &out, ev.Reader)
	_, err := ev.Run(stmts)
	assert.Error(t, err)
}

func TestWhileLoop(t *testing.T) {
	out := run(t, `prepare i as 0
while (i < 3) {
  print(i)
  prepare i as i + 1
}`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestClosureCapturesOuterScope(t *testing.T) {
	out := run(t, `prepare base as 10
sketch addBase needs (x) { finished x + base }
print(addBase(5))`)
	assert.Equal(t, "15\n", out)
}
