package ast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/parser"
)

func x() ast.Expr { return ast.Var("x") }

func TestDump(t *testing.T) {
	t.Parallel()

	pi, _ := ast.LookupConstant("pi")
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"integer", ast.Num(2), "2"},
		{"decimal", ast.Num(0.5), "0.5"},
		{"negative zero", ast.Num(math.Copysign(0, -1)), "0"},
		{"named constant", pi, "pi"},
		{"sum", ast.Add(x(), ast.Num(1)), "x+1"},
		{"difference of sum", ast.Sub(x(), ast.Add(x(), ast.Num(1))), "x-(x+1)"},
		{"left sum kept flat", ast.Sub(ast.Add(x(), ast.Num(1)), x()), "x+1-x"},
		{"product of sums", ast.Mul(ast.Add(x(), ast.Num(1)), ast.Sub(x(), ast.Num(1))), "(x+1)*(x-1)"},
		{"coefficient", ast.Mul(ast.Num(2), x()), "2*x"},
		{"negative factor", ast.Mul(ast.Num(2), ast.Num(-1)), "2*(-1)"},
		{"quotient", ast.Div(ast.Num(1), ast.Mul(ast.Num(2), x())), "1/(2*x)"},
		{"quotient times", ast.Mul(ast.Div(ast.Num(1), x()), x()), "1/x*x"},
		{"times quotient", ast.Mul(x(), ast.Div(ast.Num(1), x())), "x*(1/x)"},
		{"power", ast.Pow(x(), ast.Num(2)), "x^2"},
		{"power right assoc", ast.Pow(x(), ast.Pow(x(), ast.Num(2))), "x^x^2"},
		{"power left nested", ast.Pow(ast.Pow(x(), ast.Num(2)), ast.Num(3)), "(x^2)^3"},
		{"negative base", ast.Pow(ast.Num(-2), x()), "(-2)^x"},
		{"negated base", ast.Pow(ast.Neg(x()), ast.Num(2)), "(-x)^2"},
		{"negative exponent", ast.Pow(x(), ast.Neg(ast.Num(1))), "x^(-1)"},
		{"negate", ast.Neg(x()), "-x"},
		{"negate sum", ast.Neg(ast.Add(x(), ast.Num(1))), "-(x+1)"},
		{"negate product", ast.Neg(ast.Mul(ast.Num(2), x())), "-(2*x)"},
		{"negate power", ast.Neg(ast.Pow(x(), ast.Num(2))), "-x^2"},
		{"add negate", ast.Add(x(), ast.Neg(x())), "x+(-x)"},
		{"call", ast.Call(ast.FuncSin, x()), "sin(x)"},
		{"call shorthand", ast.CallPow(ast.FuncCos, x(), ast.Num(2)), "cos^2(x)"},
		{"call shorthand group", ast.CallPow(ast.FuncCos, x(), ast.Add(x(), ast.Num(1))), "cos^(x+1)(x)"},
		{"call shorthand negative", ast.CallPow(ast.FuncCos, x(), ast.Num(-1)), "cos^(-1)(x)"},
		{"product of calls", ast.Mul(ast.Call(ast.FuncSin, x()), ast.Call(ast.FuncCos, x())), "sin(x)*cos(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.expr.Dump())
		})
	}
}

// Rendered output parses back to the same tree.
func TestDumpRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"x+1",
		"x-(x+1)",
		"(x+1)*(x-1)",
		"1/(2*x)",
		"x^x^2",
		"(x^2)^3",
		"-x^2",
		"-(x+1)",
		"2*sin(x)*cos(x)",
		"cos^2(x)",
		"cos^(x+1)(x)",
		"1/cos^2(x)",
		"e^x*log(2)",
		"x*(1/x)",
		"x^(-1)",
		"abs(x)*sqrt(x^2-1)",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			expr, err := parser.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, expr.Dump())

			again, err := parser.Parse(expr.Dump())
			require.NoError(t, err)
			assert.True(t, ast.Equal(expr, again), "%s != %s", expr.Dump(), again.Dump())
		})
	}
}

func TestCloneEqual(t *testing.T) {
	expr, err := parser.Parse("2*sin^2(x+pi)-e^x/3")
	require.NoError(t, err)

	clone := ast.Clone(expr)
	assert.True(t, ast.Equal(expr, clone))
	assert.NotSame(t, expr, clone)
	assert.Equal(t, ast.Size(expr), ast.Size(clone))

	other, err := parser.Parse("2*sin^2(x+pi)-e^x/4")
	require.NoError(t, err)
	assert.False(t, ast.Equal(expr, other))
}

func TestEqualNamedConstants(t *testing.T) {
	e, _ := ast.LookupConstant("e")
	euler, _ := ast.LookupConstant("euler")
	assert.True(t, ast.Equal(e, euler))
	assert.False(t, ast.Equal(e, ast.Num(math.E)), "named constant is not a literal")

	inf, _ := ast.LookupConstant("inf")
	assert.Equal(t, "inf", inf.Name)
	assert.True(t, math.IsInf(inf.Value, 1))
}

func TestContainsVar(t *testing.T) {
	expr, err := parser.Parse("y*sin^x(2)")
	require.NoError(t, err)
	assert.True(t, ast.ContainsVar(expr, "x"), "variable in shorthand exponent")
	assert.True(t, ast.ContainsVar(expr, "y"))
	assert.False(t, ast.ContainsVar(expr, "z"))
}

func TestFunctions(t *testing.T) {
	fns := ast.Functions()
	require.Len(t, fns, int(ast.FinalFunction)-1)
	for _, f := range fns {
		name := f.String()
		assert.NotEqual(t, "invalid", name)
		got, ok := ast.LookupFunction(name)
		assert.True(t, ok, "lookup %q", name)
		assert.Equal(t, f, got)
	}

	got, ok := ast.LookupFunction("ln")
	assert.True(t, ok)
	assert.Equal(t, ast.FuncLog, got)

	_, ok = ast.LookupFunction("foo")
	assert.False(t, ok)
}

func TestVocabularyOrder(t *testing.T) {
	words := ast.Vocabulary()
	for i := 1; i < len(words); i++ {
		assert.GreaterOrEqual(t, len(words[i-1]), len(words[i]), "%q before %q", words[i-1], words[i])
	}
	assert.Contains(t, words, "sin")
	assert.Contains(t, words, "pi")
	assert.Contains(t, words, "ln")
}
