// Package simplify rewrites expression trees into shorter equivalent
// forms.
//
// Rewrites: x+0, x*1, x*0, x/1, 0/x, x^1, x^0, 1^x, double negation,
// folding of literal arithmetic when the result is finite, like terms of
// a sum collected (x-1+x+1 is 2*x), literal factors of a product folded
// into a leading coefficient, log(e), log(1), exp(0).
//
// Sums and products are flattened and rebuilt left to right in their
// original order. Named constants are kept symbolic.
package simplify

import (
	"math"

	"go.creack.net/deriv/ast"
)

// Simplify returns a simplified copy of e. e is not modified.
//
// The rewrite pass is repeated until it leaves the tree unchanged, so
// Simplify(Simplify(e)) is structurally equal to Simplify(e).
func Simplify(e ast.Expr) ast.Expr {
	cur := ast.Clone(e)
	for limit := ast.Size(cur) + 2; limit > 0; limit-- {
		next := simplifyOnce(cur)
		if ast.Equal(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

func simplifyOnce(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.NegateExpr:
		return simplifyNegate(n)
	case *ast.BinaryExpr:
		switch n.Op {
		case ast.OpAdd, ast.OpSub:
			return simplifySum(n)
		case ast.OpMul:
			return simplifyProduct(n)
		case ast.OpDiv:
			return simplifyQuotient(n)
		case ast.OpPow:
			return simplifyPower(n)
		}
	case *ast.CallExpr:
		return simplifyCall(n)
	}
	// Constants and variables.
	return e
}

func simplifyNegate(n *ast.NegateExpr) ast.Expr {
	operand := simplifyOnce(n.Operand)
	if v, ok := ast.IsLiteral(operand); ok {
		return ast.Num(-v)
	}
	switch o := operand.(type) {
	case *ast.NegateExpr:
		return o.Operand
	case *ast.BinaryExpr:
		if o.Op == ast.OpMul {
			return productOf(flattenMul(o, nil), -1)
		}
	}
	return ast.Neg(operand)
}

func simplifyQuotient(n *ast.BinaryExpr) ast.Expr {
	l, r := simplifyOnce(n.Left), simplifyOnce(n.Right)
	lv, lok := ast.IsLiteral(l)
	rv, rok := ast.IsLiteral(r)
	switch {
	case rok && rv == 1:
		return l
	case lok && lv == 0 && !(rok && rv == 0):
		return ast.Num(0)
	case lok && rok && rv != 0:
		if v := lv / rv; isFinite(v) {
			return ast.Num(v)
		}
	}
	return ast.Div(l, r)
}

func simplifyPower(n *ast.BinaryExpr) ast.Expr {
	base, exp := simplifyOnce(n.Left), simplifyOnce(n.Right)
	bv, bok := ast.IsLiteral(base)
	ev, eok := ast.IsLiteral(exp)
	switch {
	case eok && ev == 1:
		return base
	case eok && ev == 0:
		// Also for a zero base.
		return ast.Num(1)
	case bok && bv == 1:
		return ast.Num(1)
	case bok && eok:
		if v := math.Pow(bv, ev); isFinite(v) {
			return ast.Num(v)
		}
	}
	return ast.Pow(base, exp)
}

func simplifyCall(n *ast.CallExpr) ast.Expr {
	arg := simplifyOnce(n.Arg)
	var exp ast.Expr
	if n.Exponent != nil {
		exp = simplifyOnce(n.Exponent)
		switch {
		case ast.IsNum(exp, 0):
			return ast.Num(1)
		case ast.IsNum(exp, 1):
			exp = nil
		}
	}

	if exp == nil {
		switch {
		case n.Func == ast.FuncLog && isNamed(arg, "e"):
			return ast.Num(1)
		case n.Func == ast.FuncLog && ast.IsNum(arg, 1):
			return ast.Num(0)
		case n.Func == ast.FuncExp && ast.IsNum(arg, 0):
			return ast.Num(1)
		}
	}
	return &ast.CallExpr{Func: n.Func, Arg: arg, Exponent: exp}
}

func isNamed(e ast.Expr, name string) bool {
	c, ok := e.(*ast.Constant)
	return ok && c.Name == name
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
