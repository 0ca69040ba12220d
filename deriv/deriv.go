// Package deriv computes symbolic derivatives of expression trees.
//
// Derive never fails and never modifies its input: the result is a new
// tree, every subtree it borrows from the input is cloned. The result is
// not simplified, see package simplify.
package deriv

import (
	"fmt"

	"go.creack.net/deriv/ast"
)

// Derive returns the derivative of e with respect to the variable v.
func Derive(e ast.Expr, v string) ast.Expr {
	if !ast.ContainsVar(e, v) {
		// Constant rule, also for 0^y or y/0.
		return ast.Num(0)
	}
	switch n := e.(type) {
	case *ast.Constant:
		return ast.Num(0)
	case *ast.Variable:
		if n.Name == v {
			return ast.Num(1)
		}
		return ast.Num(0)
	case *ast.NegateExpr:
		return ast.Neg(Derive(n.Operand, v))
	case *ast.BinaryExpr:
		return deriveBinary(n, v)
	case *ast.CallExpr:
		if n.Exponent != nil {
			// f^n(x) is (f(x))^n.
			return powerRule(ast.Call(n.Func, n.Arg), n.Exponent, v)
		}
		return chainRule(n, v)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func deriveBinary(n *ast.BinaryExpr, v string) ast.Expr {
	l, r := n.Left, n.Right
	switch n.Op {
	case ast.OpAdd, ast.OpSub:
		return ast.Binary(n.Op, Derive(l, v), Derive(r, v))
	case ast.OpMul:
		// (lr)' = l'r + lr'.
		return ast.Add(
			ast.Mul(Derive(l, v), ast.Clone(r)),
			ast.Mul(ast.Clone(l), Derive(r, v)),
		)
	case ast.OpDiv:
		// (l/r)' = (l'r - lr') / r^2.
		return ast.Div(
			ast.Sub(
				ast.Mul(Derive(l, v), ast.Clone(r)),
				ast.Mul(ast.Clone(l), Derive(r, v)),
			),
			ast.Pow(ast.Clone(r), ast.Num(2)),
		)
	case ast.OpPow:
		return powerRule(l, r, v)
	default:
		panic(fmt.Errorf("unsupported operator %q", n.Op))
	}
}

// powerRule differentiates base^exp. A constant exponent takes the power
// rule, a constant base gives base^exp * exp' * log(base), anything else
// the general form base^exp * (exp' * log(base) + exp * base'/base), valid
// for base > 0.
func powerRule(base, exp ast.Expr, v string) ast.Expr {
	switch baseVar, expVar := ast.ContainsVar(base, v), ast.ContainsVar(exp, v); {
	case !baseVar && !expVar:
		return ast.Num(0)
	case !expVar:
		return ast.Mul(
			ast.Mul(ast.Clone(exp), ast.Pow(ast.Clone(base), decrement(exp))),
			Derive(base, v),
		)
	case !baseVar:
		return ast.Mul(
			ast.Pow(ast.Clone(base), ast.Clone(exp)),
			ast.Mul(Derive(exp, v), ast.Call(ast.FuncLog, ast.Clone(base))),
		)
	}
	return ast.Mul(
		ast.Pow(ast.Clone(base), ast.Clone(exp)),
		ast.Add(
			ast.Mul(Derive(exp, v), ast.Call(ast.FuncLog, ast.Clone(base))),
			ast.Mul(ast.Clone(exp), ast.Div(Derive(base, v), ast.Clone(base))),
		),
	)
}

func decrement(exp ast.Expr) ast.Expr {
	if n, ok := ast.IsLiteral(exp); ok {
		return ast.Num(n - 1)
	}
	return ast.Sub(ast.Clone(exp), ast.Num(1))
}

// chainRule returns f'(u) * u'.
func chainRule(n *ast.CallExpr, v string) ast.Expr {
	rule, ok := outerRules[n.Func]
	if !ok {
		panic(fmt.Errorf("no derivative for function %q", n.Func))
	}
	u := func() ast.Expr { return ast.Clone(n.Arg) }
	return ast.Mul(rule(u), Derive(n.Arg, v))
}
