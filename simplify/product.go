package simplify

import (
	"go.creack.net/deriv/ast"
)

func simplifyProduct(n *ast.BinaryExpr) ast.Expr {
	var factors []ast.Expr
	for _, f := range flattenMul(n, nil) {
		factors = flattenMul(simplifyOnce(f), factors)
	}
	return productOf(factors, 1)
}

// flattenMul appends the factors of a Mul chain to out, left to right.
func flattenMul(e ast.Expr, out []ast.Expr) []ast.Expr {
	if n, ok := e.(*ast.BinaryExpr); ok && n.Op == ast.OpMul {
		out = flattenMul(n.Left, out)
		return flattenMul(n.Right, out)
	}
	return append(out, e)
}

// extractCoefficient multiplies the literal factors and the signs of
// negated factors into coeff, and returns the remaining factors in order.
func extractCoefficient(factors []ast.Expr, coeff float64) (float64, []ast.Expr) {
	queue := append([]ast.Expr(nil), factors...)
	var rest []ast.Expr
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		switch n := f.(type) {
		case *ast.Constant:
			if n.IsLiteral() {
				coeff *= n.Value
				continue
			}
		case *ast.NegateExpr:
			coeff = -coeff
			queue = append(flattenMul(n.Operand, nil), queue...)
			continue
		}
		rest = append(rest, f)
	}
	return coeff, rest
}

// productOf rebuilds coeff * factors with the coefficient first. A -1
// coefficient negates the first factor instead.
func productOf(factors []ast.Expr, coeff float64) ast.Expr {
	c, rest := extractCoefficient(factors, coeff)
	switch {
	case c == 0:
		return ast.Num(0)
	case !isFinite(c):
		// Overflow, keep the literals as written.
		kept := make([]ast.Expr, 0, len(factors)+1)
		if coeff != 1 && coeff != -1 {
			kept = append(kept, ast.Num(coeff))
		}
		for _, f := range factors {
			if !ast.IsNum(f, 1) {
				kept = append(kept, f)
			}
		}
		out := buildFactors(kept)
		if coeff == -1 {
			return ast.Neg(out)
		}
		return out
	case len(rest) == 0:
		return ast.Num(c)
	case c == 1:
		return buildFactors(rest)
	case c == -1:
		rest[0] = ast.Neg(rest[0])
		return buildFactors(rest)
	}
	return buildFactors(append([]ast.Expr{ast.Num(c)}, rest...))
}

func buildFactors(factors []ast.Expr) ast.Expr {
	if len(factors) == 0 {
		return ast.Num(1)
	}
	out := factors[0]
	for _, f := range factors[1:] {
		out = ast.Mul(out, f)
	}
	return out
}

// splitCoefficient splits a term into its numeric coefficient and the
// product of its other factors, nil when there are none. A term whose
// coefficient overflows is its own base.
func splitCoefficient(e ast.Expr) (float64, ast.Expr) {
	coeff, rest := extractCoefficient(flattenMul(e, nil), 1)
	if !isFinite(coeff) {
		return 1, e
	}
	if len(rest) == 0 {
		return coeff, nil
	}
	return coeff, buildFactors(rest)
}
