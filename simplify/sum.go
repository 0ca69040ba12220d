package simplify

import (
	"go.creack.net/deriv/ast"
)

// term is coefficient * base. A nil base is a pure number.
type term struct {
	coeff float64
	base  ast.Expr
}

// sum collects the terms of a flattened Add/Sub chain, merging terms with
// equal bases in order of first appearance.
type sum struct {
	terms []term
}

func simplifySum(n *ast.BinaryExpr) ast.Expr {
	var s sum
	s.add(n, 1, false)
	return s.build()
}

// add walks e with the given sign. simplified tells whether e is
// already the output of a rewrite pass.
func (s *sum) add(e ast.Expr, sign float64, simplified bool) {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		switch n.Op {
		case ast.OpAdd:
			s.add(n.Left, sign, simplified)
			s.add(n.Right, sign, simplified)
			return
		case ast.OpSub:
			s.add(n.Left, sign, simplified)
			s.add(n.Right, -sign, simplified)
			return
		}
	case *ast.NegateExpr:
		if isSum(n.Operand) {
			s.add(n.Operand, -sign, simplified)
			return
		}
	}
	if !simplified {
		e = simplifyOnce(e)
		if isSum(e) || isNegatedSum(e) {
			s.add(e, sign, true)
			return
		}
	}
	coeff, base := splitCoefficient(e)
	s.merge(sign*coeff, base)
}

// merge adds coeff to the first term with an equal base whose coefficient
// stays finite, or starts a new term.
func (s *sum) merge(coeff float64, base ast.Expr) {
	for i := range s.terms {
		if !ast.Equal(s.terms[i].base, base) {
			continue
		}
		if c := s.terms[i].coeff + coeff; isFinite(c) {
			s.terms[i].coeff = c
			return
		}
	}
	s.terms = append(s.terms, term{coeff: coeff, base: base})
}

// build rebuilds the sum left associatively. Negative terms after the
// first one become subtractions.
func (s *sum) build() ast.Expr {
	var out ast.Expr
	for _, t := range s.terms {
		if t.coeff == 0 {
			continue
		}
		if out == nil {
			out = termExpr(t.coeff, t.base)
			continue
		}
		if t.coeff < 0 {
			out = ast.Sub(out, termExpr(-t.coeff, t.base))
		} else {
			out = ast.Add(out, termExpr(t.coeff, t.base))
		}
	}
	if out == nil {
		return ast.Num(0)
	}
	return out
}

func termExpr(coeff float64, base ast.Expr) ast.Expr {
	if base == nil {
		return ast.Num(coeff)
	}
	return productOf(flattenMul(base, nil), coeff)
}

func isSum(e ast.Expr) bool {
	n, ok := e.(*ast.BinaryExpr)
	return ok && (n.Op == ast.OpAdd || n.Op == ast.OpSub)
}

func isNegatedSum(e ast.Expr) bool {
	n, ok := e.(*ast.NegateExpr)
	return ok && isSum(n.Operand)
}
