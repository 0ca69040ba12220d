package ast

import "fmt"

// Clone returns a deep copy of e.
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case nil:
		return nil
	case *Constant:
		c := *n
		return &c
	case *Variable:
		return &Variable{Name: n.Name}
	case *BinaryExpr:
		return &BinaryExpr{Op: n.Op, Left: Clone(n.Left), Right: Clone(n.Right)}
	case *NegateExpr:
		return &NegateExpr{Operand: Clone(n.Operand)}
	case *CallExpr:
		return &CallExpr{Func: n.Func, Arg: Clone(n.Arg), Exponent: Clone(n.Exponent)}
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Name == y.Name && (x.Value == y.Value || x.Name != "")
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *BinaryExpr:
		y, ok := b.(*BinaryExpr)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *NegateExpr:
		y, ok := b.(*NegateExpr)
		return ok && Equal(x.Operand, y.Operand)
	case *CallExpr:
		y, ok := b.(*CallExpr)
		return ok && x.Func == y.Func && Equal(x.Arg, y.Arg) && Equal(x.Exponent, y.Exponent)
	default:
		panic(fmt.Errorf("unsupported expression type %T", a))
	}
}

// ContainsVar reports whether the variable name occurs in e.
func ContainsVar(e Expr, name string) bool {
	switch n := e.(type) {
	case nil, *Constant:
		return false
	case *Variable:
		return n.Name == name
	case *BinaryExpr:
		return ContainsVar(n.Left, name) || ContainsVar(n.Right, name)
	case *NegateExpr:
		return ContainsVar(n.Operand, name)
	case *CallExpr:
		return ContainsVar(n.Arg, name) || ContainsVar(n.Exponent, name)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

// Size returns the number of nodes in e.
func Size(e Expr) int {
	switch n := e.(type) {
	case nil:
		return 0
	case *Constant, *Variable:
		return 1
	case *BinaryExpr:
		return 1 + Size(n.Left) + Size(n.Right)
	case *NegateExpr:
		return 1 + Size(n.Operand)
	case *CallExpr:
		return 1 + Size(n.Arg) + Size(n.Exponent)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}
