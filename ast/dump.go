package ast

import (
	"strconv"
	"strings"
)

// Rendering precedences, low to high.
const (
	precAdd = iota + 1
	precMul
	precNeg
	precPow
	precAtom
)

func precedence(e Expr) int {
	switch n := e.(type) {
	case *Constant:
		if n.IsLiteral() && n.Value < 0 {
			return precNeg
		}
		return precAtom
	case *NegateExpr:
		return precNeg
	case *BinaryExpr:
		switch n.Op {
		case OpAdd, OpSub:
			return precAdd
		case OpMul, OpDiv:
			return precMul
		}
		return precPow
	}
	return precAtom
}

// Dump renders e in the same infix syntax the parser reads.
func Dump(e Expr) string {
	var b strings.Builder
	write(&b, e)
	return b.String()
}

func write(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Constant:
		b.WriteString(formatConstant(n))
	case *Variable:
		b.WriteString(n.Name)
	case *NegateExpr:
		b.WriteByte('-')
		writeOperand(b, n.Operand, precedence(n.Operand) < precNeg)
	case *BinaryExpr:
		writeBinary(b, n)
	case *CallExpr:
		b.WriteString(n.Func.String())
		if n.Exponent != nil {
			b.WriteByte('^')
			writeOperand(b, n.Exponent, !isAtomicExponent(n.Exponent))
		}
		b.WriteByte('(')
		write(b, n.Arg)
		b.WriteByte(')')
	}
}

func writeBinary(b *strings.Builder, n *BinaryExpr) {
	lp, rp := precedence(n.Left), precedence(n.Right)
	var leftParens, rightParens bool
	switch n.Op {
	case OpAdd:
		rightParens = rp == precNeg
	case OpSub:
		rightParens = rp <= precAdd || rp == precNeg
	case OpMul:
		leftParens = lp < precMul
		rightParens = rp < precMul || rp == precNeg || isOp(n.Right, OpDiv)
	case OpDiv:
		leftParens = lp < precMul
		rightParens = rp <= precMul || rp == precNeg
	case OpPow:
		leftParens = lp <= precPow
		rightParens = rp < precPow
	}
	writeOperand(b, n.Left, leftParens)
	b.WriteString(n.Op.String())
	writeOperand(b, n.Right, rightParens)
}

func writeOperand(b *strings.Builder, e Expr, parens bool) {
	if !parens {
		write(b, e)
		return
	}
	b.WriteByte('(')
	write(b, e)
	b.WriteByte(')')
}

func isOp(e Expr, op Op) bool {
	n, ok := e.(*BinaryExpr)
	return ok && n.Op == op
}

// An exponent of the f^n(x) form can be written bare when the parser
// reads it back as a single atom.
func isAtomicExponent(e Expr) bool {
	switch n := e.(type) {
	case *Variable:
		return true
	case *Constant:
		return !n.IsLiteral() || n.Value >= 0
	}
	return false
}

func formatConstant(c *Constant) string {
	if !c.IsLiteral() {
		return c.Name
	}
	if c.Value == 0 {
		return "0" // Avoid "-0".
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

func (c *Constant) Dump() string   { return Dump(c) }
func (v *Variable) Dump() string   { return Dump(v) }
func (b *BinaryExpr) Dump() string { return Dump(b) }
func (n *NegateExpr) Dump() string { return Dump(n) }
func (c *CallExpr) Dump() string   { return Dump(c) }
