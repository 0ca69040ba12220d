package ast

// Expr is a node of an expression tree. The set of implementations is
// closed: Constant, Variable, BinaryExpr, NegateExpr and CallExpr.
//
// Nodes are never mutated once built and every node has exactly one
// parent. Use Clone to reuse a subtree in another tree.
type Expr interface {
	Dump() string
	expr()
}

// Op is the operator of a BinaryExpr.
type Op int

// Binary operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var opStrings = map[Op]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
}

func (o Op) String() string { return opStrings[o] }

// Constant is a literal number, or a named constant when Name is set.
type Constant struct {
	Value float64
	Name  string
}

func (*Constant) expr() {}

// IsLiteral reports whether c is an unnamed number.
func (c *Constant) IsLiteral() bool { return c.Name == "" }

// Variable is a single letter symbol.
type Variable struct {
	Name string
}

func (*Variable) expr() {}

type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*BinaryExpr) expr() {}

// NegateExpr is unary minus.
type NegateExpr struct {
	Operand Expr
}

func (*NegateExpr) expr() {}

// CallExpr applies Func to Arg. When Exponent is set the node stands for
// (Func(Arg))^Exponent, the f^n(x) shorthand.
type CallExpr struct {
	Func     Function
	Arg      Expr
	Exponent Expr
}

func (*CallExpr) expr() {}

// Num returns a literal constant.
func Num(v float64) *Constant { return &Constant{Value: v} }

// Var returns a variable.
func Var(name string) *Variable { return &Variable{Name: name} }

// Binary returns l op r.
func Binary(op Op, l, r Expr) *BinaryExpr { return &BinaryExpr{Op: op, Left: l, Right: r} }

func Add(l, r Expr) *BinaryExpr { return Binary(OpAdd, l, r) }
func Sub(l, r Expr) *BinaryExpr { return Binary(OpSub, l, r) }
func Mul(l, r Expr) *BinaryExpr { return Binary(OpMul, l, r) }
func Div(l, r Expr) *BinaryExpr { return Binary(OpDiv, l, r) }
func Pow(l, r Expr) *BinaryExpr { return Binary(OpPow, l, r) }

// Neg returns -e.
func Neg(e Expr) *NegateExpr { return &NegateExpr{Operand: e} }

// Call returns f(arg).
func Call(f Function, arg Expr) *CallExpr { return &CallExpr{Func: f, Arg: arg} }

// CallPow returns f^exp(arg).
func CallPow(f Function, arg, exp Expr) *CallExpr {
	return &CallExpr{Func: f, Arg: arg, Exponent: exp}
}

// IsLiteral reports whether e is a literal constant, and returns its value.
func IsLiteral(e Expr) (float64, bool) {
	c, ok := e.(*Constant)
	if !ok || !c.IsLiteral() {
		return 0, false
	}
	return c.Value, true
}

// IsNum reports whether e is the literal v.
func IsNum(e Expr, v float64) bool {
	n, ok := IsLiteral(e)
	return ok && n == v
}
