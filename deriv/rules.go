package deriv

import (
	"go.creack.net/deriv/ast"
)

// outerRule builds f'(u). Each call of u returns a fresh copy of the
// argument, so a rule may use it more than once.
type outerRule func(u func() ast.Expr) ast.Expr

func one() ast.Expr { return ast.Num(1) }
func two() ast.Expr { return ast.Num(2) }

func sq(e ast.Expr) ast.Expr { return ast.Pow(e, two()) }

func recip(e ast.Expr) ast.Expr { return ast.Div(one(), e) }

func call(f ast.Function, u func() ast.Expr) ast.Expr { return ast.Call(f, u()) }

// abs(u)*sqrt(u^2-1), shared by arcsec and arccosec.
func absSqrtSquareMinusOne(u func() ast.Expr) ast.Expr {
	return ast.Mul(call(ast.FuncAbs, u), ast.Call(ast.FuncSqrt, ast.Sub(sq(u()), one())))
}

// Derivatives of the outer function, evaluated at u.
// Domain restrictions are not checked.
var outerRules = map[ast.Function]outerRule{
	ast.FuncSin: func(u func() ast.Expr) ast.Expr { return call(ast.FuncCos, u) },
	ast.FuncCos: func(u func() ast.Expr) ast.Expr { return ast.Neg(call(ast.FuncSin, u)) },
	ast.FuncTan: func(u func() ast.Expr) ast.Expr {
		return recip(ast.CallPow(ast.FuncCos, u(), two()))
	},
	ast.FuncCosec: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(ast.Mul(call(ast.FuncCosec, u), call(ast.FuncCot, u)))
	},
	ast.FuncSec: func(u func() ast.Expr) ast.Expr {
		return ast.Mul(call(ast.FuncSec, u), call(ast.FuncTan, u))
	},
	ast.FuncCot: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(ast.CallPow(ast.FuncCosec, u(), two()))
	},

	ast.FuncArcsin: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Call(ast.FuncSqrt, ast.Sub(one(), sq(u()))))
	},
	ast.FuncArccos: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(recip(ast.Call(ast.FuncSqrt, ast.Sub(one(), sq(u())))))
	},
	ast.FuncArctan: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Add(one(), sq(u())))
	},
	ast.FuncArccot: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(recip(ast.Add(one(), sq(u()))))
	},
	ast.FuncArcsec: func(u func() ast.Expr) ast.Expr {
		return recip(absSqrtSquareMinusOne(u))
	},
	ast.FuncArccosec: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(recip(absSqrtSquareMinusOne(u)))
	},

	ast.FuncSinh: func(u func() ast.Expr) ast.Expr { return call(ast.FuncCosh, u) },
	ast.FuncCosh: func(u func() ast.Expr) ast.Expr { return call(ast.FuncSinh, u) },
	ast.FuncTanh: func(u func() ast.Expr) ast.Expr {
		return recip(ast.CallPow(ast.FuncCosh, u(), two()))
	},
	ast.FuncCosech: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(ast.Mul(call(ast.FuncCosech, u), call(ast.FuncCoth, u)))
	},
	ast.FuncSech: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(ast.Mul(call(ast.FuncSech, u), call(ast.FuncTanh, u)))
	},
	ast.FuncCoth: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(ast.CallPow(ast.FuncCosech, u(), two()))
	},

	ast.FuncArsinh: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Call(ast.FuncSqrt, ast.Add(sq(u()), one())))
	},
	ast.FuncArcosh: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Call(ast.FuncSqrt, ast.Sub(sq(u()), one())))
	},
	ast.FuncArtanh: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Sub(one(), sq(u())))
	},
	ast.FuncArcoth: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Sub(one(), sq(u())))
	},
	ast.FuncArsech: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(recip(ast.Mul(u(), ast.Call(ast.FuncSqrt, ast.Sub(one(), sq(u()))))))
	},
	ast.FuncArcosech: func(u func() ast.Expr) ast.Expr {
		return ast.Neg(recip(ast.Mul(call(ast.FuncAbs, u), ast.Call(ast.FuncSqrt, ast.Add(one(), sq(u()))))))
	},

	ast.FuncLog: func(u func() ast.Expr) ast.Expr { return recip(u()) },
	ast.FuncExp: func(u func() ast.Expr) ast.Expr { return call(ast.FuncExp, u) },
	ast.FuncSqrt: func(u func() ast.Expr) ast.Expr {
		return recip(ast.Mul(two(), call(ast.FuncSqrt, u)))
	},
	// Sign of u. Undefined at 0, left symbolic.
	ast.FuncAbs: func(u func() ast.Expr) ast.Expr {
		return ast.Div(u(), call(ast.FuncAbs, u))
	},
}
