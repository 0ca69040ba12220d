package parser

import (
	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/diag"
	"go.creack.net/deriv/lexer"
)

// Tokens allowed in a bare function argument, as in sinx or sin2x.
var bareArgumentTokens = []lexer.TokenType{
	lexer.TokNumber,
	lexer.TokVariable,
	lexer.TokConstant,
}

// parseCallExpr parses f(arg), f arg, f^n(arg) and f^n arg.
func parseCallExpr(p *parser) ast.Expr {
	tok := p.expect(lexer.TokFunction)
	f, ok := ast.LookupFunction(tok.Value)
	if !ok {
		panic(diag.UnknownFunction(tok.Value, tok.Pos))
	}
	p.nextToken()

	var exponent ast.Expr
	if p.curToken.Type == lexer.TokCaret {
		p.nextToken()
		exponent = parseShorthandExponent(p)
	}

	return &ast.CallExpr{
		Func:     f,
		Arg:      parseCallArgument(p),
		Exponent: exponent,
	}
}

// parseShorthandExponent reads the n of f^n(x): a single atom or a
// parenthesized group, so the following group stays the argument.
func parseShorthandExponent(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	case lexer.TokNumber, lexer.TokVariable, lexer.TokConstant:
		return parsePrimaryExpr(p)
	default:
		p.unexpected()
		return nil
	}
}

func parseCallArgument(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	case lexer.TokFunction:
		return parseCallExpr(p)
	case lexer.TokNumber, lexer.TokVariable, lexer.TokConstant:
		return parseBareArgument(p)
	default:
		p.unexpected()
		return nil
	}
}

// parseBareArgument reads adjacent numbers, variables and constants,
// each with an optional power: sin2x is sin(2*x), sinx^2 is sin(x^2).
// It stops at operators, parentheses and function names.
func parseBareArgument(p *parser) ast.Expr {
	arg := parseBareFactor(p)
	for p.curToken.Type.IsOneOf(bareArgumentTokens...) {
		arg = ast.Mul(arg, parseBareFactor(p))
	}
	return arg
}

func parseBareFactor(p *parser) ast.Expr {
	base := parsePrimaryExpr(p)
	if p.curToken.Type != lexer.TokCaret {
		return base
	}
	return parsePowerExpr(p, base, bpPower)
}
