package parser

import (
	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/lexer"
)

type bindingPower int

// Binding powers, low to high. Function application binds tighter than
// all of them, it is handled entirely by the function nud.
const (
	bpDefault bindingPower = iota
	bpAdditive
	bpImplicit
	bpMultiplicative
	bpUnary
	bpPower
)

type nudHandler func(*parser) ast.Expr
type ledHandler func(*parser, ast.Expr, bindingPower) ast.Expr

type lookupTable[T any] map[lexer.TokenType]T

// Tokens which start an atom. Found in operator position, they multiply.
var atomStarts = []lexer.TokenType{
	lexer.TokNumber,
	lexer.TokVariable,
	lexer.TokConstant,
	lexer.TokFunction,
	lexer.TokParenLeft,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	p.nudLookupTable = lookupTable[nudHandler]{}
	p.ledLookupTable = lookupTable[ledHandler]{}
	p.bindingPowerLookupTable = lookupTable[bindingPower]{}

	// Additive & multiplicative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokMinus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)

	// Power, right associative.
	p.led(lexer.TokCaret, bpPower, parsePowerExpr)

	// Implicit multiplication.
	for _, kind := range atomStarts {
		p.led(kind, bpImplicit, parseImplicitMulExpr)
	}

	// Literals & symbols.
	p.nud(lexer.TokNumber, parsePrimaryExpr)
	p.nud(lexer.TokVariable, parsePrimaryExpr)
	p.nud(lexer.TokConstant, parsePrimaryExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokMinus, parsePrefixExpr)
	p.nud(lexer.TokFunction, parseCallExpr)
}
