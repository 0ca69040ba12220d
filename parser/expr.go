package parser

import (
	"strconv"

	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/diag"
	"go.creack.net/deriv/lexer"
)

var binaryOps = map[lexer.TokenType]ast.Op{
	lexer.TokPlus:  ast.OpAdd,
	lexer.TokMinus: ast.OpSub,
	lexer.TokStar:  ast.OpMul,
	lexer.TokSlash: ast.OpDiv,
	lexer.TokCaret: ast.OpPow,
}

func parseExpr(p *parser, bp bindingPower) ast.Expr {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		p.unexpected()
	}
	left := nudFn(p)

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn := p.ledLookupTable[p.curToken.Type]
		left = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
	}

	return left
}

func parsePrimaryExpr(p *parser) ast.Expr {
	tok := p.curToken
	switch tok.Type {
	case lexer.TokNumber:
		number, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			panic(diag.UnexpectedToken(tok.Value, tok.Pos))
		}
		p.nextToken()
		return ast.Num(number)
	case lexer.TokVariable:
		p.nextToken()
		return ast.Var(tok.Value)
	case lexer.TokConstant:
		c, ok := ast.LookupConstant(tok.Value)
		if !ok {
			p.unexpected()
		}
		p.nextToken()
		return c
	default:
		p.unexpected()
		return nil
	}
}

func parseGroupingExpr(p *parser) ast.Expr {
	open := p.expect(lexer.TokParenLeft)
	p.nextToken()
	inner := parseExpr(p, bpDefault)
	switch p.curToken.Type {
	case lexer.TokParenRight:
		p.nextToken()
		return inner
	case lexer.TokEOF:
		panic(diag.UnbalancedParentheses(open.Pos))
	default:
		p.unexpected()
		return nil
	}
}

func parsePrefixExpr(p *parser) ast.Expr {
	p.expect(lexer.TokMinus)
	p.nextToken()
	return ast.Neg(parseExpr(p, bpUnary))
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp)

	return ast.Binary(binaryOps[operator.Type], left, right)
}

// parsePowerExpr parses the right hand side one level lower so that
// x^y^z reads as x^(y^z).
func parsePowerExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	p.expect(lexer.TokCaret)
	p.nextToken()
	right := parseExpr(p, bp-1)

	return ast.Pow(left, right)
}

// parseImplicitMulExpr is the led of atom tokens: the current token is
// not consumed, it starts the right operand.
func parseImplicitMulExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	right := parseExpr(p, bp)
	return ast.Mul(left, right)
}
