// Package parser builds expression trees from calculator input.
package parser

import (
	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/diag"
	"go.creack.net/deriv/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int

	prevToken lexer.Token
	curToken  lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens}
	p.createTokenLookups()
	return p
}

// Parse tokenizes, classifies and parses input.
func Parse(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token stream. Raw identifiers are classified
// first, a missing trailing TokEOF is implied.
//
// Errors are *diag.Error values.
func ParseTokens(tokens []lexer.Token) (expr ast.Expr, err error) {
	tokens = lexer.Classify(tokens)
	if n := len(tokens); n == 0 || tokens[n-1].Type != lexer.TokEOF {
		pos := 0
		if n > 0 {
			pos = tokens[n-1].Pos + len(tokens[n-1].Value)
		}
		tokens = append(tokens, lexer.Token{Type: lexer.TokEOF, Pos: pos})
	}

	p := newParser(tokens)
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*diag.Error)
			if !ok {
				panic(r)
			}
			expr, err = nil, e
		}
	}()

	p.nextToken()
	if p.curToken.Type == lexer.TokEOF {
		return nil, diag.EmptyExpression()
	}
	expr = parseExpr(p, bpDefault)
	switch p.curToken.Type {
	case lexer.TokEOF:
		return expr, nil
	case lexer.TokParenRight:
		return nil, diag.UnbalancedParentheses(p.curToken.Pos)
	default:
		return nil, p.unexpectedError()
	}
}

func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.pos < len(p.tokens) {
		p.curToken = p.tokens[p.pos]
		p.pos++
	}
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	panic(p.unexpectedError())
}

func (p *parser) unexpected() {
	panic(p.unexpectedError())
}

func (p *parser) unexpectedError() *diag.Error {
	desc := p.curToken.Value
	if desc == "" {
		desc = p.curToken.Type.String()
	}
	return diag.UnexpectedToken(desc, p.curToken.Pos)
}
