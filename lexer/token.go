package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals + identifiers.
	TokNumber
	TokIdentifier

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokCaret

	// Delimiters.
	TokParenLeft
	TokParenRight

	// Classified identifiers, see Classify.
	TokFunction
	TokConstant
	TokVariable

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",

	TokPlus:  "+",
	TokMinus: "-",
	TokStar:  "*",
	TokSlash: "/",
	TokCaret: "^",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",

	TokFunction: "FUNCTION",
	TokConstant: "CONSTANT",
	TokVariable: "VARIABLE",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsOperator reports whether tt is one of + - * / ^.
func (tt TokenType) IsOperator() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokStar, TokSlash, TokCaret)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string
	Pos   int // Byte offset of the first character.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case t.Type == TokError:
		return fmt.Sprintf("ERROR[%d]: %s", t.Pos, t.Value)
	case t.Type.IsOperator(), t.Type == TokParenLeft, t.Type == TokParenRight:
		return fmt.Sprintf("%q", t.Value)
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
