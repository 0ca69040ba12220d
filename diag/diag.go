// Package diag defines the errors reported while reading an expression.
package diag

import (
	"fmt"
)

// Kind identifies a class of input error.
type Kind int

// Error kinds.
const (
	KindUnknown Kind = iota
	KindEmptyExpression
	KindInvalidCharacter
	KindUnbalancedParentheses
	KindUnexpectedToken
	KindUnknownFunction
	KindAmbiguousIdentifier // Reserved, never produced by the greedy classifier.
)

var kindStrings = map[Kind]string{
	KindUnknown:               "Unknown",
	KindEmptyExpression:       "EmptyExpression",
	KindInvalidCharacter:      "InvalidCharacter",
	KindUnbalancedParentheses: "UnbalancedParentheses",
	KindUnexpectedToken:       "UnexpectedToken",
	KindUnknownFunction:       "UnknownFunction",
	KindAmbiguousIdentifier:   "AmbiguousIdentifier",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for errors.Is. Matching is done on the kind only.
var (
	ErrEmptyExpression       = &Error{Kind: KindEmptyExpression}
	ErrInvalidCharacter      = &Error{Kind: KindInvalidCharacter}
	ErrUnbalancedParentheses = &Error{Kind: KindUnbalancedParentheses}
	ErrUnexpectedToken       = &Error{Kind: KindUnexpectedToken}
	ErrUnknownFunction       = &Error{Kind: KindUnknownFunction}
	ErrAmbiguousIdentifier   = &Error{Kind: KindAmbiguousIdentifier}
)

// Error is a structured input error. Pos is a byte offset in the
// normalized input, -1 when not meaningful.
type Error struct {
	Kind  Kind
	Pos   int
	Char  rune   // KindInvalidCharacter.
	Token string // KindUnexpectedToken.
	Name  string // KindUnknownFunction, KindAmbiguousIdentifier.
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyExpression:
		return "empty expression"
	case KindInvalidCharacter:
		return fmt.Sprintf("invalid character %q at %d", e.Char, e.Pos)
	case KindUnbalancedParentheses:
		if e.Pos < 0 {
			return "unbalanced parentheses"
		}
		return fmt.Sprintf("unbalanced parentheses at %d", e.Pos)
	case KindUnexpectedToken:
		return fmt.Sprintf("unexpected token %s at %d", e.Token, e.Pos)
	case KindUnknownFunction:
		return fmt.Sprintf("unknown function %q", e.Name)
	case KindAmbiguousIdentifier:
		return fmt.Sprintf("ambiguous identifier %q", e.Name)
	}
	return "unknown error"
}

// Is reports whether target is a *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// EmptyExpression returns a KindEmptyExpression error.
func EmptyExpression() *Error {
	return &Error{Kind: KindEmptyExpression, Pos: -1}
}

// InvalidCharacter returns a KindInvalidCharacter error.
func InvalidCharacter(pos int, ch rune) *Error {
	return &Error{Kind: KindInvalidCharacter, Pos: pos, Char: ch}
}

// UnbalancedParentheses returns a KindUnbalancedParentheses error.
func UnbalancedParentheses(pos int) *Error {
	return &Error{Kind: KindUnbalancedParentheses, Pos: pos}
}

// UnexpectedToken returns a KindUnexpectedToken error.
func UnexpectedToken(token string, pos int) *Error {
	return &Error{Kind: KindUnexpectedToken, Pos: pos, Token: token}
}

// UnknownFunction returns a KindUnknownFunction error.
func UnknownFunction(name string, pos int) *Error {
	return &Error{Kind: KindUnknownFunction, Pos: pos, Name: name}
}
