// Package lexer turns calculator input into tokens.
package lexer

import (
	"strings"
	"unicode/utf8"

	"go.creack.net/deriv/diag"
)

const (
	digits      = "0123456789"
	letterChars = "abcdefghijklmnopqrstuvwxyz"
)

type Lexer struct {
	input string

	curToken Token
	err      *diag.Error

	atEOF bool

	pos   int // Current position in input.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token. Once a TokError or TokEOF is
// returned, every following call returns the same token.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return l.curToken
	}
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error behind a TokError token, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Tokenize lexes the whole input. The returned slice ends with TokEOF.
func Tokenize(input string) ([]Token, error) {
	if strings.TrimSpace(input) == "" {
		return nil, diag.EmptyExpression()
	}
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			if l.err == nil {
				return nil, diag.UnexpectedToken(tok.String(), tok.Pos)
			}
			return nil, l.err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		l.atEOF = false
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// fail reports an invalid character at pos and stops the lexer.
func (l *Lexer) fail(pos int, r rune) stateFn {
	l.err = diag.InvalidCharacter(pos, r)
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Error(),
		Pos:   pos,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
