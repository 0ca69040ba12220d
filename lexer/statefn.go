package lexer

import "strings"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'^': TokCaret,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	// Whitespace is never significant.
	l.acceptRun(" \t\r\n")
	l.ignore()

	switch r := l.peek(); {
	case r == 0 && l.pos >= len(l.input):
		return l.emit(TokEOF)
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '.':
		return lexNumber
	case strings.ContainsRune(letterChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.fail(l.pos, r)
	}
}

// lexNumber reads digits with at most one decimal point.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	if l.accept(".") {
		if !l.acceptRun(digits) && l.pos-l.start == 1 {
			// Lone '.'.
			return l.fail(l.start, '.')
		}
	}
	if l.peek() == '.' {
		return l.fail(l.pos, '.')
	}
	return l.emit(TokNumber)
}

// lexIdentifier reads a maximal run of letters. Splitting the run into
// functions, constants and variables is left to Classify.
func lexIdentifier(l *Lexer) stateFn {
	l.acceptRun(letterChars)
	return l.emit(TokIdentifier)
}
