package lexer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var superscripts = map[rune]byte{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
}

var symbolReplacer = strings.NewReplacer(
	"π", "pi",
	"×", "*",
	"·", "*",
	"÷", "/",
	"−", "-",
)

// Normalize rewrites calculator-keyboard input into the ASCII syntax the
// lexer reads: x² becomes x^2, full-width forms are folded, π becomes pi
// and the ×, ·, ÷, − symbols become * * / -.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	inSuperscript := false
	for _, r := range input {
		d, ok := superscripts[r]
		if !ok {
			inSuperscript = false
			b.WriteRune(r)
			continue
		}
		if !inSuperscript {
			b.WriteByte('^')
			inSuperscript = true
		}
		b.WriteByte(d)
	}
	// Superscripts must go first, NFKC would turn them into plain digits.
	return symbolReplacer.Replace(norm.NFKC.String(b.String()))
}
