package lexer

import (
	"strings"

	"github.com/dlclark/regexp2"

	"go.creack.net/deriv/ast"
)

// vocabularyRe matches the longest function or constant name at the
// start of its input. regexp2 tries alternatives in order, and
// ast.Vocabulary is sorted longest first.
var vocabularyRe = func() *regexp2.Regexp {
	// Every word is plain lowercase letters, nothing to escape.
	return regexp2.MustCompile(`\A(?:`+strings.Join(ast.Vocabulary(), "|")+`)`, regexp2.None)
}()

// Classify replaces every TokIdentifier with the function, constant and
// variable tokens it splits into. Other tokens are kept as is.
func Classify(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Type != TokIdentifier {
			out = append(out, tok)
			continue
		}
		out = append(out, SplitIdentifier(tok)...)
	}
	return out
}

// SplitIdentifier splits a run of letters left to right, taking at each
// offset the longest known name, or a single letter variable when no
// name matches. A committed match is never revisited.
func SplitIdentifier(tok Token) []Token {
	var out []Token
	run := tok.Value
	for i := 0; i < len(run); {
		m, err := vocabularyRe.FindStringMatch(run[i:])
		if err == nil && m != nil {
			word := m.String()
			out = append(out, classifyWord(word, tok.Pos+i))
			i += len(word)
			continue
		}
		out = append(out, Token{Type: TokVariable, Value: run[i : i+1], Pos: tok.Pos + i})
		i++
	}
	return out
}

func classifyWord(word string, pos int) Token {
	if f, ok := ast.LookupFunction(word); ok {
		return Token{Type: TokFunction, Value: f.String(), Pos: pos}
	}
	c, _ := ast.LookupConstant(word)
	return Token{Type: TokConstant, Value: c.Name, Pos: pos}
}
