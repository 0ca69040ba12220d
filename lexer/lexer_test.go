package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/deriv/diag"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	tokens, err := Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}

		if token.Pos != expectedToken.Pos {
			t.Fatalf("tests[%d] - wrong position. expected=%d (%s), got=%d (%s)",
				i, expectedToken.Pos, expectedToken, token.Pos, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
}

func TestLexerSingleNumber(t *testing.T) {
	testLexer(t, "42", []Token{
		{Type: TokNumber, Value: "42", Pos: 0},
		{Type: TokEOF, Pos: 2},
	})
}

func TestLexerDecimals(t *testing.T) {
	testLexer(t, "1.5 .5 2.", []Token{
		{Type: TokNumber, Value: "1.5", Pos: 0},
		{Type: TokNumber, Value: ".5", Pos: 4},
		{Type: TokNumber, Value: "2.", Pos: 7},
		{Type: TokEOF, Pos: 9},
	})
}

func TestLexerOperators(t *testing.T) {
	testLexer(t, "(1+2)-3*4/5^6", []Token{
		{Type: TokParenLeft, Value: "(", Pos: 0},
		{Type: TokNumber, Value: "1", Pos: 1},
		{Type: TokPlus, Value: "+", Pos: 2},
		{Type: TokNumber, Value: "2", Pos: 3},
		{Type: TokParenRight, Value: ")", Pos: 4},
		{Type: TokMinus, Value: "-", Pos: 5},
		{Type: TokNumber, Value: "3", Pos: 6},
		{Type: TokStar, Value: "*", Pos: 7},
		{Type: TokNumber, Value: "4", Pos: 8},
		{Type: TokSlash, Value: "/", Pos: 9},
		{Type: TokNumber, Value: "5", Pos: 10},
		{Type: TokCaret, Value: "^", Pos: 11},
		{Type: TokNumber, Value: "6", Pos: 12},
		{Type: TokEOF, Pos: 13},
	})
}

func TestLexerWhitespace(t *testing.T) {
	testLexer(t, " 2 +\tsin(x)\n", []Token{
		{Type: TokNumber, Value: "2", Pos: 1},
		{Type: TokPlus, Value: "+", Pos: 3},
		{Type: TokIdentifier, Value: "sin", Pos: 5},
		{Type: TokParenLeft, Value: "(", Pos: 8},
		{Type: TokIdentifier, Value: "x", Pos: 9},
		{Type: TokParenRight, Value: ")", Pos: 10},
		{Type: TokEOF, Pos: 12},
	})
}

func TestLexerIdentifierRun(t *testing.T) {
	testLexer(t, "2sinx", []Token{
		{Type: TokNumber, Value: "2", Pos: 0},
		{Type: TokIdentifier, Value: "sinx", Pos: 1},
		{Type: TokEOF, Pos: 5},
	})
}

func TestLexerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  diag.Kind
		pos   int
		char  rune
	}{
		{"empty", "", diag.KindEmptyExpression, -1, 0},
		{"blank", " \t ", diag.KindEmptyExpression, -1, 0},
		{"dollar", "2 $ x", diag.KindInvalidCharacter, 2, '$'},
		{"uppercase", "X", diag.KindInvalidCharacter, 0, 'X'},
		{"lone dot", ".", diag.KindInvalidCharacter, 0, '.'},
		{"double dot", "1..2", diag.KindInvalidCharacter, 2, '.'},
		{"second decimal point", "1.2.3", diag.KindInvalidCharacter, 3, '.'},
		{"comma", "1,5", diag.KindInvalidCharacter, 1, ','},
		{"unicode", "x²", diag.KindInvalidCharacter, 1, '²'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(tt.input)
			require.Error(t, err)
			var de *diag.Error
			require.True(t, errors.As(err, &de), "error %T is not a *diag.Error", err)
			assert.Equal(t, tt.kind, de.Kind, "Kind mismatch")
			assert.Equal(t, tt.pos, de.Pos, "Pos mismatch")
			if tt.char != 0 {
				assert.Equal(t, tt.char, de.Char, "Char mismatch")
			}
		})
	}
}

func TestNextTokenFreshLexer(t *testing.T) {
	l := New("1")
	assert.Equal(t, Token{Type: TokNumber, Value: "1", Pos: 0}, l.NextToken())
	assert.Equal(t, TokEOF, l.NextToken().Type)
	assert.Equal(t, TokEOF, l.NextToken().Type, "EOF should repeat")
	assert.NoError(t, l.Err())

	tokens, err := Tokenize("x^2")
	require.NoError(t, err)
	assert.Len(t, tokens, 4)
}

func TestNextTokenStickyError(t *testing.T) {
	l := New("1 # 2")
	assert.Equal(t, TokNumber, l.NextToken().Type)
	tok := l.NextToken()
	require.Equal(t, TokError, tok.Type)
	assert.Equal(t, tok, l.NextToken(), "error token should repeat")
	assert.ErrorIs(t, l.Err(), diag.ErrInvalidCharacter)
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "EOF", Token{Type: TokEOF}.String())
	assert.Equal(t, `"+"`, Token{Type: TokPlus, Value: "+"}.String())
	assert.Equal(t, `NUMBER[3]: "12"`, Token{Type: TokNumber, Value: "12", Pos: 3}.String())
}
