package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii unchanged", "2*sin(x)+1", "2*sin(x)+1"},
		{"superscript", "x²", "x^2"},
		{"superscript run", "x²³+1", "x^23+1"},
		{"two superscripts", "x²+y³", "x^2+y^3"},
		{"pi", "2πx", "2pix"},
		{"times", "3×x", "3*x"},
		{"dot", "3·x", "3*x"},
		{"divide", "a÷b", "a/b"},
		{"minus sign", "x−1", "x-1"},
		{"full width", "６ｘ", "6x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
