package ast

import (
	"math"
	"slices"
)

// Function is one of the closed set of callable functions.
type Function int

// Functions.
const (
	FuncInvalid Function = iota

	// Trigonometric.
	FuncSin
	FuncCos
	FuncTan
	FuncCosec
	FuncSec
	FuncCot

	// Inverse trigonometric.
	FuncArcsin
	FuncArccos
	FuncArctan
	FuncArccosec
	FuncArcsec
	FuncArccot

	// Hyperbolic.
	FuncSinh
	FuncCosh
	FuncTanh
	FuncCosech
	FuncSech
	FuncCoth

	// Inverse hyperbolic.
	FuncArsinh
	FuncArcosh
	FuncArtanh
	FuncArcosech
	FuncArsech
	FuncArcoth

	FuncLog
	FuncExp
	FuncSqrt
	FuncAbs

	// End of functions.
	FinalFunction
)

// Canonical names, used for rendering.
var functionNames = map[Function]string{
	FuncSin:   "sin",
	FuncCos:   "cos",
	FuncTan:   "tan",
	FuncCosec: "cosec",
	FuncSec:   "sec",
	FuncCot:   "cot",

	FuncArcsin:   "arcsin",
	FuncArccos:   "arccos",
	FuncArctan:   "arctan",
	FuncArccosec: "arccosec",
	FuncArcsec:   "arcsec",
	FuncArccot:   "arccot",

	FuncSinh:   "sinh",
	FuncCosh:   "cosh",
	FuncTanh:   "tanh",
	FuncCosech: "cosech",
	FuncSech:   "sech",
	FuncCoth:   "coth",

	FuncArsinh:   "arsinh",
	FuncArcosh:   "arcosh",
	FuncArtanh:   "artanh",
	FuncArcosech: "arcosech",
	FuncArsech:   "arsech",
	FuncArcoth:   "arcoth",

	FuncLog:  "log",
	FuncExp:  "exp",
	FuncSqrt: "sqrt",
	FuncAbs:  "abs",
}

// Alternative spellings accepted on input.
var functionAliases = map[string]Function{
	"ln":     FuncLog,
	"csc":    FuncCosec,
	"csch":   FuncCosech,
	"arccsc": FuncArccosec,
}

var functionsByName = func() map[string]Function {
	m := make(map[string]Function, len(functionNames)+len(functionAliases))
	for f, name := range functionNames {
		m[name] = f
	}
	for name, f := range functionAliases {
		m[name] = f
	}
	return m
}()

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "invalid"
}

// Functions returns every valid function, in declaration order.
func Functions() []Function {
	out := make([]Function, 0, int(FinalFunction)-1)
	for f := FuncInvalid + 1; f < FinalFunction; f++ {
		out = append(out, f)
	}
	return out
}

// LookupFunction resolves a canonical name or alias.
func LookupFunction(name string) (Function, bool) {
	f, ok := functionsByName[name]
	return f, ok
}

// Named constants by canonical name.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"inf": math.Inf(1),
	"deg": math.Pi / 180,
}

var constantAliases = map[string]string{
	"euler":    "e",
	"degree":   "deg",
	"infinity": "inf",
}

// LookupConstant resolves a constant name or alias to a new node
// carrying the canonical name.
func LookupConstant(name string) (*Constant, bool) {
	if canonical, ok := constantAliases[name]; ok {
		name = canonical
	}
	v, ok := constants[name]
	if !ok {
		return nil, false
	}
	return &Constant{Value: v, Name: name}, true
}

// Vocabulary lists every function and constant spelling, longest first.
// Ties are broken alphabetically so the order is stable.
func Vocabulary() []string {
	words := make([]string, 0, len(functionsByName)+len(constants)+len(constantAliases))
	for name := range functionsByName {
		words = append(words, name)
	}
	for name := range constants {
		words = append(words, name)
	}
	for name := range constantAliases {
		words = append(words, name)
	}
	slices.SortFunc(words, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
	return words
}
