// Package calculator runs a derivative request through the whole
// pipeline: normalize, parse, differentiate, simplify, render.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/deriv/ast"
	"go.creack.net/deriv/deriv"
	"go.creack.net/deriv/diag"
	"go.creack.net/deriv/lexer"
	"go.creack.net/deriv/parser"
	"go.creack.net/deriv/simplify"
)

// DefaultVar is used when the requested variable is empty or invalid.
const DefaultVar = "x"

// ErrorOutput is what Answer returns for any failure.
const ErrorOutput = "Error"

// Result of a successful request.
type Result struct {
	Input      string   // Normalized input.
	Var        string   // Variable actually used.
	Expr       ast.Expr // Parsed input.
	Derivative ast.Expr // Simplified derivative.
	Output     string   // Rendered derivative.
}

// NormalizeVar returns v when it is a single lowercase letter, DefaultVar
// otherwise.
func NormalizeVar(v string) string {
	v = strings.TrimSpace(v)
	if len(v) == 1 && v[0] >= 'a' && v[0] <= 'z' {
		return v
	}
	return DefaultVar
}

// Differentiate returns the simplified derivative of input with respect
// to diffVar. Errors wrap a *diag.Error.
func Differentiate(input, diffVar string) (*Result, error) {
	normalized := lexer.Normalize(input)
	expr, err := parser.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", input, err)
	}
	v := NormalizeVar(diffVar)
	derivative := simplify.Simplify(deriv.Derive(expr, v))
	return &Result{
		Input:      normalized,
		Var:        v,
		Expr:       expr,
		Derivative: derivative,
		Output:     derivative.Dump(),
	}, nil
}

// Answer is the display form of Differentiate: the rendered derivative,
// or ErrorOutput.
func Answer(input, diffVar string) string {
	res, err := Differentiate(input, diffVar)
	if err != nil {
		return ErrorOutput
	}
	return res.Output
}

// Request is the wire form of a derivative request.
type Request struct {
	ID   string `json:"id,omitempty"`
	Expr string `json:"expr"`
	Var  string `json:"var,omitempty"`
}

// Response is the wire form of a result. Result is ErrorOutput when Error
// is set.
type Response struct {
	ID     string     `json:"id,omitempty"`
	Var    string     `json:"var"`
	Result string     `json:"result"`
	Error  *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Pos     *int   `json:"pos,omitempty"`
}

// Handle answers a wire request.
func Handle(req Request) Response {
	resp := Response{ID: req.ID, Var: NormalizeVar(req.Var)}
	res, err := Differentiate(req.Expr, req.Var)
	if err != nil {
		resp.Result = ErrorOutput
		resp.Error = NewErrorInfo(err)
		return resp
	}
	resp.Result = res.Output
	return resp
}

// NewErrorInfo describes err, using the kind and position of a wrapped
// *diag.Error when there is one.
func NewErrorInfo(err error) *ErrorInfo {
	info := &ErrorInfo{Kind: diag.KindUnknown.String(), Message: err.Error()}
	var de *diag.Error
	if errors.As(err, &de) {
		info.Kind = de.Kind.String()
		info.Message = de.Error()
		if de.Pos >= 0 {
			pos := de.Pos
			info.Pos = &pos
		}
	}
	return info
}
