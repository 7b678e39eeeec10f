package calc

import (
	"errors"
	"io"
	"strings"
)

// Option is an option for scanning and evaluating expressions.
type Option interface {
	apply(*options)
}

type options struct {
	// vars maps variable names to their values.
	vars map[string]float64
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

// SetVar sets the value of a variable. Variables are consulted only for
// words which are not constants or function names.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

func (o varopt) apply(p *options) {
	if p.vars == nil {
		p.vars = make(map[string]float64)
	}
	p.vars[o.name] = o.val
}

// SetVars sets the values of any number of variables.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

func (o varsopt) apply(p *options) {
	if p.vars == nil {
		// Always make a copy.
		p.vars = make(map[string]float64, len(o))
	}
	for k, v := range o {
		p.vars[k] = v
	}
}

// Parse scans an expression and converts it to postfix order. Empty input is
// an *EmptyExpressionError.
func Parse(src io.RuneScanner, opts ...Option) (Postfix, error) {
	// Check for empty input before scanning anything.
	if _, _, err := src.ReadRune(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &EmptyExpressionError{Col: 1}
		}
		return nil, err
	}
	if err := src.UnreadRune(); err != nil {
		return nil, err
	}
	e, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	return e.Postfix()
}

// Eval parses an expression and returns its value. The first error from any
// stage stops evaluation.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...Option) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Evaluate evaluates an expression with no variables.
func Evaluate(expr string) (float64, error) {
	return EvalString(expr)
}

// EvaluateWithVars evaluates an expression in which words that are not
// constants or functions name variables in vars.
func EvaluateWithVars(expr string, vars map[string]float64) (float64, error) {
	return EvalString(expr, SetVars(vars))
}
