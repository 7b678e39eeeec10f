package calc

import (
	"errors"
	"io"
)

// machine evaluates postfix tokens on an operand stack.
type machine struct {
	stack []float64
}

func (m *machine) push(x float64) {
	m.stack = append(m.stack, x)
}

// pop removes the top of the stack. ok is false if the stack is empty.
func (m *machine) pop() (x float64, ok bool) {
	if len(m.stack) == 0 {
		return 0, false
	}
	x = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return x, true
}

// step executes one postfix token.
func (m *machine) step(tok Token) error {
	if !tok.valid() {
		return &UnexpectedTokenError{Col: tok.Pos, Text: tok.Text()}
	}
	switch tok.Kind {
	case TokenNumber, TokenConstant:
		m.push(tok.Value)
	case TokenBinary:
		r, ok := m.pop()
		if !ok {
			return &OperandError{Col: tok.Pos, Op: tok.Binary.String(), Side: "right"}
		}
		l, ok := m.pop()
		if !ok {
			return &OperandError{Col: tok.Pos, Op: tok.Binary.String(), Side: "left"}
		}
		x, err := tok.Binary.Apply(l, r)
		if err != nil {
			return err
		}
		m.push(x)
	case TokenUnary:
		x, ok := m.pop()
		if !ok {
			return &OperandError{Col: tok.Pos, Op: tok.Unary.String()}
		}
		m.push(tok.Unary.Apply(x))
	case TokenFunc:
		x, ok := m.pop()
		if !ok {
			return &OperandError{Col: tok.Pos, Op: tok.Func.String(), Side: "argument"}
		}
		x, err := tok.Func.Apply(x)
		if err != nil {
			return err
		}
		m.push(x)
	default:
		return &UnexpectedTokenError{Col: tok.Pos, Text: tok.Text()}
	}
	return nil
}

// evaluate runs every token from src and returns the value at the bottom of
// the stack. A well-formed sequence leaves exactly one value; extra values
// from a malformed one are ignored.
func evaluate(src tokenSource) (float64, error) {
	var m machine
	for {
		tok, err := src.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		if err := m.step(tok); err != nil {
			return 0, err
		}
	}
	if len(m.stack) == 0 {
		return 0, &EmptyExpressionError{Col: 1}
	}
	return m.stack[0], nil
}

// Eval evaluates the expression. Errors are *OperandError or
// *UnexpectedTokenError for malformed sequences, *EmptyExpressionError for an
// empty one, and *DomainError for operations outside their domains.
func (e Postfix) Eval() (float64, error) {
	return evaluate(&sliceSource{toks: e})
}
