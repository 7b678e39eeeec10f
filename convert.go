package calc

import (
	"errors"
	"io"
)

// converter reorders an infix token sequence into postfix order using the
// shunting-yard algorithm.
type converter struct {
	src tokenSource
	// out is the queue of tokens ready to emit.
	out []Token
	// stack holds pending operators, functions, and open parentheses.
	stack []Token
	// done is set once src is exhausted and the stack is drained.
	done bool
}

func convert(src tokenSource) *converter {
	return &converter{src: src}
}

// next produces the next postfix token. Tokens are only available once an
// upstream token forces them out of the pending stack, so next may consume
// several infix tokens per call.
func (c *converter) next() (Token, error) {
	for len(c.out) == 0 {
		if c.done {
			return Token{}, io.EOF
		}
		tok, err := c.src.next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Token{}, err
			}
			if err := c.flush(); err != nil {
				return Token{}, err
			}
			c.done = true
			continue
		}
		if err := c.push(tok); err != nil {
			return Token{}, err
		}
	}
	tok := c.out[0]
	c.out = c.out[1:]
	return tok, nil
}

// push handles one infix token.
func (c *converter) push(tok Token) error {
	if !tok.valid() {
		return &UnexpectedTokenError{Col: tok.Pos, Text: tok.Text()}
	}
	switch tok.Kind {
	case TokenNumber, TokenConstant:
		c.out = append(c.out, tok)
	case TokenUnary, TokenFunc, TokenLeftParen:
		c.stack = append(c.stack, tok)
	case TokenBinary:
		for len(c.stack) > 0 && primary(c.top(), tok.Binary) {
			c.out = append(c.out, c.pop())
		}
		c.stack = append(c.stack, tok)
	case TokenRightParen:
		for len(c.stack) > 0 && c.top().Kind != TokenLeftParen {
			c.out = append(c.out, c.pop())
		}
		if len(c.stack) == 0 {
			return &BracketError{Col: tok.Pos, Open: false}
		}
		c.pop()
		// A function applies to the group that follows it.
		if len(c.stack) > 0 && c.top().Kind == TokenFunc {
			c.out = append(c.out, c.pop())
		}
	default:
		return &UnexpectedTokenError{Col: tok.Pos, Text: tok.Text()}
	}
	return nil
}

// flush emits every pending token at the end of the input.
func (c *converter) flush() error {
	for len(c.stack) > 0 {
		tok := c.pop()
		if tok.Kind == TokenLeftParen {
			return &BracketError{Col: tok.Pos, Open: true}
		}
		c.out = append(c.out, tok)
	}
	return nil
}

func (c *converter) top() Token {
	return c.stack[len(c.stack)-1]
}

func (c *converter) pop() Token {
	tok := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return tok
}

// Postfix converts the expression to postfix order. Errors are *BracketError
// for a mismatched parenthesis and *UnexpectedTokenError for a token of no
// known kind.
func (e Infix) Postfix() (Postfix, error) {
	c := convert(&sliceSource{toks: e})
	r := make(Postfix, 0, len(e))
	for {
		tok, err := c.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return r, nil
			}
			return nil, err
		}
		r = append(r, tok)
	}
}
