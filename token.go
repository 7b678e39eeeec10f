package calc

import (
	"io"
	"strconv"
	"strings"
)

// Token is a lexical unit of an expression. Tokens are plain values; each
// stage of evaluation copies them rather than editing them in place.
type Token struct {
	// Kind identifies which of the remaining fields is meaningful.
	Kind TokenKind
	// Value is the value of a number or constant.
	Value float64
	// Binary is the operator of a binary operator token.
	Binary BinaryOp
	// Unary is the operator of a unary operator token.
	Unary UnaryOp
	// Func is the function of a function token.
	Func Function
	// Pos is the column of the first rune of the token, counting from 1.
	Pos int
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenConstant is a named constant or a variable, resolved to its value.
	TokenConstant
	// TokenBinary is a binary operator.
	TokenBinary
	// TokenUnary is a unary operator.
	TokenUnary
	// TokenFunc is a function name.
	TokenFunc
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Num creates a number token.
func Num(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// Const creates a constant token.
func Const(v float64) Token {
	return Token{Kind: TokenConstant, Value: v}
}

// Binary creates a binary operator token.
func Binary(op BinaryOp) Token {
	return Token{Kind: TokenBinary, Binary: op}
}

// Unary creates a unary operator token.
func Unary(op UnaryOp) Token {
	return Token{Kind: TokenUnary, Unary: op}
}

// Call creates a function token.
func Call(fn Function) Token {
	return Token{Kind: TokenFunc, Func: fn}
}

// LeftParen and RightParen are grouping tokens.
var (
	LeftParen  = Token{Kind: TokenLeftParen}
	RightParen = Token{Kind: TokenRightParen}
)

// At returns a copy of tok with its position set to col.
func (tok Token) At(col int) Token {
	tok.Pos = col
	return tok
}

// valid reports whether an operator or function token names a known
// operator or function.
func (tok Token) valid() bool {
	switch tok.Kind {
	case TokenBinary:
		return opNone < tok.Binary && tok.Binary <= OpPow
	case TokenUnary:
		return unopNone < tok.Unary && tok.Unary <= UnaryMinus
	case TokenFunc:
		return funcNone < tok.Func && int(tok.Func) < len(funcnames)
	default:
		return true
	}
}

// Text returns the source text that the token represents. Constants are
// written as their values, since the lexer discards their names.
func (tok Token) Text() string {
	switch tok.Kind {
	case TokenNumber, TokenConstant:
		return strconv.FormatFloat(tok.Value, 'g', -1, 64)
	case TokenBinary:
		return tok.Binary.String()
	case TokenUnary:
		return tok.Unary.String()
	case TokenFunc:
		return tok.Func.String()
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	default:
		return "$"
	}
}

func (tok Token) String() string {
	return tok.Kind.String() + ":" + tok.Text() + "@" + strconv.Itoa(tok.Pos)
}

// Infix is a sequence of tokens in source order.
type Infix []Token

// Postfix is a sequence of tokens in evaluation order.
type Postfix []Token

// String formats the tokens separated by spaces. Unary operators are marked
// with a trailing u so that they are distinct from binary ones.
func (e Infix) String() string {
	return fmtTokens(e)
}

// String formats the tokens separated by spaces, e.g. "1 2 3 * +". Unary
// operators are marked with a trailing u.
func (e Postfix) String() string {
	return fmtTokens(e)
}

func fmtTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text())
		if tok.Kind == TokenUnary {
			b.WriteByte('u')
		}
	}
	return b.String()
}

// tokenSource is a stage of evaluation that produces tokens one at a time.
// next returns io.EOF once the sequence is exhausted.
type tokenSource interface {
	next() (Token, error)
}

// sliceSource produces the tokens of a slice in order.
type sliceSource struct {
	toks []Token
}

func (s *sliceSource) next() (Token, error) {
	if len(s.toks) == 0 {
		return Token{}, io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, nil
}
