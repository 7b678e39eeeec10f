package calc

import (
	"errors"
	"strconv"
)

// Error categories. Every error produced for invalid input matches exactly
// one of these with errors.Is.
var (
	// ErrLex is the category of unrecognized characters and words.
	ErrLex = errors.New("lexical error")
	// ErrSyntax is the category of malformed numbers, mismatched
	// parentheses, and missing operands.
	ErrSyntax = errors.New("syntax error")
	// ErrDomain is the category of operations on arguments outside their
	// domains, like division by zero.
	ErrDomain = errors.New("domain error")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the rune or word that could not be scanned.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "word",
	// "unary operator", or the empty string (if a token kind hadn't been
	// decided).
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "unknown "+err.Kind+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrLex
}

// NumberError indicates a numeric literal which does not parse. It
// implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return ErrSyntax
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is true if the unmatched parenthesis is an open parenthesis.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrSyntax
}

// OperandError is an error indicating an operator or function with nothing
// to apply it to. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator or function name.
	Op string
	// Side is "left" or "right" for binary operators, "" for unary ones, and
	// "argument" for functions.
	Side string
}

func (err *OperandError) Error() string {
	switch err.Side {
	case "":
		return errpos(err.Col, "missing operand for unary "+err.Op)
	case "argument":
		return errpos(err.Col, "missing argument for "+err.Op)
	default:
		return errpos(err.Col, "missing "+err.Side+" operand for "+err.Op)
	}
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Unwrap() error {
	return ErrSyntax
}

// UnexpectedTokenError is an error indicating a token that cannot appear
// where it is, like a parenthesis in a postfix sequence or an operator token
// with no operator. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

func (err *UnexpectedTokenError) Unwrap() error {
	return ErrSyntax
}

// EmptyExpressionError is an error indicating an input with no expression.
type EmptyExpressionError struct {
	// Col is the position at which an expression was expected.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression at end")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrSyntax
}

// DomainError is an error returned when an operator or function is applied
// to an argument outside its domain. DomainError unwraps to ErrDomain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function or operator.
	Func string
	// Reason describes the violated constraint.
	Reason string
}

func (err *DomainError) Error() string {
	return err.Reason
}

func (err *DomainError) Unwrap() error {
	return ErrDomain
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every lexical or syntax
// error implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
