package calc

import (
	"math"
	"strconv"
)

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// BinaryOp is an operator taking two operands.
type BinaryOp int8

const (
	opNone BinaryOp = iota
	// OpAdd is addition, a + b.
	OpAdd
	// OpSub is subtraction, a - b.
	OpSub
	// OpMul is multiplication, a * b.
	OpMul
	// OpDiv is division, a / b.
	OpDiv
	// OpPow is exponentiation, a ^ b.
	OpPow
)

// binop gets a binary operator for an operator rune. If there is no such
// operator, the result is opNone.
func binop(r rune) BinaryOp {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '^':
		return OpPow
	default:
		return opNone
	}
}

// Prec returns the precedence of the operator. Higher is more binding.
func (op BinaryOp) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 2
	case OpMul, OpDiv:
		return 3
	case OpPow:
		return 4
	default:
		return 0
	}
}

// LeftAssoc returns whether a chain of operators of the same precedence as op
// groups from the left. Only exponentiation groups from the right.
func (op BinaryOp) LeftAssoc() bool {
	return op != OpPow
}

// Apply computes l op r. The only failure is division by zero.
func (op BinaryOp) Apply(l, r float64) (float64, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, &DomainError{X: r, Func: "/", Reason: "division by zero"}
		}
		return l / r, nil
	case OpPow:
		return math.Pow(l, r), nil
	default:
		panic("calc: invalid binary operator " + strconv.Itoa(int(op)))
	}
}

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// UnaryOp is a sign operator applied to a single operand.
type UnaryOp int8

const (
	unopNone UnaryOp = iota
	// UnaryPlus is the identity, +a.
	UnaryPlus
	// UnaryMinus is negation, -a.
	UnaryMinus
)

// unop gets a unary operator for an operator rune. If there is no such
// operator, the result is unopNone.
func unop(r rune) UnaryOp {
	switch r {
	case '+':
		return UnaryPlus
	case '-':
		return UnaryMinus
	default:
		return unopNone
	}
}

// Apply computes op x.
func (op UnaryOp) Apply(x float64) float64 {
	switch op {
	case UnaryPlus:
		return x
	case UnaryMinus:
		return -x
	default:
		panic("calc: invalid unary operator " + strconv.Itoa(int(op)))
	}
}

func (op UnaryOp) String() string {
	switch op {
	case UnaryPlus:
		return "+"
	case UnaryMinus:
		return "-"
	default:
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
}

// primary reports whether the operator token top, waiting on the pending
// stack, must be emitted before the incoming binary operator op is pushed.
// Unary operators always bind tighter than binary ones.
func primary(top Token, op BinaryOp) bool {
	switch top.Kind {
	case TokenUnary:
		return true
	case TokenBinary:
		p, q := top.Binary.Prec(), op.Prec()
		return p > q || p == q && op.LeftAssoc()
	default:
		return false
	}
}
