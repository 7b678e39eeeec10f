package calc

import (
	"math"
	"strconv"
)

// Function is a function from reals to reals of a single argument.
type Function int8

const (
	funcNone Function = iota
	FuncAbs
	FuncSqrt
	FuncCbrt
	FuncExp
	FuncLn
	FuncLog10
	FuncLog2
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncAsinh
	FuncAcosh
	FuncAtanh
)

var funcnames = [...]string{
	FuncAbs:   "abs",
	FuncSqrt:  "sqrt",
	FuncCbrt:  "cbrt",
	FuncExp:   "exp",
	FuncLn:    "ln",
	FuncLog10: "log10",
	FuncLog2:  "log2",
	FuncSin:   "sin",
	FuncCos:   "cos",
	FuncTan:   "tan",
	FuncAsin:  "asin",
	FuncAcos:  "acos",
	FuncAtan:  "atan",
	FuncSinh:  "sinh",
	FuncCosh:  "cosh",
	FuncTanh:  "tanh",
	FuncAsinh: "asinh",
	FuncAcosh: "acosh",
	FuncAtanh: "atanh",
}

var globalfuncs = func() map[string]Function {
	m := make(map[string]Function, len(funcnames))
	for fn, name := range funcnames {
		if name != "" {
			m[name] = Function(fn)
		}
	}
	return m
}()

// LookupFunc gets the function with the given name.
func LookupFunc(name string) (Function, bool) {
	fn, ok := globalfuncs[name]
	return fn, ok
}

// Funcs returns the names of all functions.
func Funcs() []string {
	r := make([]string, 0, len(globalfuncs))
	for _, name := range funcnames {
		if name != "" {
			r = append(r, name)
		}
	}
	return r
}

func (fn Function) String() string {
	if fn <= funcNone || int(fn) >= len(funcnames) {
		return "Function(" + strconv.Itoa(int(fn)) + ")"
	}
	return funcnames[fn]
}

// Apply evaluates the function at x. If x is outside the function's domain,
// the error is a *DomainError.
//
// The check for tan compares the remainder of x - π/2 modulo π against
// exactly zero, so it only catches arguments which round to an odd multiple
// of π/2 exactly, like pi/2 itself.
func (fn Function) Apply(x float64) (float64, error) {
	switch fn {
	case FuncAbs:
		return math.Abs(x), nil
	case FuncSqrt:
		if x < 0 {
			return 0, fn.domain(x, "is negative")
		}
		return math.Sqrt(x), nil
	case FuncCbrt:
		return math.Cbrt(x), nil
	case FuncExp:
		return math.Exp(x), nil
	case FuncLn:
		if x <= 0 {
			return 0, fn.domain(x, "is not positive")
		}
		return math.Log(x), nil
	case FuncLog10:
		if x <= 0 {
			return 0, fn.domain(x, "is not positive")
		}
		return math.Log10(x), nil
	case FuncLog2:
		if x <= 0 {
			return 0, fn.domain(x, "is not positive")
		}
		return math.Log2(x), nil
	case FuncSin:
		return math.Sin(x), nil
	case FuncCos:
		return math.Cos(x), nil
	case FuncTan:
		if math.Mod(x-math.Pi/2, math.Pi) == 0 {
			return 0, fn.domain(x, "is an odd multiple of π/2")
		}
		return math.Tan(x), nil
	case FuncAsin:
		if x < -1 || x > 1 {
			return 0, fn.domain(x, "is outside [-1, 1]")
		}
		return math.Asin(x), nil
	case FuncAcos:
		if x < -1 || x > 1 {
			return 0, fn.domain(x, "is outside [-1, 1]")
		}
		return math.Acos(x), nil
	case FuncAtan:
		return math.Atan(x), nil
	case FuncSinh:
		return math.Sinh(x), nil
	case FuncCosh:
		return math.Cosh(x), nil
	case FuncTanh:
		return math.Tanh(x), nil
	case FuncAsinh:
		return math.Asinh(x), nil
	case FuncAcosh:
		return math.Acosh(x), nil
	case FuncAtanh:
		return math.Atanh(x), nil
	default:
		panic("calc: invalid function " + fn.String())
	}
}

func (fn Function) domain(x float64, what string) error {
	return &DomainError{
		X:      x,
		Func:   fn.String(),
		Reason: "argument " + fmtnum(x) + " of " + fn.String() + " " + what,
	}
}

// Physical and mathematical constants recognized by name.
const (
	Pi    = math.Pi
	E     = math.E
	Light = 299792458.0
)

var globalconsts = map[string]float64{
	"pi": Pi,
	"e":  E,
	"c":  Light,
}

// LookupConst gets the value of the constant with the given name.
func LookupConst(name string) (float64, bool) {
	v, ok := globalconsts[name]
	return v, ok
}

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
