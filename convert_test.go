package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if binop(r) == opNone {
			t.Errorf("no binary operator for %c", r)
		}
		if op := binop(r); op.Prec() == 0 {
			t.Errorf("%v has no precedence", op)
		}
	}
	for _, r := range "+-" {
		if unop(r) == unopNone {
			t.Errorf("no unary operator for %c", r)
		}
	}
}

func TestOpPrecs(t *testing.T) {
	cases := []struct {
		op   BinaryOp
		prec int
		left bool
	}{
		{OpAdd, 2, true},
		{OpSub, 2, true},
		{OpMul, 3, true},
		{OpDiv, 3, true},
		{OpPow, 4, false},
	}
	for _, c := range cases {
		if p := c.op.Prec(); p != c.prec {
			t.Errorf("%v has prec %d, want %d", c.op, p, c.prec)
		}
		if l := c.op.LeftAssoc(); l != c.left {
			t.Errorf("%v has left associativity %t, want %t", c.op, l, c.left)
		}
	}
}

func TestPrimary(t *testing.T) {
	cases := []struct {
		name string
		top  Token
		op   BinaryOp
		want bool
	}{
		{"unary-pow", Unary(UnaryMinus), OpPow, true},
		{"unary-add", Unary(UnaryPlus), OpAdd, true},
		{"mul-add", Binary(OpMul), OpAdd, true},
		{"add-mul", Binary(OpAdd), OpMul, false},
		{"sub-add", Binary(OpSub), OpAdd, true},
		{"div-mul", Binary(OpDiv), OpMul, true},
		{"pow-pow", Binary(OpPow), OpPow, false},
		{"pow-div", Binary(OpPow), OpDiv, true},
		{"paren", LeftParen, OpAdd, false},
		{"func", Call(FuncSin), OpAdd, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := primary(c.top, c.op); got != c.want {
				t.Errorf("primary(%v, %v) = %t, want %t", c.top, c.op, got, c.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1 + 2", "1 2 +"},
		{"sub3", "1 - 2 - 3", "1 2 - 3 -"},
		{"div3", "8 / 4 / 2", "8 4 / 2 /"},
		{"pow3", "2 ^ 3 ^ 2", "2 3 2 ^ ^"},
		{"asc", "1 + 2 * 3 ^ 4", "1 2 3 4 ^ * +"},
		{"desc", "1 ^ 2 * 3 + 4", "1 2 ^ 3 * 4 +"},
		{"paren", "(1 + 2) * 3", "1 2 + 3 *"},
		{"nested", "((1))", "1"},
		{"classic", "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3", "3 4 2 * 1 5 - 2 3 ^ ^ / +"},
		{"neg", "-3 + 2", "3 -u 2 +"},
		{"neg-paren", "(-3 + 2)", "3 -u 2 +"},
		{"neg-pow", "-2 ^ 2", "2 -u 2 ^"},
		{"negneg", "(-(-1))", "1 -u -u"},
		{"plus-div", "43.75 + (-20.97 / 2.87) * 3.14", "43.75 20.97 -u 2.87 / 3.14 * +"},
		{"call", "sqrt(9.0)", "9 sqrt"},
		{"call-neg", "abs(-1)", "1 -u abs"},
		{"call-call", "sqrt(sqrt(16))", "16 sqrt sqrt"},
		{"call-mul", "sin(2 - 2) * 2", "2 2 - sin 2 *"},
		{"call-inner-paren", "cos((1 + 1) / 2)", "1 1 + 2 / cos"},
		{"call-args", "ln(2) + log2(8)", "2 ln 8 log2 +"},
		{"call-bare", "2 * sqrt 4", "2 4 sqrt *"},
		{"const", "2 * e", "2 2.718281828459045 *"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Tokenize(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to scan: %v", c.src, err)
			}
			p, err := e.Postfix()
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got := p.String(); got != c.want {
				t.Errorf("%q converted wrong:\n\twant %s\n\tgot  %s", c.src, c.want, got)
			}
			if len(p) > len(e) {
				t.Errorf("%q gave %d postfix tokens from %d infix tokens", c.src, len(p), len(e))
			}
		})
	}
}

func TestConvertKeepsPositions(t *testing.T) {
	e, err := Tokenize(strings.NewReader("-(1 + 2)"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := e.Postfix()
	if err != nil {
		t.Fatal(err)
	}
	want := Postfix{Num(1).At(3), Num(2).At(7), Binary(OpAdd).At(5), Unary(UnaryMinus).At(1)}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("wrong postfix (-want +got):\n%s", diff)
	}
}

func TestConvertBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		open bool
	}{
		{"unclosed", "(8 + 2", 1, true},
		{"unclosed-inner", "(1 + (2", 6, true},
		{"unclosed-outer", "((1)", 1, true},
		{"unclosed-call", "sqrt(4", 5, true},
		{"unopened", "8 + 2)", 6, false},
		{"unopened-extra", "(1))", 4, false},
		{"backward", ")(", 1, false},
		{"unopened-later", "1) + (2", 2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Tokenize(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to scan: %v", c.src, err)
			}
			p, err := e.Postfix()
			if err == nil {
				t.Fatalf("%q converted to %v with no error", c.src, p)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("%v is not a syntax error", err)
			}
			var be *BracketError
			if !errors.As(err, &be) {
				t.Fatalf("%#v is not a *BracketError", err)
			}
			if be.Col != c.col || be.Open != c.open {
				t.Errorf("%q gave %+v, want column %d, open %t", c.src, be, c.col, c.open)
			}
		})
	}
}

// TestConvertStream checks that the converter produces tokens as soon as they
// are decided rather than only at the end of the input.
func TestConvertStream(t *testing.T) {
	src := lex(strings.NewReader("1 * 2 + 3 $"), nil)
	c := convert(src)
	want := []string{"1", "2", "*", "3"}
	for _, w := range want {
		tok, err := c.next()
		if err != nil {
			t.Fatalf("unexpected error %v before %s", err, w)
		}
		if tok.Text() != w {
			t.Errorf("want %s, got %v", w, tok)
		}
	}
	if _, err := c.next(); !errors.Is(err, ErrLex) {
		t.Errorf("want lex error from upstream, got %v", err)
	}
}
