package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read from src.
	col int
	// vars resolves words which are neither constants nor functions.
	vars map[string]float64
	// prev is the kind of the last token returned from next, or tokenNone if
	// there has not been one.
	prev TokenKind
	eof  bool
}

func lex(src io.RuneScanner, vars map[string]float64) *lexer {
	return &lexer{
		src:  src,
		vars: vars,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. Once the input is exhausted, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
			}
			return Token{}, err
		}
		pos := l.col
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			l.scan(isNumRune)
			v, err := strconv.ParseFloat(l.buf.String(), 64)
			if err != nil {
				return Token{}, &NumberError{Col: pos, Text: l.buf.String()}
			}
			return l.emit(Num(v).At(pos)), nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			l.scan(isWordRune)
			tok, err := l.word(l.buf.String())
			if err != nil {
				return Token{}, &LexError{Text: l.buf.String(), Kind: "word", Col: pos}
			}
			return l.emit(tok.At(pos)), nil
		case r == '(':
			return l.emit(LeftParen.At(pos)), nil
		case r == ')':
			return l.emit(RightParen.At(pos)), nil
		case strings.ContainsRune(Operators, r):
			// An operator is unary only at the start of the expression or
			// right after an open parenthesis.
			if l.prev == tokenNone || l.prev == TokenLeftParen {
				op := unop(r)
				if op == unopNone {
					return Token{}, &LexError{Text: string(r), Kind: "unary operator", Col: pos}
				}
				return l.emit(Unary(op).At(pos)), nil
			}
			return l.emit(Binary(binop(r)).At(pos)), nil
		default:
			return Token{}, &LexError{Text: string(r), Col: pos}
		}
	}
}

// emit records tok as the last token scanned and returns it.
func (l *lexer) emit(tok Token) Token {
	l.prev = tok.Kind
	return tok
}

// scan writes the maximal run of runes satisfying ok into the buffer.
func (l *lexer) scan(ok func(rune) bool) {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides the token kind before
			// calling scan, so a read error here can only be EOF, or an
			// error which the next call to next reports again.
			return
		}
		if !ok(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

var errUnknownWord = errors.New("unknown word")

// word resolves a word to a constant, a function, or a variable, in that
// order of preference.
func (l *lexer) word(name string) (Token, error) {
	if v, ok := LookupConst(name); ok {
		return Const(v), nil
	}
	if fn, ok := LookupFunc(name); ok {
		return Call(fn), nil
	}
	if v, ok := l.vars[name]; ok {
		return Const(v), nil
	}
	return Token{}, errUnknownWord
}

// Tokenize scans an entire expression. The first invalid token stops
// scanning; on error, no tokens are returned.
func Tokenize(src io.RuneScanner, opts ...Option) (Infix, error) {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}
	return tokenize(lex(src, o.vars))
}

func tokenize(l *lexer) (Infix, error) {
	var toks Infix
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
