package calc

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	num := func(s string, pos int) Token {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			panic(err)
		}
		return Token{Kind: TokenInt, Text: s, Value: v, Pos: pos}
	}
	op := func(s string, pos int) Token {
		return Token{Kind: TokenOp, Text: s, Pos: pos}
	}
	open := func(pos int) Token {
		return Token{Kind: TokenOpen, Text: "(", Pos: pos}
	}
	close := func(pos int) Token {
		return Token{Kind: TokenClose, Text: ")", Pos: pos}
	}
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{num("0", 1)}},
		{"digits", "9876543210", []Token{num("9876543210", 1)}},
		{"leading-zero", "007", []Token{num("007", 1)}},
		{"space-sep", "1 0", []Token{num("1", 1), num("0", 3)}},
		{"max", "9223372036854775807", []Token{num("9223372036854775807", 1)}},
		// operators
		{"add", "1+1", []Token{num("1", 1), op("+", 2), num("1", 3)}},
		{"add-spaces", "1 + 1", []Token{num("1", 1), op("+", 3), num("1", 5)}},
		{"multi-digit", "24 - 36", []Token{num("24", 1), op("-", 4), num("36", 6)}},
		{"all", "+-*/^%", []Token{op("+", 1), op("-", 2), op("*", 3), op("/", 4), op("^", 5), op("%", 6)}},
		// brackets
		{"brackets", "()", []Token{open(1), close(2)}},
		{"bracketed", "(1+1)", []Token{open(1), num("1", 2), op("+", 3), num("1", 4), close(5)}},
		{"reversed", ")(", []Token{close(1), open(2)}},
		{"trailing-number", "(1)*12", []Token{open(1), num("1", 2), close(3), op("*", 4), num("12", 5)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err != nil {
				t.Fatalf("tokenizing %q: unexpected error %v", c.src, err)
			}
			if diff := cmp.Diff(c.tokens, toks); diff != "" {
				t.Errorf("tokenizing %q gave wrong tokens (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		col    int
		number bool
	}{
		{"letter", "a", 1, false},
		{"letter-after", "1+a", 3, false},
		{"dot", "1.5", 2, false},
		{"dollar", "$", 1, false},
		{"square", "[1]", 1, false},
		{"unicode-times", "2×3", 2, false},
		{"overflow", "9223372036854775808", 1, true},
		{"overflow-rhs", "1 + 99999999999999999999", 5, true},
		{"overflow-before-bad", "99999999999999999999$", 1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("tokenizing %q gave no error and tokens %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("tokenizing %q gave tokens %v with error", c.src, toks)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("tokenizing %q: error at column %d, want %d", c.src, ie.Pos(), c.col)
			}
			if c.number {
				var ne *MalformedNumberError
				if !errors.As(err, &ne) {
					t.Fatalf("%#v is not *MalformedNumberError", err)
				}
				if !errors.Is(err, strconv.ErrRange) {
					t.Errorf("%v does not unwrap to strconv.ErrRange", err)
				}
				return
			}
			var me *MalformedExpressionError
			if !errors.As(err, &me) {
				t.Errorf("%#v is not *MalformedExpressionError", err)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: TokenOp, Text: "+", Pos: 3}
	if got, want := tok.String(), "Op:+@3"; got != want {
		t.Errorf("wrong token string: want %q, got %q", want, got)
	}
	if got, want := TokenKind(99).String(), "TokenKind(99)"; got != want {
		t.Errorf("wrong kind string: want %q, got %q", want, got)
	}
}
