package calc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token.
	Text string
	// Value is the value of an integer token.
	Value int64
	// Pos is the 1-based rune column of the token in the source.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

func (Token) term() {}

// TokenKind is the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenInt is an unsigned decimal integer.
	TokenInt
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open bracket, (.
	TokenOpen
	// TokenClose is a close bracket, ).
	TokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// OperatorRunes contains the runes which are lexed as operators. Only those
// with an entry in an evaluator's operator table can be evaluated.
const OperatorRunes = "+-*/^%"

// Tokenize splits an expression into tokens. Whitespace separates tokens and
// is otherwise ignored.
func Tokenize(text string) ([]Token, error) {
	var (
		toks []Token
		num  strings.Builder
		at   int
	)
	flush := func() error {
		if num.Len() == 0 {
			return nil
		}
		defer num.Reset()
		s := num.String()
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &MalformedNumberError{Col: at, Text: s, Err: err}
		}
		toks = append(toks, Token{Kind: TokenInt, Text: s, Value: v, Pos: at})
		return nil
	}
	col := 0
	for _, r := range text {
		col++
		if '0' <= r && r <= '9' {
			if num.Len() == 0 {
				at = col
			}
			num.WriteRune(r)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		switch {
		case unicode.IsSpace(r):
			// do nothing
		case r == '(':
			toks = append(toks, Token{Kind: TokenOpen, Text: "(", Pos: col})
		case r == ')':
			toks = append(toks, Token{Kind: TokenClose, Text: ")", Pos: col})
		case strings.ContainsRune(OperatorRunes, r):
			toks = append(toks, Token{Kind: TokenOp, Text: string(r), Pos: col})
		default:
			return nil, &MalformedExpressionError{Col: col, Reason: "unexpected character " + strconv.QuoteRune(r)}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return toks, nil
}
