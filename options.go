package calc

import (
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/go-kit/log"
)

// Option is an option used when creating an evaluator.
type Option interface {
	evalOption(*Evaluator)
}

type (
	precopt   uint
	strictopt struct{}
	opopt     Operator
	logopt    struct{ l log.Logger }
)

// Prec sets the precision of calculations in bits. Panics if prec is zero or
// exceeds big.MaxPrec.
func Prec(prec uint) Option {
	if prec == 0 || prec > big.MaxPrec {
		panic("calc: invalid precision")
	}
	return precopt(prec)
}

func (o precopt) evalOption(e *Evaluator) {
	e.prec = uint(o)
}

// Strict limits each bracket level to a single operation, "lhs op rhs", or a
// single operand. Longer chains such as "1+1+1" are rejected with a
// MalformedExpressionError.
func Strict() Option {
	return strictopt{}
}

func (strictopt) evalOption(e *Evaluator) {
	e.strict = true
}

// WithOperator adds an operator to the evaluator or replaces the operator
// with the same symbol. Panics if the symbol is not a single rune from
// OperatorRunes or if op.Fn is nil.
func WithOperator(op Operator) Option {
	r, sz := utf8.DecodeRuneInString(op.Symbol)
	if sz == 0 || sz != len(op.Symbol) || !strings.ContainsRune(OperatorRunes, r) {
		panic("calc: cannot define operator " + op.Symbol)
	}
	if op.Fn == nil {
		panic("calc: nil operator function for " + op.Symbol)
	}
	return opopt(op)
}

func (o opopt) evalOption(e *Evaluator) {
	e.ops = e.ops.with(Operator(o))
}

// Logger sets a logger which receives debug records for each stage of
// evaluation. The logger must be safe for concurrent use if the evaluator is
// shared between goroutines.
func Logger(l log.Logger) Option {
	return logopt{l}
}

func (o logopt) evalOption(e *Evaluator) {
	if o.l == nil {
		e.logger = log.NewNopLogger()
		return
	}
	e.logger = o.l
}
