package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// BinaryFunc computes an operator's result. It must set z to the result of
// applying the operator to x and y and must not modify x or y. z has the
// evaluator's precision and does not alias x or y.
type BinaryFunc func(z, x, y *big.Float) error

// Operator is a binary infix operator.
type Operator struct {
	// Symbol is the operator's token text. It must be one of OperatorRunes.
	Symbol string
	// Prec is the precedence. Higher is more binding.
	Prec int8
	// Right indicates right-associativity.
	Right bool
	// Fn computes the operator's result.
	Fn BinaryFunc
}

func (p Operator) moreBinding(than Operator) bool {
	if p.Prec != than.Prec {
		return p.Prec > than.Prec
	}
	return p.Right
}

// The default arithmetic operators.
var (
	Add = Operator{Symbol: "+", Prec: 1, Fn: func(z, x, y *big.Float) error {
		z.Add(x, y)
		return nil
	}}
	Sub = Operator{Symbol: "-", Prec: 1, Fn: func(z, x, y *big.Float) error {
		z.Sub(x, y)
		return nil
	}}
	Mul = Operator{Symbol: "*", Prec: 5, Fn: func(z, x, y *big.Float) error {
		z.Mul(x, y)
		return nil
	}}
	Div = Operator{Symbol: "/", Prec: 5, Fn: func(z, x, y *big.Float) error {
		if y.Sign() == 0 {
			return &DivisionByZeroError{}
		}
		z.Quo(x, y)
		return nil
	}}
)

// Pow is exponentiation, a^b. It is right-associative and binds more tightly
// than multiplication. It is not enabled by default; use WithOperator(Pow).
var Pow = Operator{Symbol: "^", Prec: 15, Right: true, Fn: pow}

func pow(z, x, y *big.Float) error {
	if x.Sign() == 0 {
		switch y.Sign() {
		case -1:
			return &DomainError{X: new(big.Float).Copy(x), Func: "^"}
		case 0:
			z.SetInt64(1)
		default:
			z.SetInt64(0)
		}
		return nil
	}
	if n, acc := y.Int64(); acc == big.Exact {
		powInt(z, x, n)
		return nil
	}
	if y.IsInt() {
		// Integer exponents beyond int64 are allowed for any base. The sign of
		// the result follows the parity of y.
		z.Set(powFloat(z.Prec(), new(big.Float).Abs(x), y))
		if x.Sign() < 0 && odd(y) {
			z.Neg(z)
		}
		return nil
	}
	// A negative base is only defined for integer exponents.
	if x.Sign() < 0 {
		return &DomainError{X: new(big.Float).Copy(x), Func: "^"}
	}
	z.Set(powFloat(z.Prec(), x, y))
	return nil
}

// powFloat computes x^y for positive x. bigfloat.Pow does not always return
// its destination argument, so only the returned value holds the result.
func powFloat(prec uint, x, y *big.Float) *big.Float {
	return bigfloat.Pow(new(big.Float).SetPrec(prec), x, y)
}

// odd reports whether the nonzero integer y is odd, i.e. whether its lowest
// set bit is the ones place.
func odd(y *big.Float) bool {
	return y.MantExp(nil) == int(y.MinPrec())
}

// powInt sets z to x^n by repeated squaring. x must be nonzero.
func powInt(z, x *big.Float, n int64) {
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	b := new(big.Float).SetPrec(z.Prec()).Set(x)
	z.SetInt64(1)
	for ; u > 0; u >>= 1 {
		if u&1 == 1 {
			z.Mul(z, b)
		}
		b.Mul(b, b)
	}
	if n < 0 {
		z.Quo(new(big.Float).SetPrec(z.Prec()).SetInt64(1), z)
	}
}

// opTable is a mapping from operator symbols to operators. Tables are never
// modified after construction.
type opTable map[string]Operator

func newOpTable(ops ...Operator) opTable {
	t := make(opTable, len(ops))
	for _, op := range ops {
		t[op.Symbol] = op
	}
	return t
}

// with returns a copy of t with op added or replaced.
func (t opTable) with(op Operator) opTable {
	n := make(opTable, len(t)+1)
	for k, v := range t {
		n[k] = v
	}
	n[op.Symbol] = op
	return n
}

var defaultOps = newOpTable(Add, Sub, Mul, Div)

var (
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = Operator{Prec: -128, Right: true}
)
