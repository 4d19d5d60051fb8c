package calc

import (
	"math/big"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Evaluator evaluates expressions. It holds no per-call state, so it is safe
// to use an Evaluator concurrently.
type Evaluator struct {
	ops    opTable
	prec   uint
	strict bool
	logger log.Logger
}

// NewEvaluator creates an evaluator with the given options applied in order.
// If no precision is given, the default is 64.
func NewEvaluator(opts ...Option) *Evaluator {
	e := Evaluator{
		ops:    defaultOps,
		prec:   64,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&e)
	}
	return &e
}

// Prec returns the precision to which values are computed.
func (e *Evaluator) Prec() uint {
	return e.prec
}

// Eval evaluates an expression. It is Parse followed by EvalGroup.
func (e *Evaluator) Eval(text string) (*big.Float, error) {
	g, err := e.Parse(text)
	if err != nil {
		return nil, err
	}
	r, err := e.EvalGroup(g)
	if err != nil {
		return nil, err
	}
	level.Debug(e.logger).Log("msg", "evaluated expression", "expr", text, "result", r.Text('g', 10))
	return r, nil
}

// Parse reduces an expression to its bracket tree without evaluating it.
// The brackets in text are checked before anything else, then text is
// tokenized and reduced. Errors from any stage are returned as they are.
func (e *Evaluator) Parse(text string) (*Group, error) {
	if err := CheckBalance(text); err != nil {
		return nil, err
	}
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	level.Debug(e.logger).Log("msg", "tokenized expression", "expr", text, "tokens", len(toks))
	g, err := Reduce(toks)
	if err != nil {
		return nil, err
	}
	level.Debug(e.logger).Log("msg", "reduced expression", "tree", g.String(), "depth", g.depth())
	return g, nil
}

// EvalGroup evaluates a reduced expression.
func (e *Evaluator) EvalGroup(g *Group) (*big.Float, error) {
	if len(g.Terms) == 0 {
		return nil, &MalformedExpressionError{Col: g.Open + 1, Reason: "empty expression"}
	}
	if e.strict {
		if len(g.Terms) == 1 {
			return e.value(g.Terms[0])
		}
		op, err := NewOperation(g.Terms)
		if err != nil {
			return nil, err
		}
		return e.Run(op)
	}
	s := evaluation{e: e, terms: g.Terms}
	return s.expr(exprprec)
}

// Run evaluates a single operation.
func (e *Evaluator) Run(op Operation) (*big.Float, error) {
	l, err := e.value(op.LHS)
	if err != nil {
		return nil, err
	}
	r, err := e.value(op.RHS)
	if err != nil {
		return nil, err
	}
	o, ok := e.ops[op.Op.Text]
	if !ok {
		return nil, &UnsupportedOperatorError{Col: op.Op.Pos, Operator: op.Op.Text}
	}
	return e.apply(op.Op, o, l, r)
}

// value computes the value of a single operand term.
func (e *Evaluator) value(t Term) (*big.Float, error) {
	switch t := t.(type) {
	case Token:
		if t.Kind != TokenInt {
			// Unary operators are not part of the grammar.
			return nil, &MalformedExpressionError{Col: t.Pos, Reason: "expected operand, found " + strconv.Quote(t.Text)}
		}
		return new(big.Float).SetPrec(e.prec).SetInt64(t.Value), nil
	case *Group:
		return e.EvalGroup(t)
	default:
		panic("calc: invalid term")
	}
}

// apply computes l op r, attributing any error to the operator's position.
// A result that overflows to infinity is a DomainError on the right operand.
func (e *Evaluator) apply(tok Token, op Operator, l, r *big.Float) (z *big.Float, err error) {
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		// Infinite intermediate values inside an operator can make big.Float
		// panic, e.g. on 0 * Inf.
		if _, ok := x.(big.ErrNaN); !ok {
			panic(x)
		}
		z, err = nil, &DomainError{Col: tok.Pos, X: r, Func: tok.Text}
	}()
	z = new(big.Float).SetPrec(e.prec)
	if err := op.Fn(z, l, r); err != nil {
		switch err := err.(type) {
		case *DivisionByZeroError:
			if err.Col == 0 {
				err.Col = tok.Pos
			}
		case *DomainError:
			if err.Col == 0 {
				err.Col = tok.Pos
			}
		}
		return nil, err
	}
	if z.IsInf() {
		// Results beyond the exponent range of big.Float.
		return nil, &DomainError{Col: tok.Pos, X: r, Func: tok.Text}
	}
	return z, nil
}

// evaluation is the state of precedence climbing over one group's terms.
type evaluation struct {
	e     *Evaluator
	terms []Term
	k     int
}

// operand evaluates the next term as an operand.
func (s *evaluation) operand() (*big.Float, error) {
	if s.k >= len(s.terms) {
		return nil, &MalformedExpressionError{Col: termPos(s.terms[len(s.terms)-1]), Reason: "missing operand"}
	}
	t := s.terms[s.k]
	s.k++
	return s.e.value(t)
}

// expr evaluates terms while operators bind more tightly than until.
func (s *evaluation) expr(until Operator) (*big.Float, error) {
	l, err := s.operand()
	if err != nil {
		return nil, err
	}
	for s.k < len(s.terms) {
		t := s.terms[s.k]
		tok, ok := t.(Token)
		if !ok || tok.Kind != TokenOp {
			// e.g. "1 2" or "2(3)"; there is no implicit multiplication.
			return nil, &MalformedExpressionError{Col: termPos(t), Reason: "missing operator"}
		}
		op, ok := s.e.ops[tok.Text]
		if !ok {
			return nil, &UnsupportedOperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if !op.moreBinding(until) {
			return l, nil
		}
		s.k++
		r, err := s.expr(op)
		if err != nil {
			return nil, err
		}
		l, err = s.e.apply(tok, op, l, r)
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

// termPos gets the source position of a term.
func termPos(t Term) int {
	switch t := t.(type) {
	case Token:
		return t.Pos
	case *Group:
		return t.Open
	default:
		return 0
	}
}

// EvalString is a shortcut to evaluate an expression with a new evaluator.
func EvalString(text string, opts ...Option) (*big.Float, error) {
	return NewEvaluator(opts...).Eval(text)
}
