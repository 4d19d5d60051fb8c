package calc

import "strconv"

// Operation is a single binary operation extracted from a reduced expression.
type Operation struct {
	LHS Term
	Op  Token
	RHS Term
}

// NewOperation extracts an operation from exactly three terms: an operand, an
// operator token, and an operand.
func NewOperation(terms []Term) (Operation, error) {
	if len(terms) != 3 {
		col := 0
		switch {
		case len(terms) > 3:
			col = termPos(terms[3])
		case len(terms) > 0:
			col = termPos(terms[len(terms)-1])
		}
		return Operation{}, &MalformedExpressionError{
			Col:    col,
			Reason: "want lhs operator rhs, have " + strconv.Itoa(len(terms)) + " terms",
		}
	}
	op, ok := terms[1].(Token)
	if !ok || op.Kind != TokenOp {
		return Operation{}, &MalformedExpressionError{Col: termPos(terms[1]), Reason: "missing operator"}
	}
	for _, t := range [...]Term{terms[0], terms[2]} {
		if tok, ok := t.(Token); ok && tok.Kind != TokenInt {
			return Operation{}, &MalformedExpressionError{Col: tok.Pos, Reason: "expected operand, found " + strconv.Quote(tok.Text)}
		}
	}
	return Operation{LHS: terms[0], Op: op, RHS: terms[2]}, nil
}
