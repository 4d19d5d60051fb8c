package calc

import (
	"math/big"
	"strconv"
)

// UnbalancedExpressionError is an error indicating mismatched brackets in the
// input. It implements InputError.
type UnbalancedExpressionError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the open bracket that was never closed, if any.
	Left string
	// Right is the close bracket with no open bracket, if any.
	Right string
}

func (err *UnbalancedExpressionError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *UnbalancedExpressionError) Pos() int {
	return err.Col
}

// UnsupportedOperatorError is an error indicating an operator that has no
// definition in the evaluator. It implements InputError.
type UnsupportedOperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was not understood.
	Operator string
}

func (err *UnsupportedOperatorError) Error() string {
	return errpos(err.Col, "unsupported operator "+strconv.Quote(err.Operator))
}

func (err *UnsupportedOperatorError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division whose right operand
// is zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// MalformedExpressionError is an error indicating input that does not form
// an expression, such as an unknown character, a missing operand, or an
// operator where an operand belongs. It implements InputError.
type MalformedExpressionError struct {
	// Col is the position at which the problem was found.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *MalformedExpressionError) Error() string {
	return errpos(err.Col, "malformed expression: "+err.Reason)
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

// MalformedNumberError is an error indicating a digit run that is not a
// valid integer, e.g. because it overflows. It implements InputError and
// unwraps to the conversion error.
type MalformedNumberError struct {
	// Col is the position of the first digit.
	Col int
	// Text is the digit run.
	Text string
	// Err is the underlying conversion error.
	Err error
}

func (err *MalformedNumberError) Error() string {
	return errpos(err.Col, "invalid number "+err.Text+": "+err.Err.Error())
}

func (err *MalformedNumberError) Unwrap() error {
	return err.Err
}

func (err *MalformedNumberError) Pos() int {
	return err.Col
}

// DomainError is an error returned when an operator is applied to an operand
// outside its domain. It implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// X is the out-of-domain operand.
	X *big.Float
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnbalancedExpressionError)(nil)
	_ InputError = (*UnsupportedOperatorError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*MalformedNumberError)(nil)
	_ InputError = (*DomainError)(nil)
)
