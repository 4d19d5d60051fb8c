// Package calc implements a calculator for bracketed integer arithmetic.
//
// Evaluating an expression runs three stages, each of which is exported so
// callers can inspect the intermediate forms. Tokenize turns text into a flat
// token sequence, Reduce collapses parenthesized spans into nested groups,
// and an Evaluator computes the value of the resulting tree.
//
// Numbers in the input are unsigned decimal integers. Results are big.Float
// values at the evaluator's precision, so "16 / 4" is exactly 4 while "1 / 3"
// is rounded. The default operators are + - * / with the usual precedence;
// "^" is available through WithOperator(Pow).
//
// An Evaluator is immutable once created and may be shared by goroutines.
//
package calc
