package calc

// CheckBalance verifies that the parentheses in text nest properly. It
// tracks the running depth, so a close bracket before its open bracket is
// an error even when the counts match.
func CheckBalance(text string) error {
	var opens []int
	col := 0
	for _, r := range text {
		col++
		switch r {
		case '(':
			opens = append(opens, col)
		case ')':
			if len(opens) == 0 {
				return &UnbalancedExpressionError{Col: col, Right: ")"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		// Report the outermost bracket that was never closed.
		return &UnbalancedExpressionError{Col: opens[0], Left: "("}
	}
	return nil
}

// Reduce collapses each bracketed span of toks into a Group, producing a tree
// whose root holds the top-level terms. Sibling and nested brackets are
// reduced in a single pass.
func Reduce(toks []Token) (*Group, error) {
	root := &Group{}
	stack := []*Group{root}
	for _, tok := range toks {
		top := stack[len(stack)-1]
		switch tok.Kind {
		case TokenOpen:
			stack = append(stack, &Group{Open: tok.Pos})
		case TokenClose:
			if len(stack) == 1 {
				return nil, &UnbalancedExpressionError{Col: tok.Pos, Right: tok.Text}
			}
			if len(top.Terms) == 0 {
				return nil, &MalformedExpressionError{Col: tok.Pos, Reason: "empty brackets"}
			}
			top.Close = tok.Pos
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.Terms = append(parent.Terms, top)
		case TokenInt, TokenOp:
			top.Terms = append(top.Terms, tok)
		default:
			panic("calc: invalid token " + tok.String())
		}
	}
	if len(stack) > 1 {
		return nil, &UnbalancedExpressionError{Col: stack[1].Open, Left: "("}
	}
	return root, nil
}
