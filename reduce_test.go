package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBalance(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		col   int
		left  string
		right string
	}{
		{"none", "1+1", 0, "", ""},
		{"one", "(1+1)", 0, "", ""},
		{"nested", "((1+1))", 0, "", ""},
		{"siblings", "(1)+(2)", 0, "", ""},
		{"unclosed", "((( 1+1", 1, "(", ""},
		{"unclosed-inner", "(1+(2", 1, "(", ""},
		{"unopened", "1+1)", 4, "", ")"},
		{"reversed", ")(", 1, "", ")"},
		{"late-close", "(1))(", 4, "", ")"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := CheckBalance(c.src)
			if c.col == 0 {
				require.NoError(t, err)
				return
			}
			var ue *UnbalancedExpressionError
			require.ErrorAs(t, err, &ue)
			assert.Equal(t, c.col, ue.Pos())
			assert.Equal(t, c.left, ue.Left)
			assert.Equal(t, c.right, ue.Right)
		})
	}
}

func TestReduce(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		tree  string
		depth int
	}{
		{"flat", "1+1", "1 + 1", 0},
		{"single", "(1+1)", "(1 + 1)", 1},
		{"double", "((1+1))", "([1 + 1])", 2},
		{"rhs", "1 + (1 + 1)", "1 + (1 + 1)", 1},
		{"siblings", "(1+2)*(3-4)", "(1 + 2) * (3 - 4)", 1},
		{"after-close", "(1+1)+1", "(1 + 1) + 1", 1},
		{"deep", "(1+(2*(3-(4/5))))", "(1 + [2 * (3 - [4 / 5])])", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			g, err := Reduce(toks)
			require.NoError(t, err)
			assert.Equal(t, c.tree, g.String())
			assert.Equal(t, c.depth, g.depth())
			assert.Zero(t, g.Open)
			assert.Zero(t, g.Close)
		})
	}
}

func TestReduceStructure(t *testing.T) {
	toks, err := Tokenize("1 + (2 * 3)")
	require.NoError(t, err)
	g, err := Reduce(toks)
	require.NoError(t, err)
	want := &Group{
		Terms: []Term{
			Token{Kind: TokenInt, Text: "1", Value: 1, Pos: 1},
			Token{Kind: TokenOp, Text: "+", Pos: 3},
			&Group{
				Terms: []Term{
					Token{Kind: TokenInt, Text: "2", Value: 2, Pos: 6},
					Token{Kind: TokenOp, Text: "*", Pos: 8},
					Token{Kind: TokenInt, Text: "3", Value: 3, Pos: 10},
				},
				Open:  5,
				Close: 11,
			},
		},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("wrong tree (-want +got):\n%s", diff)
	}
}

func TestReduceErrors(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		col        int
		unbalanced bool
	}{
		{"unclosed", "(1+1", 1, true},
		{"unopened", "1+1)", 4, true},
		{"reversed", ")(", 1, true},
		{"empty", "()", 2, false},
		{"empty-nested", "(1+())", 5, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			g, err := Reduce(toks)
			require.Error(t, err)
			assert.Nil(t, g)
			var ie InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, c.col, ie.Pos())
			if c.unbalanced {
				assert.IsType(t, (*UnbalancedExpressionError)(nil), err)
			} else {
				assert.IsType(t, (*MalformedExpressionError)(nil), err)
			}
		})
	}
}
