package calc

import (
	"strings"
)

// Term is an element of a reduced expression: either a Token or a *Group.
type Term interface {
	term()
}

// Group is a bracketed subexpression. The root group of an expression has no
// brackets and zero Open and Close positions.
type Group struct {
	// Terms is the contents of the group in source order.
	Terms []Term
	// Open and Close are the positions of the group's brackets.
	Open, Close int
}

func (*Group) term() {}

// String renders the group with alternating round and square brackets
// marking each nesting level. The root group has no brackets.
func (g *Group) String() string {
	var b strings.Builder
	g.fmt(&b, false)
	return b.String()
}

func (g *Group) fmt(b *strings.Builder, square bool) {
	for i, t := range g.Terms {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch t := t.(type) {
		case Token:
			b.WriteString(t.Text)
		case *Group:
			var l, r byte = '(', ')'
			if square {
				l, r = '[', ']'
			}
			b.WriteByte(l)
			t.fmt(b, !square)
			b.WriteByte(r)
		default:
			// Invalid terms use invalid characters.
			b.WriteString("$#$")
		}
	}
}

// depth returns the maximum bracket nesting within the group.
func (g *Group) depth() int {
	d := 0
	for _, t := range g.Terms {
		if c, ok := t.(*Group); ok {
			if k := c.depth() + 1; k > d {
				d = k
			}
		}
	}
	return d
}
