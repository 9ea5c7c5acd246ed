// Released under an MIT license. See LICENSE.

// Package pair provides eva's cons cell type and Null, the empty list.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/interface/truth"
)

const name = "cons"

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Null is the empty list. It terminates every proper list and is also
// eva's null value. Its car and cdr are itself.
//
//nolint:gochecknoglobals
var Null cell.I = null()

// Car returns the first element of the pair c. It panics if c is not a pair.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the rest of the pair c. It panics if c is not a pair.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the second element of the list c.
func Cadr(c cell.I) cell.I {
	return Car(Cdr(c))
}

// Cons returns a new pair with the car h and the cdr t.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Bool returns false for Null and true for every other pair.
func (p *pair) Bool() bool {
	return p != Null
}

// Equal returns true if c is a pair whose elements are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	if p == Null || c == Null {
		return p == c
	}

	o, ok := c.(*pair)

	return ok && p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns p in S-expression syntax.
func (p *pair) Literal() string {
	if p == Null {
		return "()"
	}

	var b strings.Builder

	b.WriteByte('(')

	var c cell.I = p
	for c != Null {
		if c != cell.I(p) {
			b.WriteByte(' ')
		}

		o, ok := c.(*pair)
		if !ok {
			b.WriteString(". " + literal.String(c))

			break
		}

		b.WriteString(literal.String(o.car))

		c = o.cdr
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns "null" for Null and "cons" for any other pair.
func (p *pair) Name() string {
	if p == Null {
		return "null"
	}

	return name
}

// String returns the display text for p.
func (p *pair) String() string {
	if p == Null {
		return "null"
	}

	return p.Literal()
}

func null() *pair {
	p := &pair{}
	p.car = p
	p.cdr = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}
