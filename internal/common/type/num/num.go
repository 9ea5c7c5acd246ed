// Released under an MIT license. See LICENSE.

// Package num provides eva's number type, an arbitrary-precision rational.
package num

import (
	"math/big"
	"strconv"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/interface/rational"
	"github.com/michaelmacinnis/eva/internal/common/interface/truth"
)

const name = "number"

// T (num) is a big.Rat. Arithmetic on nums is exact.
type T big.Rat

type num = T

// New parses s, an optionally signed integer or decimal, as a num.
// It panics if s is not a number.
func New(s string) cell.I {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic(strconv.Quote(s) + " is not a number")
	}

	return Rat(r)
}

// Int returns the num for i.
func Int(i int) cell.I {
	return Rat(new(big.Rat).SetInt64(int64(i)))
}

// Rat returns r as a num. The num takes ownership of r.
func Rat(r *big.Rat) cell.I {
	return (*num)(r)
}

// Bool returns false for zero and true for any other num.
func (n *num) Bool() bool {
	return n.Rat().Sign() != 0
}

// Equal returns true if c is a num with the same value as n.
func (n *num) Equal(c cell.I) bool {
	o, ok := c.(*num)

	return ok && n.Rat().Cmp(o.Rat()) == 0
}

// Literal returns the text that reads back as n, when n is an integer or
// a short decimal.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns n as a *big.Rat. The result must not be modified.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns n as an integer if it is one. Otherwise it returns the
// shortest decimal that converts to the same float64 as n.
func (n *num) String() string {
	r := n.Rat()
	if r.IsInt() {
		return r.Num().String()
	}

	f, _ := r.Float64()

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational number.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
