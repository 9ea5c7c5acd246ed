// Released under an MIT license. See LICENSE.

// Package boolean provides eva's true and false values.
package boolean

import (
	"strconv"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) is one of the two values False and True. No others are made.
type T struct {
	v bool
}

type boolean = T

//nolint:gochecknoglobals
var (
	False cell.I = &boolean{false}
	True  cell.I = &boolean{true}
)

// Bool returns True or False to match b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the Go value of the boolean b.
func (b *boolean) Bool() bool {
	return b.v
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	o, ok := c.(*boolean)

	return ok && o.v == b.v
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return strconv.FormatBool(b.v)
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns true or false.
func (b *boolean) String() string {
	return strconv.FormatBool(b.v)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
