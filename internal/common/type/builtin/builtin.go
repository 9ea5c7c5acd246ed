// Released under an MIT license. See LICENSE.

// Package builtin provides eva's host function type.
package builtin

import (
	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

const name = "builtin"

// Function is the signature of a host function. It receives its evaluated
// arguments as a list and panics when they are unacceptable.
type Function func(args cell.I) cell.I

// T (builtin) is a named host function.
type T struct {
	Function
	label string
}

type builtin = T

// New creates a builtin labeled l that calls fn.
func New(l string, fn Function) *builtin {
	return &builtin{Function: fn, label: l}
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Label returns the name the builtin b was created with.
func (b *builtin) Label() string {
	return b.label
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return name
}

// String returns a description of the builtin b.
func (b *builtin) String() string {
	return "<" + name + " " + b.label + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)
}
