// Released under an MIT license. See LICENSE.

// Package sym provides eva's symbol type.
//
// Symbols are interned. Every symbol with the same text, in every
// interpreter in the process, shares a single *T, so comparing symbols
// compares pointers.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

//nolint:gochecknoglobals
var interned sync.Map // string -> *sym

// New returns the symbol for the text v.
func New(v string) cell.I {
	return intern(v)
}

// Is returns true if c is a symbol, with or without a source location.
func Is(c cell.I) bool {
	switch c.(type) {
	case *sym, *Plus:
		return true
	}

	return false
}

// To returns the interned symbol for c. It panics if c is not a symbol.
func To(c cell.I) *T {
	switch t := c.(type) {
	case *sym:
		return t
	case *Plus:
		return t.sym
	}

	panic(c.Name() + " is not a " + name)
}

// Equal returns true if c is the symbol s, located or not.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && To(c) == s
}

// Literal returns the text of the symbol s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the symbol s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the symbol s.
func (s *sym) String() string {
	return string(*s)
}

func intern(v string) *sym {
	if p, ok := interned.Load(v); ok {
		return p.(*sym) //nolint:forcetypeassert
	}

	s := sym(v)

	p, _ := interned.LoadOrStore(v, &s)

	return p.(*sym) //nolint:forcetypeassert
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
