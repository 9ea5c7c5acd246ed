// Released under an MIT license. See LICENSE.

// Package str provides eva's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/michaelmacinnis/eva/internal/common/interface/truth"
)

const name = "string"

// T (str) is the content of a string literal, without its quotes and with
// its escape sequences decoded.
type T string

type str = T

// New returns a str holding v.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Bool returns false only for the empty string.
func (s *str) Bool() bool {
	return *s != ""
}

// Equal returns true if c is a str with the same content as s.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && *o == *s
}

// Literal returns s as a double-quoted string literal.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the type name for the str s.
func (s *str) Name() string {
	return name
}

// String returns the content of s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
