// Released under an MIT license. See LICENSE.

// Package token is shared by the eva lexer and parser.
package token

import (
	"slices"
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/eva/internal/common/struct/loc"
)

// Class is a token's type. Parentheses are represented by the rune itself.
type Class rune

// Token classes.
const (
	DoubleQuoted Class = unicode.MaxRune + 1 + iota
	Number
	Symbol
)

// String returns a string representation of c. Useful for debugging.
func (c Class) String() string {
	switch c {
	case DoubleQuoted:
		return "DoubleQuoted"
	case Number:
		return "Number"
	case Symbol:
		return "Symbol"
	}

	return strconv.QuoteRune(rune(c))
}

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source *loc.T
	value  string
}

// New creates a new token.
func New(class Class, value string, source *loc.T) *T {
	return &T{class: class, source: source, value: value}
}

// Is returns true if t is not nil and has any of the classes in cs.
func (t *T) Is(cs ...Class) bool {
	return t != nil && slices.Contains(cs, t.class)
}

// Source returns where t was read.
func (t *T) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *T) String() string {
	return strconv.Quote(t.value) + "(" + t.class.String() + "," + t.source.String() + ")"
}

// Value returns the text of t.
func (t *T) Value() string {
	return t.value
}
