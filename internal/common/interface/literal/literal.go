// Released under an MIT license. See LICENSE.

// Package literal defines the interface for cells that can be written as source text.
package literal

import (
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// I (literal) is any cell the reader could have produced.
type I interface {
	Literal() string
}

// String returns c as source text. Closures and builtins have no source
// text and cause a panic.
func String(c cell.I) string {
	if l, ok := c.(I); ok {
		return l.Literal()
	}

	panic(c.Name() + " has no literal representation")
}
