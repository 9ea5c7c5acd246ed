// Released under an MIT license. See LICENSE.

// Package truth defines how eva decides whether a value is true.
package truth

import (
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// I (truth) is a cell that can be false.
type I interface {
	Bool() bool
}

// Value returns false for false, null, zero and the empty string. Every
// other value, including every closure and builtin, is true.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
