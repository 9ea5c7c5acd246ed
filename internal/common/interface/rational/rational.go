// Released under an MIT license. See LICENSE.

// Package rational defines the interface for cells with a numeric value.
package rational

import (
	"math/big"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// I (rational) is any cell with an exact numeric value.
type I interface {
	Rat() *big.Rat
}

// Is returns true if c has a numeric value.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// Number returns the numeric value of c. It panics if c has none.
func Number(c cell.I) *big.Rat {
	if r, ok := c.(I); ok {
		return r.Rat()
	}

	panic(c.Name() + " cannot be used in a numeric context")
}
