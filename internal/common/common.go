// Released under an MIT license. See LICENSE.

// Package common holds what every eva value type shares.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// Stringer is implemented by every value that print can display.
type Stringer = fmt.Stringer

// String returns the display text for c. It panics if c has none.
func String(c cell.I) string {
	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	panic(c.Name() + " cannot be displayed")
}
