// Released under an MIT license. See LICENSE.

package num

import "github.com/michaelmacinnis/eva/internal/common/interface/cell"

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns c as a *T. It panics if c is any other type.
func To(c cell.I) *T {
	t, ok := c.(*T)
	if !ok {
		panic(c.Name() + " is not a " + name)
	}

	return t
}
