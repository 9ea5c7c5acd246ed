// Released under an MIT license. See LICENSE.

// Package scope defines the interface for eva's environments.
package scope

import (
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// I (scope) is a frame in a chain of lexical environments.
//
// Define only touches the receiving frame. Assign, Lookup and Resolve walk
// outward from the receiving frame to the root and fail with an undefined
// variable error when no frame binds the name.
type I interface {
	cell.I

	Enclosing() I
	Names() []string

	Assign(k string, v cell.I) (cell.I, error)
	Define(k string, v cell.I) cell.I
	Lookup(k string) (cell.I, error)
	Resolve(k string) (I, error)
}
