// Released under an MIT license. See LICENSE.

// Package list provides operations on lists. A list is not a type of its
// own: it is Null or a chain of pairs whose last cdr is Null.
package list

import (
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
)

// Elements returns the elements of the list l as a slice.
// It panics if l is an improper list.
func Elements(l cell.I) []cell.I {
	elements := make([]cell.I, 0, Length(l))

	for ; l != pair.Null; l = pair.Cdr(l) {
		elements = append(elements, pair.Car(l))
	}

	return elements
}

// Is returns true if c is a proper list.
func Is(c cell.I) bool {
	for ; c != pair.Null; c = pair.Cdr(c) {
		if !pair.Is(c) {
			return false
		}
	}

	return true
}

// Length returns the number of elements in the list l.
// It panics if l is an improper list.
func Length(l cell.I) int {
	n := 0

	for ; l != pair.Null; l = pair.Cdr(l) {
		n++
	}

	return n
}

// New returns a list of elements. With no elements it returns Null.
func New(elements ...cell.I) cell.I {
	l := pair.Null

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}
