// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins.
//
// Builtins receive their arguments as a list. Both functions here panic
// with a message naming the expected count when the list is too short.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/eva/internal/common/fault"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
)

// Fixed returns the arguments in args, of which there must be at least
// min and at most max.
func Fixed(args cell.I, min, max int) []cell.I {
	v, rest := Variadic(args, min, max)
	if rest != pair.Null {
		mismatch(max, list.Length(args))
	}

	return v
}

// Variadic returns up to max leading arguments from args, of which there
// must be at least min, and the list of any arguments that follow.
func Variadic(args cell.I, min, max int) ([]cell.I, cell.I) {
	v := make([]cell.I, 0, max)

	for ; len(v) < max && args != pair.Null; args = pair.Cdr(args) {
		v = append(v, pair.Car(args))
	}

	if len(v) < min {
		mismatch(min, len(v))
	}

	return v, args
}

func mismatch(expected, passed int) {
	panic(fmt.Sprintf("expected %s, passed %d", fault.Count(expected, "argument", "s"), passed))
}
