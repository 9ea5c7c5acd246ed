// Released under an MIT license. See LICENSE.

// Package commands provides eva's primitive functions.
//
// Primitives receive their evaluated arguments as a list. Like the rest of
// the builtins they panic when passed arguments they cannot accept; the
// evaluator turns the panic into a fault.
package commands

import (
	"io"

	"github.com/michaelmacinnis/eva/internal/common/type/builtin"
)

// Functions returns eva's primitives keyed by the name they are bound to.
// Output from print is written to w.
func Functions(w io.Writer) map[string]builtin.Function {
	return map[string]builtin.Function{
		"*":     mul,
		"+":     add,
		"-":     sub,
		"/":     div,
		"<":     lt,
		"<=":    le,
		"=":     eq,
		">":     gt,
		">=":    ge,
		"print": printer(w),
	}
}
