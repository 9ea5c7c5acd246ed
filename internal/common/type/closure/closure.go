// Released under an MIT license. See LICENSE.

// Package closure provides eva's user-defined function type.
package closure

import (
	"strings"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
)

const name = "lambda"

// T (closure) pairs a function's parameters and body with the scope that
// was current when the lambda expression was evaluated. The scope is held
// by reference: later assignments to captured names are visible to the body.
type T struct {
	Body   cell.I   // Body of the routine.
	Params []string // Param labels.
	Scope  scope.I  // Defining environment.
}

type closure = T

// New creates a new closure.
func New(params []string, body cell.I, s scope.I) *closure {
	return &closure{Body: body, Params: params, Scope: s}
}

// Equal returns true if c is the same closure as f.
func (f *closure) Equal(c cell.I) bool {
	return Is(c) && f == To(c)
}

// Name returns the type name for the closure f.
func (f *closure) Name() string {
	return name
}

// String returns a description of the closure f.
func (f *closure) String() string {
	return "<" + name + " (" + strings.Join(f.Params, " ") + ")>"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
