// Released under an MIT license. See LICENSE.

// Package cell defines the interface every eva expression and value satisfies.
package cell

// I (cell) is an expression or a value. The reader produces cells, the
// evaluator consumes them and produces more.
type I interface {
	// Equal reports whether c is the same value. Closures, builtins and
	// environments are only equal to themselves.
	Equal(c I) bool

	// Name returns the name of the cell's type for use in messages.
	Name() string
}
