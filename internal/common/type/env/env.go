// Released under an MIT license. See LICENSE.

// Package env provides eva's environment (scope frame) type.
package env

import (
	"github.com/michaelmacinnis/eva/internal/common/fault"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
	"github.com/michaelmacinnis/eva/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and links to the enclosing frame.
// A frame may be the parent of many frames (every activation of a closure
// shares the closure's frame), so frames are only ever handled by pointer.
type T struct {
	previous scope.I
	*bindings
}

type env = T

// We alias hash.T to bindings so that when embedded it is easy to refer to
// it by name. Embedding bindings also lets us access its methods directly.
type bindings = hash.T

// New creates a new env enclosed by previous. The root frame has a nil previous.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		bindings: hash.New(),
	}
}

// Assign replaces the value of the name k in the nearest frame that binds it.
func (e *env) Assign(k string, v cell.I) (cell.I, error) {
	s, err := e.Resolve(k)
	if err != nil {
		return nil, err
	}

	if f, ok := s.(*env); ok {
		f.Set(k, v)

		return v, nil
	}

	return s.Assign(k, v)
}

// Define associates the name k with the cell v in the env e only.
func (e *env) Define(k string, v cell.I) cell.I {
	e.Set(k, v)

	return v
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	return Is(c) && e == To(c)
}

// Lookup retrieves the value bound to the name k in the nearest frame that binds it.
func (e *env) Lookup(k string) (cell.I, error) {
	s, err := e.Resolve(k)
	if err != nil {
		return nil, err
	}

	if f, ok := s.(*env); ok {
		v, _ := f.Get(k)

		return v, nil
	}

	return s.Lookup(k)
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Names returns the names bound in the env e, not including enclosing frames.
func (e *env) Names() []string {
	return e.Keys()
}

// Resolve returns the nearest frame, starting with e, that binds the name k.
func (e *env) Resolve(k string) (scope.I, error) {
	var s scope.I = e

	for s != nil {
		f, ok := s.(*env)
		if !ok {
			return s.Resolve(k)
		}

		if _, ok := f.Get(k); ok {
			return f, nil
		}

		s = f.previous
	}

	return nil, fault.Undefined(k)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
