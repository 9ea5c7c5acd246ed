// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping eva.
package boot

import (
	"io"

	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
	"github.com/michaelmacinnis/eva/internal/common/type/boolean"
	"github.com/michaelmacinnis/eva/internal/common/type/builtin"
	"github.com/michaelmacinnis/eva/internal/common/type/env"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/michaelmacinnis/eva/internal/engine/commands"
)

// Version is bound to VERSION in every global scope.
const Version = "0.1"

// Global creates a new root scope holding eva's constants and primitives.
// Each call returns an independent scope; print writes to w.
func Global(w io.Writer) scope.I {
	s := env.New(nil)

	s.Define("null", pair.Null)
	s.Define("true", boolean.True)
	s.Define("false", boolean.False)
	s.Define("VERSION", str.New(Version))

	for k, fn := range commands.Functions(w) {
		s.Define(k, builtin.New(k, fn))
	}

	return s
}
