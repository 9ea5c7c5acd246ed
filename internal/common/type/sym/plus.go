// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/struct/loc"
	"github.com/michaelmacinnis/eva/internal/common/struct/token"
)

// Plus is a symbol plus the lexical location where it was read.
// It is equal to, and evaluates the same as, the plain symbol.
type Plus struct {
	*sym
	source *loc.T
}

// Token creates a Plus from a token.T.
func Token(t *token.T) cell.I {
	p := intern(t.Value())

	return &Plus{p, t.Source()}
}

// Source returns the lexical location for a sym that has it.
func (p *Plus) Source() *loc.T {
	return p.source
}

// Where returns the location of c as text if c is a Plus, or "" otherwise.
func Where(c cell.I) string {
	if p, ok := c.(*Plus); ok && p.source != nil {
		return p.source.String()
	}

	return ""
}
