// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the eva language.
package parser

import (
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/struct/loc"
	"github.com/michaelmacinnis/eva/internal/common/struct/token"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/michaelmacinnis/eva/internal/common/type/sym"
)

// Error is a syntax error and the location where it was found.
type Error struct {
	Msg    string
	Source loc.T
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Msg
}

// T holds the state of the parser.
type T struct {
	emit func(cell.I)    // Function to call to emit a parsed expression.
	item func() *token.T // Function to call to get another token.

	// Lists still open and the tokens that opened them.
	open  []*token.T
	parts [][]cell.I
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Depth returns the number of lists that have been opened but not closed.
func (p *T) Depth() int {
	return len(p.open)
}

// Opened returns the location of the innermost unclosed list, if any.
func (p *T) Opened() *loc.T {
	if len(p.open) == 0 {
		return nil
	}

	return p.open[len(p.open)-1].Source()
}

// Parse consumes tokens and emits cells until there are no more tokens.
// Partially parsed lists are retained across calls.
func (p *T) Parse() error {
	for t := p.item(); t != nil; t = p.item() {
		switch {
		case t.Is('('):
			p.open = append(p.open, t)
			p.parts = append(p.parts, nil)

		case t.Is(')'):
			if len(p.open) == 0 {
				return p.fail(t, "unexpected ')'")
			}

			n := len(p.parts) - 1
			c := list.New(p.parts[n]...)

			p.open = p.open[:n]
			p.parts = p.parts[:n]

			p.add(c)

		default:
			c, err := p.atom(t)
			if err != nil {
				return err
			}

			p.add(c)
		}
	}

	return nil
}

// Reset discards any partially parsed lists.
func (p *T) Reset() {
	p.open = nil
	p.parts = nil
}

func (p *T) add(c cell.I) {
	n := len(p.parts)
	if n == 0 {
		p.emit(c)

		return
	}

	p.parts[n-1] = append(p.parts[n-1], c)
}

func (p *T) atom(t *token.T) (cell.I, error) {
	text := t.Value()

	switch {
	case t.Is(token.DoubleQuoted):
		s, err := adapted.ActualBytes(text[1 : len(text)-1])
		if err != nil {
			return nil, p.fail(t, err.Error())
		}

		return str.New(s), nil

	case t.Is(token.Number):
		return num.New(text), nil

	case t.Is(token.Symbol):
		return sym.Token(t), nil
	}

	return nil, p.fail(t, "unexpected '"+text+"'")
}

func (p *T) fail(t *token.T, msg string) error {
	p.Reset()

	return &Error{Msg: msg, Source: *t.Source()}
}
