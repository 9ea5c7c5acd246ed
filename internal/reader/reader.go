// Released under an MIT license. See LICENSE.

// Package reader turns eva source text into expressions.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/reader/lexer"
	"github.com/michaelmacinnis/eva/internal/reader/parser"
)

// ErrIncomplete is returned by Read when the text ends inside a list or string.
var ErrIncomplete = errors.New("unexpected end of input")

// Error is a syntax error with a source location.
type Error = parser.Error

// T (reader) encapsulates the eva lexer and parser.
type T struct {
	cells []cell.I
	p     *parser.T
	s     *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{s: lexer.New(name)}

	r.p = parser.New(func(c cell.I) {
		r.cells = append(r.cells, c)
	}, r.s.Token)

	return r
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Parser returns the readers's internal parser.T.
func (r *reader) Parser() *parser.T {
	return r.p
}

// Pending returns true if the reader is waiting for the rest of an expression.
func (r *reader) Pending() bool {
	return r.p.Depth() > 0 || r.s.Pending()
}

// Reset discards any partially read expression.
func (r *reader) Reset() {
	r.cells = nil
	r.p.Reset()
	r.s.Reset()
}

// Scan reads the line and returns every expression it completes.
// If scan encounters any error it discards the partial expression and
// returns the error.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.s.Scan(line)

	err := r.p.Parse()

	cells := r.cells
	r.cells = nil

	if err != nil {
		r.s.Reset()

		return cells, err
	}

	return cells, nil
}

// Read returns all of the expressions in text. Label names the source.
func Read(label, text string) ([]cell.I, error) {
	r := New(label)

	cells, err := r.Scan(text + "\n")
	if err != nil {
		return nil, err
	}

	if r.Pending() {
		return nil, ErrIncomplete
	}

	return cells, nil
}
