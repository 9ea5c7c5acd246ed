// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the eva language.
//
// The eva lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/michaelmacinnis/eva/internal/common/struct/loc"
	"github.com/michaelmacinnis/eva/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	here   loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		here: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.source = l.here
	l.state = skipWhitespace

	return l
}

// Pending returns true if the lexer is part way through a token.
func (l *T) Pending() bool {
	return l.first < l.index || len(l.tokens) > 0
}

// Reset discards any buffered text and partially scanned token.
func (l *T) Reset() {
	l.bytes = ""
	l.first = 0
	l.index = 0
	l.state = skipWhitespace
	l.source = l.here
	l.tokens = nil
}

// Scan passes a text buffer to the lexer for scanning. Text that has not
// yet been turned into tokens is kept and scanning resumes where it left off.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + text
	l.index -= l.first
	l.first = 0
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if more text is needed.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		state := l.state(l)
		if state == nil {
			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

//nolint:gochecknoglobals
var number = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.here.Line++
		l.here.Char = 1
	} else {
		l.here.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.skip()
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.first = l.index
	l.source = l.here
}

func delimiter(r token.Class) bool {
	switch r {
	case '\t', '\n', '\r', ' ', '"', '(', ')', ';':
		return true
	}

	return false
}

// T states.

func scanDoubleQuoted(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\\':
			l.accept(r, w)

			return scanEscaped
		case '"':
			l.accept(r, w)
			l.emit(token.DoubleQuoted, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanEscaped(l *T) action {
	r, w := l.peek()
	if r == eof {
		return nil
	}

	l.accept(r, w)

	return scanDoubleQuoted
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case delimiter(r):
			text := l.Text()
			if number.MatchString(text) {
				l.emit(token.Number, text)
			} else {
				l.emit(token.Symbol, text)
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.accept(r, w)
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '\t', '\n', '\r', ' ':
		l.accept(r, w)
		l.skip()

		return skipWhitespace
	case ';':
		return skipComment
	case '(', ')':
		l.accept(r, w)
		l.emit(r, l.Text())

		return skipWhitespace
	case '"':
		l.accept(r, w)

		return scanDoubleQuoted
	}

	return scanSymbol
}
