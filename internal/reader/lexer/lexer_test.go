// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/eva/internal/common/struct/token"
)

type expected struct {
	class token.Class
	value string
	line  int
	char  int
}

type harness struct {
	lexer *T
	t     *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		lexer: New(label),
		t:     t,
	}
}

func (h *harness) expect(tokens ...*expected) {
	h.t.Helper()

	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %q but there are no tokens", e.value)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case !a.Is(e.class) || a.Value() != e.value:
			h.t.Fatalf("Expected %q; got %v", e.value, a)
		case a.Source().Line != e.line || a.Source().Char != e.char:
			h.t.Fatalf("Expected %q at %d:%d; got %v", e.value, e.line, e.char, a)
		}
	}
}

func (h *harness) scan(s string, tokens ...*expected) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func at(c token.Class, v string, line, char int) *expected {
	return &expected{class: c, value: v, line: line, char: char}
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; nothing here\n(a) ; trailing\nb\n",
		at('(', "(", 2, 1),
		at(token.Symbol, "a", 2, 2),
		at(')', ")", 2, 3),
		at(token.Symbol, "b", 3, 1),
		nil,
	)
}

func TestDoubleQuoted(t *testing.T) {
	h := setup(t, "DoubleQuoted")

	h.scan(`(print "a (b) \"c\"" "")`+"\n",
		at('(', "(", 1, 1),
		at(token.Symbol, "print", 1, 2),
		at(token.DoubleQuoted, `"a (b) \"c\""`, 1, 8),
		at(token.DoubleQuoted, `""`, 1, 22),
		at(')', ")", 1, 24),
		nil,
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t, "Numbers")

	h.scan("1 -2 3.25 -4.5 1.2.3 - -x 7a\n",
		at(token.Number, "1", 1, 1),
		at(token.Number, "-2", 1, 3),
		at(token.Number, "3.25", 1, 6),
		at(token.Number, "-4.5", 1, 11),
		at(token.Symbol, "1.2.3", 1, 16),
		at(token.Symbol, "-", 1, 22),
		at(token.Symbol, "-x", 1, 24),
		at(token.Symbol, "7a", 1, 27),
		nil,
	)
}

func TestSplitInput(t *testing.T) {
	h := setup(t, "SplitInput")

	h.scan("(var long",
		at('(', "(", 1, 1),
		at(token.Symbol, "var", 1, 2),
		nil,
	)

	h.scan("name \"two\nlines",
		at(token.Symbol, "longname", 1, 6),
		nil,
	)

	if !h.lexer.Pending() {
		t.Fatal("Expected an unterminated string to be pending")
	}

	h.scan("\")\n",
		at(token.DoubleQuoted, "\"two\nlines\"", 1, 15),
		at(')', ")", 2, 7),
		nil,
	)

	if h.lexer.Pending() {
		t.Fatal("Expected nothing pending")
	}
}

func TestReset(t *testing.T) {
	h := setup(t, "Reset")

	h.scan(`"open`, nil)

	h.lexer.Reset()

	h.scan("x\n",
		at(token.Symbol, "x", 1, 6),
		nil,
	)
}
