// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"testing"

	"github.com/michaelmacinnis/eva/internal/engine"
	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (*T, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errs bytes.Buffer

	e := engine.New(engine.WithOutput(&out))

	return New(e, &out, &errs), &out, &errs
}

func TestLineEvaluates(t *testing.T) {
	u, out, errs := setup(t)

	assert.False(t, u.Line("(var a 2) (+ a 3)"))
	assert.Equal(t, "2\n5\n", out.String())
	assert.Empty(t, errs.String())
}

func TestLineContinues(t *testing.T) {
	u, out, _ := setup(t)

	assert.True(t, u.Line("(def sq (x)"))
	assert.True(t, u.Line("  (* x"))
	assert.Empty(t, out.String())
	assert.False(t, u.Line("  x))"))
	assert.Equal(t, "<lambda (x)>\n", out.String())

	assert.False(t, u.Line("(sq 7)"))
	assert.Equal(t, "<lambda (x)>\n49\n", out.String())
}

func TestLineReportsErrors(t *testing.T) {
	u, out, errs := setup(t)

	assert.False(t, u.Line("missing"))
	assert.Contains(t, errs.String(), "missing")

	errs.Reset()

	assert.False(t, u.Line(")"))
	assert.Contains(t, errs.String(), "unexpected ')'")

	assert.False(t, u.Line("(+ 1 1)"))
	assert.Equal(t, "2\n", out.String())
}

func TestComplete(t *testing.T) {
	u, _, _ := setup(t)

	u.Line("(var value 1)")

	head, completions, tail := u.Complete("(print VE", 9)
	assert.Equal(t, "(print ", head)
	assert.Equal(t, []string{"VERSION"}, completions)
	assert.Equal(t, "", tail)

	head, completions, tail = u.Complete("(+ va 1)", 5)
	assert.Equal(t, "(+ ", head)
	assert.Equal(t, []string{"value"}, completions)
	assert.Equal(t, " 1)", tail)
}

func TestContinuation(t *testing.T) {
	u, _, _ := setup(t)

	assert.Equal(t, ". ", u.Continuation())

	u.Prompt = "eva> "
	assert.Equal(t, ".... ", u.Continuation())
}
