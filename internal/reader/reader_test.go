// Released under an MIT license. See LICENSE.

package reader

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/eva/internal/common/interface/literal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	cs, err := Read("test", "(var a 1)\n; comment\n(print a \"b\")")
	require.NoError(t, err)
	require.Len(t, cs, 2)

	assert.Equal(t, "(var a 1)", literal.String(cs[0]))
	assert.Equal(t, `(print a "b")`, literal.String(cs[1]))
}

func TestReadEmpty(t *testing.T) {
	cs, err := Read("test", "  ; only a comment")
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestReadIncomplete(t *testing.T) {
	_, err := Read("test", "(print (+ 1 2)")
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Read("test", `(print "open`)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestReadError(t *testing.T) {
	_, err := Read("file.eva", "(a)\n  )")

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "file.eva:2:3: unexpected ')'", e.Error())
}

func TestScan(t *testing.T) {
	r := New("repl")

	cs, err := r.Scan("(def f (x)\n")
	require.NoError(t, err)
	assert.Empty(t, cs)
	assert.True(t, r.Pending())

	cs, err = r.Scan("  x) (f 1) (f\n")
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "(def f (x) x)", literal.String(cs[0]))
	assert.Equal(t, "(f 1)", literal.String(cs[1]))
	assert.True(t, r.Pending())

	r.Reset()
	assert.False(t, r.Pending())

	cs, err = r.Scan("2\n")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "2", literal.String(cs[0]))
}

func TestScanRecovers(t *testing.T) {
	r := New("repl")

	_, err := r.Scan(") (a\n")
	require.Error(t, err)
	assert.False(t, r.Pending())

	cs, err := r.Scan("(b)\n")
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "(b)", literal.String(cs[0]))
}
