// Released under an MIT license. See LICENSE.

package commands

import (
	"bytes"
	"testing"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/type/boolean"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/stretchr/testify/assert"
)

func call(name string, args ...cell.I) cell.I {
	return Functions(&bytes.Buffer{})[name](list.New(args...))
}

func n(s string) cell.I {
	return num.New(s)
}

func TestArithmetic(t *testing.T) {
	for _, c := range []struct {
		name string
		args []cell.I
		want string
	}{
		{"+", nil, "0"},
		{"+", []cell.I{n("1"), n("2.5")}, "3.5"},
		{"+", []cell.I{str.New("a"), n("1"), boolean.True}, "a1true"},
		{"-", []cell.I{n("3")}, "-3"},
		{"-", []cell.I{n("3"), n("5")}, "-2"},
		{"*", []cell.I{n("1.5"), n("4")}, "6"},
		{"/", []cell.I{n("1"), n("8")}, "0.125"},
		{"/", []cell.I{n("9"), n("3"), n("3")}, "1"},
	} {
		assert.Equal(t, c.want, common.String(call(c.name, c.args...)), c.name)
	}
}

func TestArgumentsUnchanged(t *testing.T) {
	a := n("2")

	call("-", a)
	call("*", a, n("5"))

	assert.Equal(t, "2", common.String(a))
}

func TestRelational(t *testing.T) {
	assert.Equal(t, boolean.True, call("<", n("1"), n("2")))
	assert.Equal(t, boolean.False, call(">", n("1"), n("2")))
	assert.Equal(t, boolean.True, call("<=", str.New("a"), str.New("a")))
	assert.Equal(t, boolean.True, call(">=", str.New("b"), str.New("a")))
	assert.Equal(t, boolean.True, call("=", n("1"), n("1.0"), n("1")))
	assert.Equal(t, boolean.False, call("=", str.New("1"), n("1")))
	assert.Equal(t, boolean.True, call("=", pair.Null, pair.Null))
}

func TestMisuse(t *testing.T) {
	assert.PanicsWithValue(t, "division by zero", func() {
		call("/", n("1"), n("0"))
	})

	assert.PanicsWithValue(t, "string cannot be used in a numeric context", func() {
		call("*", str.New("x"), n("2"))
	})

	assert.PanicsWithValue(t, "expected 1 argument, passed 0", func() {
		call("-")
	})

	assert.PanicsWithValue(t, "expected 2 arguments, passed 3", func() {
		call("<", n("1"), n("2"), n("3"))
	})

	assert.PanicsWithValue(t, "cannot compare number with string", func() {
		call("<", n("1"), str.New("2"))
	})

	assert.Panics(t, func() {
		call("=", n("1"))
	})
}

func TestPrint(t *testing.T) {
	var b bytes.Buffer

	v := Functions(&b)["print"](list.New(str.New("x ="), n("0.5"), pair.Null, boolean.False))

	assert.Equal(t, pair.Null, v)
	assert.Equal(t, "x = 0.5 null false\n", b.String())
}
