// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/rational"
	"github.com/michaelmacinnis/eva/internal/common/type/boolean"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/michaelmacinnis/eva/internal/common/validate"
)

func eq(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 2, 2)

	if !v[0].Equal(v[1]) {
		return boolean.False
	}

	for rest != pair.Null {
		if !v[0].Equal(pair.Car(rest)) {
			return boolean.False
		}

		rest = pair.Cdr(rest)
	}

	return boolean.True
}

func ge(args cell.I) cell.I {
	return boolean.Bool(compare(args) >= 0)
}

func gt(args cell.I) cell.I {
	return boolean.Bool(compare(args) > 0)
}

func le(args cell.I) cell.I {
	return boolean.Bool(compare(args) <= 0)
}

func lt(args cell.I) cell.I {
	return boolean.Bool(compare(args) < 0)
}

// compare orders two numbers or two strings.
func compare(args cell.I) int {
	v := validate.Fixed(args, 2, 2)

	a, b := v[0], v[1]

	switch {
	case rational.Is(a) && rational.Is(b):
		return rational.Number(a).Cmp(rational.Number(b))
	case str.Is(a) && str.Is(b):
		return strings.Compare(str.To(a).String(), str.To(b).String())
	}

	panic("cannot compare " + a.Name() + " with " + b.Name())
}
