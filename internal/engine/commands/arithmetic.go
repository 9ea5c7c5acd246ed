// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"
	"strings"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/rational"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/str"
	"github.com/michaelmacinnis/eva/internal/common/validate"
)

type operator func(z, x, y *big.Rat) *big.Rat

// add sums its arguments. If any argument is a string the display text of
// every argument is concatenated instead.
func add(args cell.I) cell.I {
	v := list.Elements(args)

	for _, c := range v {
		if str.Is(c) {
			return concat(v)
		}
	}

	return num.Rat(fold(new(big.Rat), v, (*big.Rat).Add))
}

func concat(v []cell.I) cell.I {
	var b strings.Builder

	for _, c := range v {
		b.WriteString(common.String(c))
	}

	return str.New(b.String())
}

func div(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 1, 1)

	divisors := list.Elements(rest)
	for _, d := range divisors {
		if rational.Number(d).Sign() == 0 {
			panic("division by zero")
		}
	}

	return num.Rat(fold(first(v[0]), divisors, (*big.Rat).Quo))
}

func mul(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 1, 1)

	return num.Rat(fold(first(v[0]), list.Elements(rest), (*big.Rat).Mul))
}

// sub subtracts every argument after the first from the first.
// With a single argument it negates it.
func sub(args cell.I) cell.I {
	v, rest := validate.Variadic(args, 1, 1)

	z := first(v[0])

	operands := list.Elements(rest)
	if len(operands) == 0 {
		return num.Rat(z.Neg(z))
	}

	return num.Rat(fold(z, operands, (*big.Rat).Sub))
}

// first returns a copy of c's value for use as an accumulator.
func first(c cell.I) *big.Rat {
	return new(big.Rat).Set(rational.Number(c))
}

// fold combines the accumulator z with each of v in turn.
func fold(z *big.Rat, v []cell.I, op operator) *big.Rat {
	for _, c := range v {
		op(z, z, rational.Number(c))
	}

	return z
}
