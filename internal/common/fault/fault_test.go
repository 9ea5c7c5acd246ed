// Released under an MIT license. See LICENSE.

package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Undefined("x"))

	assert.ErrorIs(t, err, ErrUndefinedVariable)
	assert.ErrorIs(t, err, Undefined("x"))
	assert.NotErrorIs(t, err, Undefined("y"))
	assert.NotErrorIs(t, err, ErrArityMismatch)
	assert.False(t, errors.Is(Undefined("x"), errors.New("x")))
}

func TestMessages(t *testing.T) {
	for _, c := range []struct {
		err  error
		want string
	}{
		{Arity("f", 2, 1), `ArityMismatch("f"): expected 2 arguments, passed 1`},
		{Arity("g", 1, 0), `ArityMismatch("g"): expected 1 argument, passed 0`},
		{Depth(10), "StackLimitExceeded: evaluation nested deeper than 10 levels"},
		{Primitive("/", "division by zero"), `PrimitiveFailure("/"): division by zero`},
		{Uncallable("1", "number"), `NotCallable("1"): number is not a function`},
		{Unimplemented("(class A)"), `UnimplementedExpression("(class A)")`},
	} {
		assert.Equal(t, c.want, c.err.Error())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "MalformedExpression", MalformedExpression.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
