// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/fault"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/type/builtin"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/num"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/engine/eval"
	"github.com/michaelmacinnis/eva/internal/reader"
	"github.com/michaelmacinnis/eva/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer

	e := New(WithOutput(&out), WithLogger(testutil.NewTestLogger(t)))

	v, err := e.Run("test", `
		(def greet (who) (print "hello," who))
		(greet "eva")
		(+ 40 2)
	`)
	require.NoError(t, err)
	assert.Equal(t, "42", common.String(v))
	assert.Equal(t, "hello, eva\n", out.String())
}

func TestRunEmpty(t *testing.T) {
	v, err := New().Run("test", "; nothing")
	require.NoError(t, err)
	assert.Equal(t, pair.Null, v)
}

func TestRunSyntaxError(t *testing.T) {
	_, err := New().Run("test", "(print 1))")

	var e *reader.Error
	assert.True(t, errors.As(err, &e))

	_, err = New().Run("test", "(print 1")
	assert.ErrorIs(t, err, reader.ErrIncomplete)
}

func TestRunBlockScope(t *testing.T) {
	e := New()

	_, err := e.Run("test", "(begin (var inner 1)) inner")
	require.ErrorIs(t, err, fault.Undefined("inner"))

	v, err := e.Run("test", "(var outer 1) (begin (var outer 2)) outer")
	require.NoError(t, err)
	assert.Equal(t, "1", common.String(v))
}

func TestDefine(t *testing.T) {
	e := New(WithOutput(&bytes.Buffer{}))

	e.Define("answer", num.Int(42))
	e.Define("inc", builtin.New("inc", func(args cell.I) cell.I {
		return num.Int(list.Length(args) + 41)
	}))

	v, err := e.Run("test", "(= answer (inc 1))")
	require.NoError(t, err)
	assert.Equal(t, "true", common.String(v))
}

func TestEvaluate(t *testing.T) {
	e := New()

	cs, err := reader.Read("test", "(var x 3) (* x x)")
	require.NoError(t, err)

	v, err := e.Sequence(cs)
	require.NoError(t, err)
	assert.Equal(t, "9", common.String(v))

	v, err = e.Evaluate(cs[1])
	require.NoError(t, err)
	assert.Equal(t, "9", common.String(v))
}

func TestOptions(t *testing.T) {
	lenient := New(WithArity(eval.Lenient))

	v, err := lenient.Run("test", "((lambda (a b) b) 1)")
	require.NoError(t, err)
	assert.Equal(t, pair.Null, v)

	_, err = New().Run("test", "((lambda (a b) b) 1)")
	assert.ErrorIs(t, err, fault.ErrArityMismatch)

	_, err = New(WithMaxDepth(10)).Run("test", "(def f (n) (f n)) (f 1)")
	assert.ErrorIs(t, err, fault.ErrStackLimitExceeded)
}

func TestIsolation(t *testing.T) {
	a, b := New(), New()

	_, err := a.Run("test", "(var only-a 1)")
	require.NoError(t, err)

	_, err = b.Run("test", "(var x 1) (set true false)")
	require.NoError(t, err)

	_, err = b.Run("test", "only-a")
	assert.Error(t, err)

	v, err := a.Run("test", "true")
	require.NoError(t, err)
	assert.Equal(t, "true", common.String(v))
}

func TestParallelInterpreters(t *testing.T) {
	var wg sync.WaitGroup

	results := make([]string, 8)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			var out bytes.Buffer

			e := New(WithOutput(&out))
			e.Define("seed", num.Int(i))

			_, err := e.Run("test", "(def sq (n) (* n n)) (print (sq seed))")
			if err != nil {
				results[i] = err.Error()

				return
			}

			results[i] = out.String()
		}(i)
	}

	wg.Wait()

	for i, r := range results {
		assert.Equal(t, common.String(num.Int(i*i))+"\n", r)
	}
}
