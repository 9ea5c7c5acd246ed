// Released under an MIT license. See LICENSE.

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/michaelmacinnis/eva/internal/system/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, flags map[string]interface{}) (*bytes.Buffer, func(string) (int, string)) {
	t.Helper()

	cfg, err := config.Load("", flags)
	require.NoError(t, err)

	var out bytes.Buffer

	e := interpreter(cfg, slog.New(slog.DiscardHandler), &out)

	return &out, func(text string) (int, string) {
		var errs bytes.Buffer

		code := source(e, "test", text, &errs)

		return code, errs.String()
	}
}

func TestSourcePrints(t *testing.T) {
	out, eval := setup(t, nil)

	code, errs := eval(`(def fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))) (print (fib 10))`)
	assert.Equal(t, 0, code)
	assert.Empty(t, errs)
	assert.Equal(t, "55\n", out.String())
}

func TestSourceFails(t *testing.T) {
	_, eval := setup(t, nil)

	code, errs := eval("(print nope)")
	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "eva: test: ")
	assert.Contains(t, errs, "nope")
}

func TestLenientArity(t *testing.T) {
	out, eval := setup(t, map[string]interface{}{"arity": "lenient"})

	code, _ := eval("(def f (a b) b) (print (f 1))")
	assert.Equal(t, 0, code)
	assert.Equal(t, "null\n", out.String())
}

func TestMaxDepth(t *testing.T) {
	_, eval := setup(t, map[string]interface{}{"max_depth": 50})

	code, errs := eval("(def loop (n) (loop (+ n 1))) (loop 0)")
	assert.Equal(t, 1, code)
	assert.Contains(t, errs, "StackLimitExceeded")
}
