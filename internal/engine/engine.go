// Released under an MIT license. See LICENSE.

// Package engine provides an interpreter for parsed eva code.
package engine

import (
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
	"github.com/michaelmacinnis/eva/internal/engine/boot"
	"github.com/michaelmacinnis/eva/internal/engine/eval"
	"github.com/michaelmacinnis/eva/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating eva code.
// Each T has its own global frame.
type T struct {
	eval   *eval.T
	logger *slog.Logger
}

type config struct {
	arity  eval.Arity
	depth  int
	logger *slog.Logger
	output io.Writer
}

// Option configures an engine.
type Option func(*config)

// WithArity sets the policy for calling closures with the wrong number of arguments.
func WithArity(a eval.Arity) Option {
	return func(c *config) {
		c.arity = a
	}
}

// WithLogger sets the logger for evaluation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxDepth bounds nested evaluation.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.depth = n
	}
}

// WithOutput sets where print writes.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// New creates a new T.
func New(options ...Option) *T {
	c := &config{
		arity:  eval.Strict,
		depth:  eval.DefaultMaxDepth,
		logger: slog.New(slog.DiscardHandler),
		output: os.Stdout,
	}

	for _, o := range options {
		o(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	g := boot.Global(c.output)

	return &T{
		eval: eval.New(g,
			eval.WithArity(c.arity),
			eval.WithLogger(c.logger),
			eval.WithMaxDepth(c.depth),
		),
		logger: c.logger,
	}
}

// Define binds k to v in the global frame.
func (e *T) Define(k string, v cell.I) {
	e.eval.Global().Define(k, v)
}

// Evaluate evaluates the top-level expression c in the global frame. The
// top level is itself the program's block, so a begin written there still
// gets a frame of its own.
func (e *T) Evaluate(c cell.I) (cell.I, error) {
	return e.eval.Eval(c, e.eval.Global())
}

// Global returns the engine's global frame.
func (e *T) Global() scope.I {
	return e.eval.Global()
}

// Run reads and evaluates every expression in source and returns the
// value of the last one. Label names the source in error messages.
func (e *T) Run(label, source string) (cell.I, error) {
	cells, err := reader.Read(label, source)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("run", "source", label, "expressions", len(cells))

	return e.Sequence(cells)
}

// Sequence evaluates each of cells in order and returns the last value.
func (e *T) Sequence(cells []cell.I) (cell.I, error) {
	v := pair.Null

	for _, c := range cells {
		r, err := e.Evaluate(c)
		if err != nil {
			return nil, err
		}

		v = r
	}

	return v, nil
}
