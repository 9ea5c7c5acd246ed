// Released under an MIT license. See LICENSE.

/*
Eva is a small Lisp. Programs are made of numbers, strings, symbols and
parenthesized forms:

	(var x 10)
	(def square (n) (* n n))
	(print (square x))
	(switch ((< x 0) "negative") ((= x 0) "zero") (else "positive"))

Run a script with `eva script.eva`, evaluate expressions with
`eva -c '(print VERSION)'`, or start a REPL by running eva with no
arguments from a terminal.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/michaelmacinnis/eva/internal/engine"
	"github.com/michaelmacinnis/eva/internal/engine/boot"
	"github.com/michaelmacinnis/eva/internal/engine/eval"
	"github.com/michaelmacinnis/eva/internal/system/config"
	"github.com/michaelmacinnis/eva/internal/system/options"
	"github.com/michaelmacinnis/eva/internal/ui"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	err := options.Parse(boot.Version)
	if err != nil {
		fmt.Fprintln(stderr, "eva:", err)

		return 2 //nolint:gomnd
	}

	cfg, err := config.Load(config.Find(), options.Flags())
	if err != nil {
		fmt.Fprintln(stderr, "eva:", err)

		return 2 //nolint:gomnd
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	e := interpreter(cfg, logger, stdout)

	if options.Interactive() {
		u := ui.New(e, stdout, stderr)
		u.History = cfg.History
		u.Logger = logger
		u.Prompt = cfg.Prompt

		err = u.Run()
		if err != nil {
			fmt.Fprintln(stderr, "eva:", err)

			return 1
		}

		return 0
	}

	if c := options.Command(); c != "" {
		return source(e, "command", c, stderr)
	}

	label := "stdin"

	r := stdin
	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(stderr, "eva:", err)

			return 1
		}
		defer f.Close()

		label, r = path, f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(stderr, "eva: %s: %v\n", label, err)

		return 1
	}

	return source(e, label, string(text), stderr)
}

func interpreter(cfg *config.T, logger *slog.Logger, stdout io.Writer) *engine.T {
	arity := eval.Strict
	if cfg.Lenient() {
		arity = eval.Lenient
	}

	return engine.New(
		engine.WithArity(arity),
		engine.WithLogger(logger),
		engine.WithMaxDepth(cfg.MaxDepth),
		engine.WithOutput(stdout),
	)
}

func source(e *engine.T, label, text string, stderr io.Writer) int {
	_, err := e.Run(label, text)
	if err != nil {
		fmt.Fprintf(stderr, "eva: %s: %v\n", label, err)

		return 1
	}

	return 0
}
