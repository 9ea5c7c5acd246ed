// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for eva.
package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/interface/scope"
	"github.com/michaelmacinnis/eva/internal/reader"
	"github.com/michaelmacinnis/eva/internal/system/history"
	"github.com/michaelmacinnis/eva/internal/system/process"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
	Global() scope.I
}

// T (ui) reads expressions a line at a time and evaluates them as they complete.
type T struct {
	Errors  io.Writer
	History bool
	Logger  *slog.Logger
	Output  io.Writer
	Prompt  string

	e Evaluator
	r *reader.T
}

type ui = T

// New creates a REPL that sends expressions to e.
func New(e Evaluator, output, errs io.Writer) *T {
	return &T{
		Errors:  errs,
		History: true,
		Logger:  slog.New(slog.DiscardHandler),
		Output:  output,
		Prompt:  "> ",
		e:       e,
		r:       reader.New("eva"),
	}
}

// Complete returns the global names that start with the word ending at pos.
func (u *ui) Complete(line string, pos int) (head string, completions []string, tail string) {
	head, tail = line[:pos], line[pos:]

	start := strings.LastIndexAny(head, " \t()\"") + 1
	prefix := head[start:]

	for _, n := range u.e.Global().Names() {
		if strings.HasPrefix(n, prefix) {
			completions = append(completions, n)
		}
	}

	sort.Strings(completions)

	return head[:start], completions, tail
}

// Continuation returns the prompt shown while an expression is still open.
func (u *ui) Continuation() string {
	n := len(u.Prompt)
	if n < 2 { //nolint:gomnd
		return u.Prompt
	}

	return strings.Repeat(".", n-1) + " "
}

// Line feeds a line of input to the reader and evaluates every expression
// it completes. It returns true if an expression is still open.
func (u *ui) Line(line string) bool {
	cells, err := u.r.Scan(line + "\n")

	for _, c := range cells {
		v, err := u.e.Evaluate(c)
		if err != nil {
			fmt.Fprintln(u.Errors, err)

			continue
		}

		fmt.Fprintln(u.Output, common.String(v))
	}

	if err != nil {
		fmt.Fprintln(u.Errors, err)
	}

	return u.r.Pending()
}

// Run launches the REPL. It returns when input ends.
func (u *ui) Run() error {
	restore := process.IgnoreJobSignals()
	defer restore()

	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(u.Complete)

	if u.History {
		err := history.Load(cli.ReadHistory)
		if err != nil {
			u.Logger.Warn("history not loaded", "error", err)
		}

		defer func() {
			err := history.Save(cli.WriteHistory)
			if err != nil {
				u.Logger.Warn("history not saved", "error", err)
			}
		}()
	}

	prompt := u.Prompt

	for {
		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			u.r.Reset()

			prompt = u.Prompt

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(u.Output)

			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		prompt = u.Prompt
		if u.Line(line) {
			prompt = u.Continuation()
		}
	}
}
