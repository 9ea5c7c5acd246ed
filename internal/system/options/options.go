// Released under an MIT license. See LICENSE.

// Package options parses eva's command line.
package options

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	depth       int
	interactive bool
	lenient     bool
	script      string
	usage       = `eva

Usage:
  eva [-l] [-d DEPTH] SCRIPT
  eva [-l] [-d DEPTH] -c COMMAND
  eva [-il] [-d DEPTH]
  eva -h
  eva -v

Arguments:
  SCRIPT  Path to eva script.

Options:
  -c, --command=COMMAND  Evaluate the specified expressions.
  -d, --depth=DEPTH      Limit nested evaluation to DEPTH levels.
  -l, --lenient          Pad or drop arguments instead of failing on arity mismatch.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print eva version.

If eva's stdin is a TTY and eva was invoked with no script or command,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Command returns the text passed with -c.
func Command() string {
	return command
}

// Flags returns configuration keys for the settings given on the command line.
func Flags() map[string]interface{} {
	m := map[string]interface{}{}

	if depth > 0 {
		m["max_depth"] = depth
	}

	if lenient {
		m["arity"] = "lenient"
	}

	return m
}

// Interactive returns true if eva should start a REPL.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse(version string) error {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	return load(opts, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

func load(opts docopt.Opts, tty bool) error {
	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	depth = 0

	if s, _ := opts.String("--depth"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid depth %q", s)
		}

		depth = n
	}

	lenient, _ = opts.Bool("--lenient")

	interactive = script == "" && command == "" && tty

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}
