// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

// Package process wraps the platform specific process handling eva needs.
package process

import (
	"os/signal"

	"golang.org/x/sys/unix"
)

// Platform names the process support compiled in.
const Platform = "unix"

// IgnoreJobSignals stops SIGQUIT and SIGTSTP from killing or suspending
// eva while the REPL owns the terminal. The returned function restores
// the default behavior.
func IgnoreJobSignals() func() {
	signal.Ignore(unix.SIGQUIT, unix.SIGTSTP)

	return func() {
		signal.Reset(unix.SIGQUIT, unix.SIGTSTP)
	}
}

// ID returns the process ID for the current process.
func ID() int {
	return unix.Getpid()
}
