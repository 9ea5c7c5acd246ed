// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

// Package process wraps the platform specific process handling eva needs.
package process

import (
	"os"
)

// Platform names the process support compiled in.
const Platform = "other"

// IgnoreJobSignals does nothing on platforms without job control signals.
func IgnoreJobSignals() func() {
	return func() {}
}

// ID returns the process ID for the current process.
func ID() int {
	return os.Getpid()
}
