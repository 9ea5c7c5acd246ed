// Released under an MIT license. See LICENSE.

// Package loc provides source locations for tokens and symbols.
package loc

import (
	"fmt"
)

// T (loc) is a position in a named source. Lines and characters count from 1.
type T struct {
	Char int
	Line int
	Name string
}

// String returns l as name:line:char.
func (l T) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Name, l.Line, l.Char)
}
