// Released under an MIT license. See LICENSE.

package commands

import (
	"io"
	"strings"

	"github.com/michaelmacinnis/eva/internal/common"
	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
	"github.com/michaelmacinnis/eva/internal/common/type/builtin"
	"github.com/michaelmacinnis/eva/internal/common/type/list"
	"github.com/michaelmacinnis/eva/internal/common/type/pair"
)

// printer returns the print primitive. It writes the display form of its
// arguments, separated by spaces and followed by a newline, and returns null.
func printer(w io.Writer) builtin.Function {
	return func(args cell.I) cell.I {
		elements := list.Elements(args)
		s := make([]string, len(elements))

		for i, c := range elements {
			s[i] = common.String(c)
		}

		if _, err := io.WriteString(w, strings.Join(s, " ")+"\n"); err != nil {
			panic(err)
		}

		return pair.Null
	}
}
