// Released under an MIT license. See LICENSE.

// Package hash provides the name to value map held by each frame.
package hash

import (
	"sort"

	"github.com/michaelmacinnis/eva/internal/common/interface/cell"
)

// T (hash) maps names to values. It is not safe for concurrent use.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates an empty hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Get returns the value for the name k and whether k is present.
func (h *hash) Get(k string) (cell.I, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Keys returns the names in the hash h, sorted.
func (h *hash) Keys() []string {
	if h == nil {
		return nil
	}

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with v, replacing any previous value.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = v
}
