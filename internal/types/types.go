// Package types defines the core system types.
package types

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Args are the named arguments given to a record constructor.
type Args map[string]any

// Names returns the argument names in sorted order.
func (args Args) Names() (names []string) {
	names = maps.Keys(args)
	slices.Sort(names)
	return
}
