package decl

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// factories are the default factories a declaration may name.
var factories = map[string]func() any{
	"uuid":  func() any { return uuid.NewString() },
	"now":   func() any { return time.Now().UTC() },
	"zero":  func() any { return 0 },
	"empty": func() any { return "" },
}

// Factories returns the names of the default factories, sorted.
func Factories() (names []string) {
	names = maps.Keys(factories)
	slices.Sort(names)
	return
}
