// Package guard enforces the immutability of a record type's attributes once
// its values are constructed.
package guard

import (
	"reflect"

	"github.com/dball/characteristic/internal/models"
	. "github.com/dball/characteristic/internal/types"
)

// Guard replaces the write path of a record type. Writes that reach a field
// bound to a declared attribute are refused, by whatever name; writes to
// other fields pass through.
type Guard struct {
	model models.Model
	raw   models.Writer
}

// Install captures the record type's raw write primitive and returns the guard
// that replaces it. Only holders of the guard can reach the raw primitive.
func Install(model models.Model, raw models.Writer) *Guard {
	return &Guard{model: model, raw: raw}
}

// Write is the guarded write primitive.
func (g *Guard) Write(target reflect.Value, name string, value any) (err error) {
	if attr, ok := g.model.Bound(name); ok {
		err = NewError(ImmutabilityViolation, "attr", attr, "type", g.model.Name, "name", name)
		return
	}
	return g.raw(target, name, value)
}

// Raw returns the write primitive captured before the guard was installed,
// for use by the record type's initializer.
func (g *Guard) Raw() models.Writer {
	return g.raw
}

// Protects indicates whether writes by the name are refused.
func (g *Guard) Protects(name string) (ok bool) {
	_, ok = g.model.Bound(name)
	return
}
