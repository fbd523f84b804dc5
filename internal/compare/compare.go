// Package compare synthesizes equality, ordering and hashing for record types
// from a projection of records onto the tuple of their attribute values.
package compare

import (
	"fmt"
	"reflect"

	. "github.com/dball/characteristic/internal/types"
)

// Projection returns the attribute values of a record, in attribute order.
type Projection func(x any) []any

// Comparator compares records of a single record type as tuples. Operands of
// any other runtime type are not comparable.
type Comparator struct {
	name    string
	project Projection
}

// Synthesize returns a comparator over the projected tuples of the named
// record type.
func Synthesize(name string, project Projection) *Comparator {
	return &Comparator{name: name, project: project}
}

// gate is true if the operands share exactly the same runtime type.
func (c *Comparator) gate(a, b any) bool {
	return a != nil && b != nil && reflect.TypeOf(a) == reflect.TypeOf(b)
}

func (c *Comparator) incomparable(b any) error {
	return NewError(IncomparableTypes, "type", c.name, "other", fmt.Sprintf("%T", b))
}

// Eq compares the tuples of a and b field by field.
func (c *Comparator) Eq(a, b any) Outcome {
	if !c.gate(a, b) {
		return NotComparable
	}
	return Of(EqualTuples(c.project(a), c.project(b)))
}

// Ne is the negation of Eq.
func (c *Comparator) Ne(a, b any) Outcome {
	return c.Eq(a, b).Not()
}

// Compare orders the tuples of a and b lexicographically, returning -1, 0 or 1.
func (c *Comparator) Compare(a, b any) (diff int, err error) {
	if !c.gate(a, b) {
		err = c.incomparable(b)
		return
	}
	diff, err = CompareTuples(c.project(a), c.project(b))
	return
}

func (c *Comparator) order(a, b any, accept func(diff int) bool) Outcome {
	diff, err := c.Compare(a, b)
	if err != nil {
		return NotComparable
	}
	return Of(accept(diff))
}

// Lt is true if a orders before b.
func (c *Comparator) Lt(a, b any) Outcome {
	return c.order(a, b, func(diff int) bool { return diff < 0 })
}

// Le is true if a orders before or equals b.
func (c *Comparator) Le(a, b any) Outcome {
	return c.order(a, b, func(diff int) bool { return diff <= 0 })
}

// Gt is true if a orders after b.
func (c *Comparator) Gt(a, b any) Outcome {
	return c.order(a, b, func(diff int) bool { return diff > 0 })
}

// Ge is true if a orders after or equals b.
func (c *Comparator) Ge(a, b any) Outcome {
	return c.order(a, b, func(diff int) bool { return diff >= 0 })
}

// Hash hashes the tuple of a. Records that are Eq have the same hash.
func (c *Comparator) Hash(a any) (uint64, error) {
	return HashTuple(c.project(a))
}
