// Package repr synthesizes the textual representation of record types.
package repr

import (
	"strings"
)

// Projection returns the attribute values of a record, in attribute order.
type Projection func(x any) []any

// Representer renders records of one record type.
type Representer struct {
	name    string
	names   []string
	project Projection
}

// Synthesize returns a representer for the named record type whose
// attributes have the given names.
func Synthesize(name string, names []string, project Projection) *Representer {
	return &Representer{name: name, names: names, project: project}
}

// Represent renders the record as <Name(attr=value, ...)>, attributes in
// declared order, each value rendered by Value.
func (r *Representer) Represent(x any) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(r.name)
	b.WriteString("(")
	for i, v := range r.project(x) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.names[i])
		b.WriteString("=")
		b.WriteString(Value(v))
	}
	b.WriteString(")>")
	return b.String()
}
