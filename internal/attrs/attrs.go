package attrs

import (
	"fmt"

	. "github.com/dball/characteristic/internal/types"
)

// Normalize converts a list of attribute names and specs into a list of specs,
// in the same order. Names become required specs.
func Normalize(decls ...any) (specs []Spec, err error) {
	specs = make([]Spec, 0, len(decls))
	for i, decl := range decls {
		var spec Spec
		switch d := decl.(type) {
		case string:
			spec, err = New(d)
			if err != nil {
				specs = nil
				return
			}
		case Spec:
			spec = d
		case *Spec:
			if d == nil {
				specs = nil
				err = NewError("attrs.invalidDeclaration", "index", i, "type", "nil")
				return
			}
			spec = *d
		default:
			specs = nil
			err = NewError("attrs.invalidDeclaration", "index", i, "type", fmt.Sprintf("%T", decl))
			return
		}
		specs = append(specs, spec)
	}
	return
}

// WithDefaults returns specs where each plain required spec named in defaults
// falls back to the mapped value. A key's presence is what counts, so falsy
// values such as 0 or "" are honored.
func WithDefaults(specs []Spec, defaults map[string]any) (out []Spec) {
	out = make([]Spec, len(specs))
	for i, spec := range specs {
		value, ok := defaults[spec.name]
		if ok && spec.strategy == Required {
			spec.strategy = Value
			spec.value = value
		}
		out[i] = spec
	}
	return
}

// Names returns the attribute names in order.
func Names(specs []Spec) (names []string) {
	names = make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.name
	}
	return
}
