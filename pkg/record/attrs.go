package record

import (
	"reflect"

	"github.com/dball/characteristic/internal/attrs"
	"github.com/dball/characteristic/internal/compare"
	"github.com/dball/characteristic/internal/models"
	"github.com/dball/characteristic/internal/types"
)

// Attribute declares an attribute of a record kind.
type Attribute = attrs.Spec

// AttrOption configures the default of an attribute.
type AttrOption = attrs.Option

// Args are the named arguments given to a record constructor.
type Args = types.Args

// Outcome is the result of a comparison: NotComparable, False or True.
type Outcome = compare.Outcome

const (
	NotComparable = compare.NotComparable
	False         = compare.False
	True          = compare.True
)

// Attr declares an attribute. It fails if both a default value and a default
// factory are given.
func Attr(name string, opts ...AttrOption) (Attribute, error) {
	return attrs.New(name, opts...)
}

// MustAttr is Attr for package level declarations. It panics on error.
func MustAttr(name string, opts ...AttrOption) Attribute {
	return attrs.MustNew(name, opts...)
}

// DefaultValue gives the attribute a default value. Nil is a value.
func DefaultValue(value any) AttrOption {
	return attrs.DefaultValue(value)
}

// DefaultFactory gives the attribute a default factory, which is called for
// each construction that omits the attribute.
func DefaultFactory(factory func() any) AttrOption {
	return attrs.DefaultFactory(factory)
}

// Tagged returns the names of the attr-tagged fields of the struct type T, in
// field order, as declarations for Define.
func Tagged[T any]() (decls []any) {
	names := models.TaggedNames(reflect.TypeOf((*T)(nil)).Elem())
	decls = make([]any, len(names))
	for i, name := range names {
		decls[i] = name
	}
	return
}
