// Package initializer synthesizes the constructors of record types.
package initializer

import (
	"reflect"

	"github.com/dball/characteristic/internal/attrs"
	"github.com/dball/characteristic/internal/models"
	. "github.com/dball/characteristic/internal/types"
)

// Hook receives the arguments the initializer did not consume.
type Hook func(args []any, kw map[string]any) error

// Initializer populates new record values from named arguments.
type Initializer struct {
	typeName string
	specs    []attrs.Spec
	write    models.Writer
}

// New returns an initializer for the record type that writes through the
// given primitive, which must not be the guarded one.
func New(typeName string, specs []attrs.Spec, write models.Writer) *Initializer {
	return &Initializer{typeName: typeName, specs: specs, write: write}
}

// Init writes every attribute of the target, from the named argument of the
// same name if given, else from the attribute's default. The caller's kw is
// not modified. Unconsumed arguments go to the hook; without a hook they are
// an error.
func (in *Initializer) Init(target reflect.Value, args []any, kw map[string]any, hook Hook) (err error) {
	rest := make(map[string]any, len(kw))
	for k, v := range kw {
		rest[k] = v
	}
	for _, spec := range in.specs {
		name := spec.Name()
		value, ok := rest[name]
		if ok {
			delete(rest, name)
		} else {
			value, ok = spec.Default()
			if !ok {
				err = NewError(MissingRequiredAttribute, "attr", name, "type", in.typeName)
				return
			}
		}
		err = in.write(target, name, value)
		if err != nil {
			return
		}
	}
	if hook != nil {
		return hook(args, rest)
	}
	if len(args) > 0 || len(rest) > 0 {
		err = NewError(UnexpectedArguments, "type", in.typeName, "args", args, "kw", Args(rest).Names())
	}
	return
}
