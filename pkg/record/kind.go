// Package record composes record kinds: go types given structural equality,
// ordering, hashing, representation, a validating constructor and enforced
// immutability by a list of declared attributes.
package record

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/dball/characteristic/internal/attrs"
	"github.com/dball/characteristic/internal/compare"
	"github.com/dball/characteristic/internal/guard"
	"github.com/dball/characteristic/internal/index"
	"github.com/dball/characteristic/internal/initializer"
	"github.com/dball/characteristic/internal/models"
	"github.com/dball/characteristic/internal/repr"
	"github.com/dball/characteristic/internal/types"
)

// Hook is called by the constructor after the attributes are written, with
// the arguments it did not consume. The record's attributes are readable and
// its other fields writable with Set.
type Hook[T any] func(r *Record[T], args []any, kw Args) error

// Config configures the composition of a record kind. The zero value composes
// an immutable kind with a constructor.
type Config[T any] struct {
	// Name is the kind's name. It defaults to the go type's name, and is
	// required for unnamed types such as map[string]any.
	Name string
	// Defaults maps attribute names to default values. It may not be used
	// with attributes that declare their own defaults.
	Defaults map[string]any
	// NoInit omits the constructor. Records are made with Wrap instead.
	NoInit bool
	// Mutable allows declared attributes to be set after construction.
	Mutable bool
	// Hook is called by the constructor with the unconsumed arguments.
	Hook Hook[T]
	// Degree is the btree degree of the kind's sorted sets.
	Degree int
	// Logger logs composition. It defaults to a no-op logger.
	Logger *zap.Logger
}

var defaultConfig = struct {
	Degree int
}{
	Degree: index.DefaultDegree,
}

// Kind is a record kind: a go type composed with the behaviors synthesized
// from its attributes.
type Kind[T any] struct {
	name        string
	specs       []attrs.Spec
	model       models.Model
	comparator  *compare.Comparator
	representer *repr.Representer
	guard       *guard.Guard
	initializer *initializer.Initializer
	hook        Hook[T]
	degree      int
}

// Define composes a record kind for the go type T, which must be a struct
// whose exported fields are bound to the attributes, or a map with string
// keys. Each declaration is an attribute name, which is required, or an
// Attribute. Any error prevents the kind from being defined.
func Define[T any](decls []any, config Config[T]) (kind *Kind[T], err error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	degree := config.Degree
	if degree == 0 {
		degree = defaultConfig.Degree
	}
	if len(config.Defaults) > 0 {
		for _, decl := range decls {
			var spec attrs.Spec
			switch d := decl.(type) {
			case attrs.Spec:
				spec = d
			case *attrs.Spec:
				if d == nil {
					continue
				}
				spec = *d
			default:
				continue
			}
			if spec.HasDefault() {
				name := config.Name
				if name == "" {
					name = typ.Name()
				}
				err = types.NewError(types.ConflictingDefaultsDeclaration, "type", name, "attr", spec.Name())
				return
			}
		}
	}
	specs, err := attrs.Normalize(decls...)
	if err != nil {
		return
	}
	specs = attrs.WithDefaults(specs, config.Defaults)
	model, err := models.Analyze(typ, config.Name, attrs.Names(specs))
	if err != nil {
		return
	}
	project := func(x any) []any { return x.(*Record[T]).Tuple() }
	kind = &Kind[T]{
		name:        model.Name,
		specs:       specs,
		model:       model,
		comparator:  compare.Synthesize(model.Name, project),
		representer: repr.Synthesize(model.Name, attrs.Names(specs), project),
		hook:        config.Hook,
		degree:      degree,
	}
	write := models.Writer(model.Write)
	if !config.Mutable {
		kind.guard = guard.Install(model, write)
		write = kind.guard.Raw()
	}
	if !config.NoInit {
		kind.initializer = initializer.New(model.Name, specs, write)
	}
	logger.Debug("defined record kind",
		zap.String("kind", kind.name),
		zap.Stringer("type", typ),
		zap.Strings("attrs", attrs.Names(specs)),
		zap.Bool("immutable", kind.guard != nil),
		zap.Bool("init", kind.initializer != nil))
	return
}

// MustDefine is Define for package level declarations. It panics on error.
func MustDefine[T any](decls []any, config Config[T]) *Kind[T] {
	kind, err := Define[T](decls, config)
	if err != nil {
		panic(err)
	}
	return kind
}

// Name returns the kind's name.
func (kind *Kind[T]) Name() string {
	return kind.name
}

// Attributes returns the kind's attributes in declared order.
func (kind *Kind[T]) Attributes() []Attribute {
	return append([]Attribute(nil), kind.specs...)
}

// Immutable indicates whether the kind's attributes are protected after
// construction.
func (kind *Kind[T]) Immutable() bool {
	return kind.guard != nil
}

// New constructs a record from the named arguments. Each attribute takes the
// argument of its name, else its default; attributes with neither fail the
// construction. Arguments left over go to the kind's hook, and are an error
// if it has none.
func (kind *Kind[T]) New(kw Args, args ...any) (r *Record[T], err error) {
	if kind.initializer == nil {
		err = types.NewError(NoInitializer, "type", kind.name)
		return
	}
	record := &Record[T]{kind: kind, value: kind.model.Alloc()}
	var hook initializer.Hook
	if kind.hook != nil {
		hook = func(args []any, kw map[string]any) error {
			return kind.hook(record, args, Args(kw))
		}
	}
	err = kind.initializer.Init(record.value, args, kw, hook)
	if err != nil {
		return
	}
	r = record
	return
}

// Must panics if err is not nil, and otherwise returns r.
func Must[T any](r *Record[T], err error) *Record[T] {
	if err != nil {
		panic(err)
	}
	return r
}

// Wrap makes a record of a copy of the given value, for kinds composed
// without a constructor.
func (kind *Kind[T]) Wrap(v T) (r *Record[T], err error) {
	if kind.initializer != nil {
		err = types.NewError(HasInitializer, "type", kind.name)
		return
	}
	r = &Record[T]{kind: kind, value: kind.model.Copy(reflect.ValueOf(&v).Elem())}
	return
}
