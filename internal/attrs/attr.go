// Package attrs models the attributes declared for a record type.
package attrs

import (
	. "github.com/dball/characteristic/internal/types"
)

// Strategy is how an attribute obtains its value when construction omits it.
type Strategy int8

const (
	// Required attributes must be given at construction.
	Required Strategy = iota
	// Value attributes fall back to a fixed default value.
	Value
	// Factory attributes fall back to the result of calling a factory.
	Factory
)

func (s Strategy) String() string {
	switch s {
	case Required:
		return "required"
	case Value:
		return "value"
	case Factory:
		return "factory"
	}
	return "unknown"
}

// Spec is the declaration of one attribute. Specs are immutable once built.
type Spec struct {
	name     string
	strategy Strategy
	value    any
	factory  func() any
}

// Option configures the default strategy of a spec under construction.
type Option func(spec *Spec) error

// DefaultValue makes the attribute optional, falling back to the given value.
// A nil value is a legitimate default.
func DefaultValue(value any) Option {
	return func(spec *Spec) (err error) {
		if spec.strategy != Required {
			err = NewError(ConflictingDefaultStrategy, "attr", spec.name)
			return
		}
		spec.strategy = Value
		spec.value = value
		return
	}
}

// DefaultFactory makes the attribute optional, falling back to the result of
// calling the factory, once per construction.
func DefaultFactory(factory func() any) Option {
	return func(spec *Spec) (err error) {
		if factory == nil {
			err = NewError("attrs.nilFactory", "attr", spec.name)
			return
		}
		if spec.strategy != Required {
			err = NewError(ConflictingDefaultStrategy, "attr", spec.name)
			return
		}
		spec.strategy = Factory
		spec.factory = factory
		return
	}
}

// New returns the spec of the named attribute. Giving both a default value and
// a default factory is rejected.
func New(name string, opts ...Option) (spec Spec, err error) {
	if name == "" {
		err = NewError("attrs.emptyName")
		return
	}
	s := Spec{name: name}
	for _, opt := range opts {
		err = opt(&s)
		if err != nil {
			return
		}
	}
	spec = s
	return
}

// MustNew is New for package-level declarations, panicking on error.
func MustNew(name string, opts ...Option) Spec {
	spec, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return spec
}

// Name returns the attribute name.
func (spec Spec) Name() string { return spec.name }

// Strategy returns the default strategy.
func (spec Spec) Strategy() Strategy { return spec.strategy }

// IsRequired is true if the attribute has neither a default value nor a factory.
func (spec Spec) IsRequired() bool { return spec.strategy == Required }

// HasDefault is true if the attribute has a default value or a factory.
func (spec Spec) HasDefault() bool { return spec.strategy != Required }

// Default returns the default value, or invokes the factory. ok is false for
// required attributes.
func (spec Spec) Default() (value any, ok bool) {
	switch spec.strategy {
	case Value:
		value, ok = spec.value, true
	case Factory:
		value, ok = spec.factory(), true
	}
	return
}
