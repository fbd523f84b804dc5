package record

import (
	"fmt"
	"reflect"

	"github.com/dball/characteristic/internal/compare"
	"github.com/dball/characteristic/internal/types"
)

// Record is an instance of a record kind. It owns its value: reads return
// copies, and Set is the only way to change it.
//
// Records are not safe for concurrent writes.
type Record[T any] struct {
	kind  *Kind[T]
	value reflect.Value
}

// Kind returns the record's kind.
func (r *Record[T]) Kind() *Kind[T] {
	return r.kind
}

// Value returns a copy of the record's value.
func (r *Record[T]) Value() T {
	return r.kind.model.Copy(r.value).Interface().(T)
}

// Get returns the value of the named field, which need not be an attribute.
func (r *Record[T]) Get(name string) (any, error) {
	return r.kind.model.Get(r.value, name)
}

// Set writes the named field. Attributes of immutable kinds may not be set.
func (r *Record[T]) Set(name string, value any) error {
	if r.kind.guard != nil {
		return r.kind.guard.Write(r.value, name, value)
	}
	return r.kind.model.Write(r.value, name, value)
}

// Tuple returns the record's attribute values in declared order.
func (r *Record[T]) Tuple() []any {
	return r.kind.model.Tuple(r.value)
}

// peer returns other as a record of the same kind, if it is one.
func (r *Record[T]) peer(other any) (o *Record[T], ok bool) {
	if r == nil {
		return
	}
	o, ok = other.(*Record[T])
	ok = ok && o != nil && o.kind == r.kind
	return
}

// bothNil is true for a nil record and a nil record of the same type, as
// found in unset fields of nested record types.
func bothNil[T any](r *Record[T], other any) bool {
	o, ok := other.(*Record[T])
	return r == nil && ok && o == nil
}

// Eq compares the records' attributes in order. Anything other than a record
// of the same kind is not comparable.
func (r *Record[T]) Eq(other any) Outcome {
	if bothNil(r, other) {
		return True
	}
	o, ok := r.peer(other)
	if !ok {
		return NotComparable
	}
	return r.kind.comparator.Eq(r, o)
}

// Ne is the negation of Eq.
func (r *Record[T]) Ne(other any) Outcome {
	return r.Eq(other).Not()
}

// Compare orders the records by their attributes in declared order,
// returning -1, 0 or 1.
func (r *Record[T]) Compare(other any) (diff int, err error) {
	if bothNil(r, other) {
		return
	}
	o, ok := r.peer(other)
	if !ok {
		name := "<nil>"
		if r != nil {
			name = r.kind.name
		}
		err = types.NewError(types.IncomparableTypes, "type", name, "other", describe(other))
		return
	}
	return r.kind.comparator.Compare(r, o)
}

func describe(x any) string {
	if o, ok := x.(interface{ kindName() string }); ok {
		return o.kindName()
	}
	return fmt.Sprintf("%T", x)
}

func (r *Record[T]) kindName() string {
	if r == nil {
		return "<nil>"
	}
	return r.kind.name
}

func (r *Record[T]) order(other any, accept func(diff int) bool) Outcome {
	diff, err := r.Compare(other)
	if err != nil {
		return NotComparable
	}
	return compare.Of(accept(diff))
}

// Lt is true if r orders before other.
func (r *Record[T]) Lt(other any) Outcome {
	return r.order(other, func(diff int) bool { return diff < 0 })
}

// Le is true if r orders before or equals other.
func (r *Record[T]) Le(other any) Outcome {
	return r.order(other, func(diff int) bool { return diff <= 0 })
}

// Gt is true if r orders after other.
func (r *Record[T]) Gt(other any) Outcome {
	return r.order(other, func(diff int) bool { return diff > 0 })
}

// Ge is true if r orders after or equals other.
func (r *Record[T]) Ge(other any) Outcome {
	return r.order(other, func(diff int) bool { return diff >= 0 })
}

// Hash hashes the record's attributes. Records that are Eq hash equally.
func (r *Record[T]) Hash() (uint64, error) {
	if r == nil {
		return 0, nil
	}
	return r.kind.comparator.Hash(r)
}

// Repr renders the record as <Kind(attr=value, ...)>.
func (r *Record[T]) Repr() string {
	if r == nil {
		return "nil"
	}
	return r.kind.representer.Represent(r)
}

func (r *Record[T]) String() string {
	return r.Repr()
}
