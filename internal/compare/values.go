package compare

import (
	"fmt"
	"reflect"

	. "github.com/dball/characteristic/internal/types"
)

// equaler is implemented by values that compare themselves, such as records.
type equaler interface {
	Eq(other any) Outcome
}

// orderer is implemented by values that order themselves, such as records.
type orderer interface {
	Compare(other any) (int, error)
}

// Equal compares two field values with the values' own equality. Values of
// different dynamic types are never equal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(equaler); ok {
		return e.Eq(b) == True
	}
	typ := reflect.TypeOf(a)
	if typ != reflect.TypeOf(b) {
		return false
	}
	if eq, ok := callMethod(a, b, "Equal", reflect.Bool); ok {
		return eq.Bool()
	}
	if typ.Comparable() {
		return comparableEqual(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// comparableEqual is a == b, except that an incomparable value nested in an
// interface falls back to deep equality rather than panicking.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	eq = a == b
	return
}

// Order orders two unequal field values with the values' own ordering,
// returning -1, 0 or 1. Numbers, strings and bools are ordered, as are
// slices and arrays of ordered values, lexicographically.
func Order(a, b any) (diff int, err error) {
	if o, ok := a.(orderer); ok {
		return o.Compare(b)
	}
	if a == nil || b == nil || reflect.TypeOf(a) != reflect.TypeOf(b) {
		err = unorderable(a, b)
		return
	}
	if c, ok := callMethod(a, b, "Compare", reflect.Int); ok {
		diff = ordered(c.Int(), 0)
		return
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		diff = ordered(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		diff = ordered(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		diff = orderedFloat(va.Float(), vb.Float())
	case reflect.String:
		diff = ordered(va.String(), vb.String())
	case reflect.Bool:
		diff = ordered(boolRank(va.Bool()), boolRank(vb.Bool()))
	case reflect.Slice, reflect.Array:
		if !va.CanInterface() {
			err = unorderable(a, b)
			return
		}
		diff, err = CompareTuples(elems(va), elems(vb))
	default:
		err = unorderable(a, b)
	}
	return
}

func unorderable(a, b any) error {
	return NewError(Unorderable, "value", fmt.Sprintf("%T", a), "other", fmt.Sprintf("%T", b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func elems(v reflect.Value) (values []any) {
	n := v.Len()
	values = make([]any, n)
	for i := 0; i < n; i++ {
		values[i] = v.Index(i).Interface()
	}
	return
}

// callMethod calls a's method of the given name with b if a has one of the
// shape func(T) R, where T is a's type and R has the given kind.
func callMethod(a, b any, name string, result reflect.Kind) (out reflect.Value, ok bool) {
	va := reflect.ValueOf(a)
	m := va.MethodByName(name)
	if !m.IsValid() {
		return
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.In(0) != va.Type() || mt.Out(0).Kind() != result {
		return
	}
	out = m.Call([]reflect.Value{reflect.ValueOf(b)})[0]
	ok = true
	return
}
