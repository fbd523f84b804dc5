package models

import (
	"math"
	"reflect"
)

// coerce converts the value to the field type, returning the reason it could
// not. Assignable values pass as they are; numeric values convert only when
// the conversion is lossless, and named string types convert to one another.
func coerce(value any, typ reflect.Type) (v reflect.Value, reason string) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			v = reflect.Zero(typ)
		default:
			reason = "nil"
		}
		return
	}
	v = reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(typ):
	case isNumeric(v.Kind()) && isNumeric(typ.Kind()):
		converted := v.Convert(typ)
		if !lossless(v, converted) {
			reason = "lossy"
			return
		}
		v = converted
	case v.Kind() == reflect.String && typ.Kind() == reflect.String:
		v = v.Convert(typ)
	default:
		reason = "unassignable"
	}
	return
}

// lossless is true if converted holds the same number as v: it converts back
// to v, and the sign survived.
func lossless(v reflect.Value, converted reflect.Value) bool {
	if isNegative(v) != isNegative(converted) {
		return false
	}
	if isNaN(v) {
		return isNaN(converted)
	}
	return converted.Convert(v.Type()).Interface() == v.Interface()
}

func isNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	}
	return false
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}
