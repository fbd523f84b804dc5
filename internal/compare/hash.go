package compare

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"

	. "github.com/dball/characteristic/internal/types"
)

// hasher is implemented by values that hash themselves, such as records.
type hasher interface {
	Hash() (uint64, error)
}

var timeType = reflect.TypeOf(time.Time{})

// HashTuple hashes the values of the tuple in order. Slices, maps, funcs and
// values with their own Equal method but no Hash are unhashable.
func HashTuple(tuple []any) (sum uint64, err error) {
	d := xxhash.New()
	writeUint(d, uint64(len(tuple)))
	for i, v := range tuple {
		err = hashValue(d, reflect.ValueOf(v), true)
		if err != nil {
			if e, ok := err.(Error); ok {
				e.Context["index"] = i
			}
			return
		}
	}
	sum = d.Sum64()
	return
}

func writeUint(d *xxhash.Digest, u uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], u)
	d.Write(buf[:])
}

// hashValue hashes v. Tuple values (top) compare with their own Equal method
// when they have one, so they must also hash themselves; nested values compare
// with == and hash by content.
func hashValue(d *xxhash.Digest, v reflect.Value, top bool) (err error) {
	if !v.IsValid() {
		d.Write([]byte{0})
		return
	}
	if v.CanInterface() && !(v.Kind() == reflect.Pointer && v.IsNil()) {
		if h, ok := v.Interface().(hasher); ok {
			var sum uint64
			sum, err = h.Hash()
			if err != nil {
				return
			}
			d.Write([]byte{1})
			writeUint(d, sum)
			return
		}
	}
	typ := v.Type()
	if typ == timeType && v.CanInterface() {
		// Times are equal as instants, whatever their location.
		t := v.Interface().(time.Time)
		d.Write([]byte{2})
		writeUint(d, uint64(t.Unix()))
		writeUint(d, uint64(t.Nanosecond()))
		return
	}
	if _, ok := typ.MethodByName("Equal"); ok && top {
		err = NewError(Unhashable, "value", typ.String())
		return
	}
	d.Write([]byte{byte(v.Kind())})
	switch v.Kind() {
	case reflect.Bool:
		writeUint(d, uint64(boolRank(v.Bool())))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		writeFloat(d, real(v.Complex()))
		writeFloat(d, imag(v.Complex()))
	case reflect.String:
		writeUint(d, uint64(v.Len()))
		d.WriteString(v.String())
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		writeUint(d, uint64(v.Pointer()))
	case reflect.Interface:
		err = hashValue(d, v.Elem(), false)
	case reflect.Array:
		n := v.Len()
		for i := 0; i < n && err == nil; i++ {
			err = hashValue(d, v.Index(i), false)
		}
	case reflect.Struct:
		n := v.NumField()
		for i := 0; i < n && err == nil; i++ {
			err = hashValue(d, v.Field(i), false)
		}
	default:
		err = NewError(Unhashable, "value", typ.String())
	}
	return
}

// writeFloat writes the float so that values equal under == write the same
// bytes: -0 is 0, and every NaN is the same NaN.
func writeFloat(d *xxhash.Digest, f float64) {
	switch {
	case f == 0:
		f = 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	writeUint(d, math.Float64bits(f))
}
