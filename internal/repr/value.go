package repr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// representer is implemented by values that render themselves.
type representer interface {
	Repr() string
}

// Value renders a single value. Values with a Repr method render themselves;
// strings are quoted; floats keep a fractional part; slices, arrays and maps
// render their elements; stringers and errors use their text.
func Value(v any) string {
	if v == nil {
		return "nil"
	}
	if r, ok := v.(representer); ok {
		return r.Repr()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Quote(rv.String())
	case reflect.Float32:
		return Float(rv.Float(), 32)
	case reflect.Float64:
		return Float(rv.Float(), 64)
	case reflect.Slice:
		if rv.IsNil() {
			return "nil"
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "b" + Quote(string(rv.Bytes()))
		}
		return "[" + strings.Join(elems(rv), ", ") + "]"
	case reflect.Array:
		return "[" + strings.Join(elems(rv), ", ") + "]"
	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		return "{" + strings.Join(entries(rv), ", ") + "}"
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
	}
	switch x := v.(type) {
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprintf("%v", v)
}

func elems(rv reflect.Value) (out []string) {
	n := rv.Len()
	out = make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = Value(rv.Index(i).Interface())
	}
	return
}

// entries renders map entries sorted by their rendered keys.
func entries(rv reflect.Value) (out []string) {
	out = make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out = append(out, Value(iter.Key().Interface())+": "+Value(iter.Value().Interface()))
	}
	slices.Sort(out)
	return
}

// Float renders a float of the given bit size so that it always reads as one:
// 1.0, 2.5e+20, inf, nan.
func Float(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Quote renders a string in single quotes, or in double quotes if it
// contains a single quote and no double quote. Backslashes, the chosen quote
// and unprintable runes are escaped.
func Quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(q)
	return b.String()
}
