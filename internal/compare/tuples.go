package compare

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// EqualTuples is true if the tuples have the same length and pairwise equal values.
func EqualTuples(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// CompareTuples orders tuples lexicographically: the first pair of unequal
// values decides, and a tuple that is a prefix of another orders first. A
// pair that is unequal yet orders as equal, such as NaN and NaN, has no
// ordering.
func CompareTuples(a, b []any) (diff int, err error) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if Equal(a[i], b[i]) {
			continue
		}
		diff, err = Order(a[i], b[i])
		if err == nil && diff == 0 {
			err = unorderable(a[i], b[i])
		}
		return
	}
	diff = ordered(len(a), len(b))
	return
}

// Total is CompareTuples made total. Pairs of values without an ordering are
// ordered by type name, then by their formatted text. Pairs that order as
// equal defer to the following pairs.
func Total(a, b []any) (diff int) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if Equal(a[i], b[i]) {
			continue
		}
		var err error
		diff, err = Order(a[i], b[i])
		if err == nil {
			if diff != 0 {
				return
			}
			continue
		}
		diff = ordered(fmt.Sprintf("%T", a[i]), fmt.Sprintf("%T", b[i]))
		if diff == 0 {
			diff = ordered(fmt.Sprintf("%v", a[i]), fmt.Sprintf("%v", b[i]))
		}
		if diff != 0 {
			return
		}
	}
	diff = ordered(len(a), len(b))
	return
}

func ordered[X constraints.Ordered](a X, b X) (diff int) {
	switch {
	case a < b:
		diff = -1
	case a > b:
		diff = 1
	default:
		diff = 0
	}
	return
}

// orderedFloat orders NaN before every other value, and equal to itself.
func orderedFloat[X constraints.Float](a X, b X) (diff int) {
	aNaN, bNaN := math.IsNaN(float64(a)), math.IsNaN(float64(b))
	switch {
	case aNaN && bNaN:
		diff = 0
	case aNaN:
		diff = -1
	case bNaN:
		diff = 1
	default:
		diff = ordered(a, b)
	}
	return
}
