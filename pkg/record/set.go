package record

import (
	"github.com/dball/characteristic/internal/compare"
	"github.com/dball/characteristic/internal/index"
	"github.com/dball/characteristic/internal/iterator"
	"github.com/dball/characteristic/internal/types"
)

// SortedSet is an ordered set of records of one kind, without duplicates.
// Records whose attributes have no ordering are placed by their type and text.
// Records must not be changed while they are in a set.
type SortedSet[T any] struct {
	kind *Kind[T]
	idx  index.Index[*Record[T]]
}

// NewSortedSet returns an empty sorted set of the kind's records.
func (kind *Kind[T]) NewSortedSet() *SortedSet[T] {
	total := func(a *Record[T], b *Record[T]) int {
		return compare.Total(a.Tuple(), b.Tuple())
	}
	return &SortedSet[T]{kind: kind, idx: index.NewBTreeIndex[*Record[T]](kind.degree, total)}
}

func (set *SortedSet[T]) admit(r *Record[T]) (err error) {
	if r == nil || r.kind != set.kind {
		err = types.NewError(types.IncomparableTypes, "type", set.kind.name, "other", describe(r))
	}
	return
}

// Add ensures a record equal to the given one is in the set, returning true
// if one already was. The extant record is retained.
func (set *SortedSet[T]) Add(r *Record[T]) (extant bool, err error) {
	err = set.admit(r)
	if err != nil {
		return
	}
	extant = set.idx.Insert(r)
	return
}

// Get returns the record in the set equal to the given one, if any.
func (set *SortedSet[T]) Get(r *Record[T]) (match *Record[T], extant bool) {
	if set.admit(r) != nil {
		return
	}
	return set.idx.Find(r)
}

// Has indicates whether a record equal to the given one is in the set.
func (set *SortedSet[T]) Has(r *Record[T]) (extant bool) {
	_, extant = set.Get(r)
	return
}

// Remove ensures no record equal to the given one is in the set, returning
// true if one was.
func (set *SortedSet[T]) Remove(r *Record[T]) (extant bool) {
	if set.admit(r) != nil {
		return
	}
	return set.idx.Delete(r)
}

// Len returns the number of records in the set.
func (set *SortedSet[T]) Len() int {
	return set.idx.Len()
}

// Iter returns an ascending iterator over the records.
func (set *SortedSet[T]) Iter() *iterator.Iterator[*Record[T]] {
	return set.idx.All()
}

// From returns an ascending iterator over the records that order with or
// after the given one.
func (set *SortedSet[T]) From(r *Record[T]) *iterator.Iterator[*Record[T]] {
	return set.idx.Select(nil, r)
}

// Records returns the records in ascending order.
func (set *SortedSet[T]) Records() []*Record[T] {
	return set.Iter().Drain()
}

// Clone returns a copy of the set. Either may be changed without affecting
// the other.
func (set *SortedSet[T]) Clone() *SortedSet[T] {
	return &SortedSet[T]{kind: set.kind, idx: set.idx.Clone()}
}
