// Package index provides sorted sets implemented on btrees.
package index

import (
	"github.com/dball/characteristic/internal/iterator"
	"github.com/google/btree"
)

// DefaultDegree is the btree degree used when none is configured.
const DefaultDegree = 32

// Comparer returns -1, 0, or 1 as a sorts before, with, or after b. It must
// be a total order.
type Comparer[X any] func(a X, b X) int

// Index instances maintain sorted sets of values, where the basis for
// uniqueness is the comparer. An index retains the extant value if an equal
// one is inserted.
//
// Indexes are safe for concurrent read operations but not for concurrent
// write operations, including cloning.
type Index[X any] interface {
	// Find returns the value in the index equal to the given one, if any.
	Find(x X) (match X, extant bool)
	// Insert ensures a value equal to the given one is present in the index,
	// returning true if it already was.
	Insert(x X) (extant bool)
	// Delete ensures no value equal to the given one is present in the index,
	// returning true if one was.
	Delete(x X) (extant bool)
	// Len returns the number of values in the index.
	Len() int
	// Clone returns a copy of the index. Both the original and the clone may
	// be changed hereafter without either affecting the other.
	Clone() (clone Index[X])
	// All returns an ascending iterator over the values.
	All() (iter *iterator.Iterator[X])
	// Select returns an ascending iterator of values starting at the point x
	// would occupy, for as long as the comparer returns 0 for x and the value.
	// A nil comparer selects through the end of the index.
	Select(comparer Comparer[X], x X) (iter *iterator.Iterator[X])
}

type btreeIndex[X any] struct {
	tree *btree.BTreeG[X]
}

// NewBTreeIndex returns a btree index of the given degree that sorts its set
// of values according to the given comparer. Degrees less than 2 are replaced
// by DefaultDegree.
func NewBTreeIndex[X any](degree int, compare Comparer[X]) (index Index[X]) {
	if degree < 2 {
		degree = DefaultDegree
	}
	less := func(a X, b X) bool { return compare(a, b) < 0 }
	index = &btreeIndex[X]{tree: btree.NewG(degree, btree.LessFunc[X](less))}
	return
}

func (index *btreeIndex[X]) Find(x X) (match X, extant bool) {
	match, extant = index.tree.Get(x)
	return
}

func (index *btreeIndex[X]) Insert(x X) (extant bool) {
	extant = index.tree.Has(x)
	if !extant {
		index.tree.ReplaceOrInsert(x)
	}
	return
}

func (index *btreeIndex[X]) Delete(x X) (extant bool) {
	_, extant = index.tree.Delete(x)
	return
}

func (index *btreeIndex[X]) Len() int {
	return index.tree.Len()
}

func (index *btreeIndex[X]) Clone() (clone Index[X]) {
	return &btreeIndex[X]{tree: index.tree.Clone()}
}

type ascension[X any] struct {
	idx *btreeIndex[X]
}

func (asc ascension[X]) Each(accept iterator.Accept[X]) {
	asc.idx.tree.Ascend(btree.ItemIteratorG[X](accept))
}

func (index *btreeIndex[X]) All() (iter *iterator.Iterator[X]) {
	return iterator.BuildIterator[X](ascension[X]{index})
}

type selection[X any] struct {
	idx      *btreeIndex[X]
	comparer Comparer[X]
	x        X
}

func (sel selection[X]) Each(accept iterator.Accept[X]) {
	sel.idx.tree.AscendGreaterOrEqual(sel.x, func(x X) bool {
		if sel.comparer != nil && sel.comparer(sel.x, x) != 0 {
			return false
		}
		return accept(x)
	})
}

func (index *btreeIndex[X]) Select(comparer Comparer[X], x X) (iter *iterator.Iterator[X]) {
	return iterator.BuildIterator[X](selection[X]{index, comparer, x})
}
