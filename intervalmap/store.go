package intervalmap

import (
	"github.com/tidwall/btree"
)

// Boundary is a stored (key, value) pair. Value holds for every key in
// [Key, next stored Key).
type Boundary[K, V any] struct {
	Key   K
	Value V
}

// position is a boundary found by a store lookup. ok is false when the lookup
// ran off either end of the store.
type position[K, V any] struct {
	Boundary[K, V]
	ok bool
}

// found wraps a boundary in a valid position.
func found[K, V any](b Boundary[K, V]) position[K, V] {
	return position[K, V]{Boundary: b, ok: true}
}

// boundaryStore is an ordered collection of boundaries, keyed only by the
// caller's less-than predicate.
type boundaryStore[K, V any] struct {
	tree *btree.BTreeG[Boundary[K, V]]
	less func(a, b K) bool
}

// newBoundaryStore creates an empty store of the given B-tree degree.
func newBoundaryStore[K, V any](less func(a, b K) bool, degree int) boundaryStore[K, V] {
	byKey := func(a, b Boundary[K, V]) bool {
		return less(a.Key, b.Key)
	}

	return boundaryStore[K, V]{
		// The owning map is not safe for concurrent use, so the tree's own
		// locking would only add overhead. See [Synchronized].
		tree: btree.NewBTreeGOptions(byKey, btree.Options{
			Degree:  degree,
			NoLocks: true,
		}),
		less: less,
	}
}

// pivot returns a boundary usable as a search pivot for key.
func pivot[K, V any](key K) Boundary[K, V] {
	return Boundary[K, V]{Key: key}
}

// sameKey reports whether a and b are equivalent under the strict order.
func (s *boundaryStore[K, V]) sameKey(a, b K) bool {
	return !s.less(a, b) && !s.less(b, a)
}

func (s *boundaryStore[K, V]) empty() bool {
	return s.tree.Len() == 0
}

func (s *boundaryStore[K, V]) len() int {
	return s.tree.Len()
}

// straddle returns the greatest boundary strictly before key, and the least
// boundary at or after key, from a single descent.
func (s *boundaryStore[K, V]) straddle(key K) (before, atOrAfter position[K, V]) {
	iter := s.tree.Iter()
	defer iter.Release()

	if !iter.Seek(pivot[K, V](key)) {
		// Every boundary is before key.
		if iter.Last() {
			before = found(iter.Item())
		}

		return before, atOrAfter
	}

	atOrAfter = found(iter.Item())

	if iter.Prev() {
		before = found(iter.Item())
	}

	return before, atOrAfter
}

// straddleAfter returns the greatest boundary at or before key, and the least
// boundary strictly after key, from a single descent.
func (s *boundaryStore[K, V]) straddleAfter(key K) (atOrBefore, after position[K, V]) {
	iter := s.tree.Iter()
	defer iter.Release()

	if !iter.Seek(pivot[K, V](key)) {
		if iter.Last() {
			atOrBefore = found(iter.Item())
		}

		return atOrBefore, after
	}

	item := iter.Item()

	// Seek stops at the first boundary not less than key, so it is either at
	// key exactly or past it.
	if !s.less(key, item.Key) {
		atOrBefore = found(item)

		if iter.Next() {
			after = found(iter.Item())
		}

		return atOrBefore, after
	}

	after = found(item)

	if iter.Prev() {
		atOrBefore = found(iter.Item())
	}

	return atOrBefore, after
}

// floor returns the greatest boundary at or before key.
func (s *boundaryStore[K, V]) floor(key K) (b position[K, V]) {
	s.tree.Descend(pivot[K, V](key), func(item Boundary[K, V]) bool {
		b = found(item)
		return false
	})

	return b
}

// ceil returns the least boundary at or after key.
func (s *boundaryStore[K, V]) ceil(key K) (b position[K, V]) {
	s.tree.Ascend(pivot[K, V](key), func(item Boundary[K, V]) bool {
		b = found(item)
		return false
	})

	return b
}

// set inserts a boundary at key, or overwrites the value of the boundary
// already there.
func (s *boundaryStore[K, V]) set(key K, value V) {
	s.tree.Set(Boundary[K, V]{Key: key, Value: value})
}

// eraseBetween removes every boundary from lo up to, but excluding, hi. If
// loInclusive is false a boundary at exactly lo is kept. If hi is not a valid
// position the range extends to the end of the store.
func (s *boundaryStore[K, V]) eraseBetween(lo K, loInclusive bool, hi position[K, V]) {
	var doomed []K

	s.tree.Ascend(pivot[K, V](lo), func(item Boundary[K, V]) bool {
		if hi.ok && !s.less(item.Key, hi.Key) {
			return false
		}

		if loInclusive || s.less(lo, item.Key) {
			doomed = append(doomed, item.Key)
		}

		return true
	})

	// The tree cannot be modified while it is being ascended.
	for _, key := range doomed {
		s.tree.Delete(pivot[K, V](key))
	}
}

// ascend calls fn for each boundary in key order until fn returns false.
func (s *boundaryStore[K, V]) ascend(fn func(Boundary[K, V]) bool) {
	s.tree.Scan(fn)
}

// clone returns a copy-on-write copy of the store.
func (s *boundaryStore[K, V]) clone() boundaryStore[K, V] {
	return boundaryStore[K, V]{
		tree: s.tree.Copy(),
		less: s.less,
	}
}
