package intervalmap

import (
	"iter"
)

// Run is a maximal range of keys sharing one value.
type Run[K, V any] struct {
	// Start is the first key of the run.
	Start K

	// End is the first key after the run. It is only meaningful when
	// Bounded is true; the last run extends over every greater key.
	End     K
	Bounded bool

	Value V
}

// Contains reports whether key lies within the run, using less as the key
// order.
func (r Run[K, V]) Contains(key K, less func(a, b K) bool) bool {
	if less(key, r.Start) {
		return false
	}

	return !r.Bounded || less(key, r.End)
}

// All returns an iterator over the stored boundaries in key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.store.ascend(func(b Boundary[K, V]) bool {
			return yield(b.Key, b.Value)
		})
	}
}

// Boundaries returns the stored boundaries in key order.
func (m *Map[K, V]) Boundaries() []Boundary[K, V] {
	boundaries := make([]Boundary[K, V], 0, m.store.len())

	m.store.ascend(func(b Boundary[K, V]) bool {
		boundaries = append(boundaries, b)
		return true
	})

	return boundaries
}

// Runs returns an iterator over the runs starting at each boundary, in key
// order. Keys before the first boundary hold [Map.Default] and are not
// reported.
//
// Since the boundaries are canonical, adjacent runs never share a value.
func (m *Map[K, V]) Runs() iter.Seq[Run[K, V]] {
	return func(yield func(Run[K, V]) bool) {
		var (
			pending Run[K, V]
			started bool
			stopped bool
		)

		m.store.ascend(func(b Boundary[K, V]) bool {
			if started {
				pending.End = b.Key
				pending.Bounded = true

				if !yield(pending) {
					stopped = true
					return false
				}
			}

			pending = Run[K, V]{Start: b.Key, Value: b.Value}
			started = true

			return true
		})

		if started && !stopped {
			yield(pending)
		}
	}
}
