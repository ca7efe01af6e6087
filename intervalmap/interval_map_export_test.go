package intervalmap

// NewBoundaryStore reexports the internal [newBoundaryStore] constructor.
func NewBoundaryStore[K, V any](less func(a, b K) bool, degree int) *boundaryStore[K, V] {
	store := newBoundaryStore[K, V](less, degree)
	return &store
}

// Lookup is an exported view of the internal [position] type.
type Lookup[K, V any] struct {
	Boundary[K, V]
	Found bool
}

func exportPosition[K, V any](p position[K, V]) Lookup[K, V] {
	return Lookup[K, V]{Boundary: p.Boundary, Found: p.ok}
}

// Set reexports the internal [set] method.
func (s *boundaryStore[K, V]) Set(key K, value V) {
	s.set(key, value)
}

// Straddle reexports the internal [straddle] method.
func (s *boundaryStore[K, V]) Straddle(key K) (before, atOrAfter Lookup[K, V]) {
	b, a := s.straddle(key)
	return exportPosition(b), exportPosition(a)
}

// StraddleAfter reexports the internal [straddleAfter] method.
func (s *boundaryStore[K, V]) StraddleAfter(key K) (atOrBefore, after Lookup[K, V]) {
	b, a := s.straddleAfter(key)
	return exportPosition(b), exportPosition(a)
}

// EraseBetween reexports the internal [eraseBetween] method. An upper bound
// of nil erases to the end of the store.
func (s *boundaryStore[K, V]) EraseBetween(lo K, loInclusive bool, hi *K) {
	var p position[K, V]
	if hi != nil {
		p = found(Boundary[K, V]{Key: *hi})
	}

	s.eraseBetween(lo, loInclusive, p)
}

// Keys returns the stored keys in order.
func (s *boundaryStore[K, V]) Keys() []K {
	var keys []K

	s.ascend(func(b Boundary[K, V]) bool {
		keys = append(keys, b.Key)
		return true
	})

	return keys
}
