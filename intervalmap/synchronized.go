package intervalmap

import (
	"sync"
)

// Synchronized wraps a [Map] with a read-write lock. Assign and Snapshot hold
// the lock exclusively; every other method holds it shared, so lookups may
// proceed concurrently.
type Synchronized[K, V any] struct {
	mu sync.RWMutex
	m  *Map[K, V]
}

// Synchronize wraps m. The caller must not use m directly afterwards.
func Synchronize[K, V any](m *Map[K, V]) *Synchronized[K, V] {
	return &Synchronized[K, V]{m: m}
}

// Assign is [Map.Assign] under the write lock.
func (s *Synchronized[K, V]) Assign(begin, end K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Assign(begin, end, value)
}

// Get is [Map.Get] under the read lock.
func (s *Synchronized[K, V]) Get(key K) V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(key)
}

// Default returns the default value. It is immutable, so no lock is taken.
func (s *Synchronized[K, V]) Default() V {
	return s.m.Default()
}

// Len is [Map.Len] under the read lock.
func (s *Synchronized[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

// Boundaries is [Map.Boundaries] under the read lock.
func (s *Synchronized[K, V]) Boundaries() []Boundary[K, V] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Boundaries()
}

// Snapshot returns an unsynchronized copy of the current state, which later
// assignments do not affect. Copying marks the shared tree nodes on the
// source, so it takes the write lock.
func (s *Synchronized[K, V]) Snapshot() *Map[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Clone()
}
