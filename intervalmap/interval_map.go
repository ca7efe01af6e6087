// Package intervalmap implements a compressed interval map: a total function
// from an ordered key domain to a value domain, stored as the set of points at
// which the value changes.
//
// Keys are only ever compared with a strict less-than predicate, and values
// only with an equality predicate, so neither needs to support arithmetic.
package intervalmap

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultDegree is the B-tree degree used when [Options.Degree] is zero.
	//
	// This is a performance tweakable that can be adjusted based on the
	// expected number of boundaries.
	DefaultDegree = 32
)

// Options configures a [Map]. The zero value selects the defaults.
type Options struct {
	// Degree is the degree of the B-tree holding the boundaries.
	Degree int
}

// withDefaults returns o with every zero field replaced by its default.
func (o Options) withDefaults() Options {
	if o.Degree == 0 {
		o.Degree = DefaultDegree
	}

	return o
}

// Lesser is implemented by key types that expose a strict total order.
type Lesser[K any] interface {
	Less(other K) bool
}

// Equaler is implemented by value types that expose equality.
type Equaler[V any] interface {
	Equal(other V) bool
}

// Interface is the read and paint surface shared by [Map] and
// [Synchronized].
type Interface[K, V any] interface {
	Assign(begin, end K, value V)
	Get(key K) V
	Default() V
	Len() int
	Boundaries() []Boundary[K, V]
}

// Ensure that both map flavours implement [Interface].
var (
	_ Interface[int, int] = &Map[int, int]{}
	_ Interface[int, int] = &Synchronized[int, int]{}
)

// Map is a compressed interval map from K to V.
//
// Every key maps to the default value until a range covering it is assigned.
// The stored boundaries are kept canonical: no boundary carries the value
// that is already in force just before it.
//
// A Map is not safe for concurrent use. See [Synchronized].
type Map[K, V any] struct {
	store        boundaryStore[K, V]
	less         func(a, b K) bool
	equal        func(a, b V) bool
	defaultValue V
}

// New creates a map over an ordered key type, using < on keys and == on
// values. Floating point keys must not be NaN.
func New[K cmp.Ordered, V comparable](defaultValue V) *Map[K, V] {
	return NewWithOptions[K](defaultValue, Options{})
}

// NewWithOptions is [New] with explicit options.
func NewWithOptions[K cmp.Ordered, V comparable](defaultValue V, opts Options) *Map[K, V] {
	return NewFuncWithOptions(
		defaultValue,
		func(a, b K) bool { return a < b },
		func(a, b V) bool { return a == b },
		opts,
	)
}

// NewLesser creates a map over keys and values that carry their own order and
// equality methods.
func NewLesser[K Lesser[K], V Equaler[V]](defaultValue V) *Map[K, V] {
	return NewFunc(
		defaultValue,
		func(a, b K) bool { return a.Less(b) },
		func(a, b V) bool { return a.Equal(b) },
	)
}

// NewFunc creates a map ordered by less, comparing values with equal. less
// must be a strict total order.
func NewFunc[K, V any](defaultValue V, less func(a, b K) bool, equal func(a, b V) bool) *Map[K, V] {
	return NewFuncWithOptions(defaultValue, less, equal, Options{})
}

// NewFuncWithOptions is [NewFunc] with explicit options.
func NewFuncWithOptions[K, V any](
	defaultValue V,
	less func(a, b K) bool,
	equal func(a, b V) bool,
	opts Options,
) *Map[K, V] {
	if less == nil || equal == nil {
		panic(errors.AssertionFailedf("intervalmap: nil comparison function"))
	}

	if opts.Degree < 0 {
		panic(errors.AssertionFailedf("intervalmap: negative B-tree degree %d", opts.Degree))
	}

	opts = opts.withDefaults()

	return &Map[K, V]{
		store:        newBoundaryStore[K, V](less, opts.Degree),
		less:         less,
		equal:        equal,
		defaultValue: defaultValue,
	}
}

// Default returns the value of every key not covered by an assigned range.
func (m *Map[K, V]) Default() V {
	return m.defaultValue
}

// Len returns the number of stored boundaries.
func (m *Map[K, V]) Len() int {
	return m.store.len()
}

// Get returns the value in force at key: that of the greatest boundary at or
// before key, or the default value if there is none.
func (m *Map[K, V]) Get(key K) V {
	if b := m.store.floor(key); b.ok {
		return b.Value
	}

	return m.defaultValue
}

// Assign sets the value of every key in the half-open range [begin, end) to
// value, leaving every other key unchanged.
//
// If begin is not less than end the call does nothing.
func (m *Map[K, V]) Assign(begin, end K, value V) {
	if !m.less(begin, end) {
		return
	}

	if m.store.empty() {
		// Painting the default onto an all-default map changes nothing, and
		// storing it would leave a redundant first boundary.
		if m.equal(value, m.defaultValue) {
			return
		}

		m.store.set(begin, value)
		m.store.set(end, m.defaultValue)

		return
	}

	beforeBegin, _ := m.store.straddle(begin)
	beforeEnd, afterEnd := m.store.straddleAfter(end)

	// The range lies entirely before the first boundary, where the default
	// value is already in force.
	if m.equal(value, m.defaultValue) && !beforeBegin.ok && !beforeEnd.ok {
		return
	}

	// Right edge. rightValue must keep holding from end onwards. If value
	// already equals it the painted range flows into what follows, and every
	// boundary up to afterEnd becomes redundant.
	rightValue := m.valueOf(beforeEnd)
	stop := afterEnd

	if !m.equal(value, rightValue) {
		if !beforeEnd.ok || !m.store.sameKey(beforeEnd.Key, end) {
			m.store.set(end, rightValue)
		}

		stop = found(Boundary[K, V]{Key: end, Value: rightValue})
	}

	// Left edge. A new boundary is needed unless the value in force just
	// before begin is already value.
	keepBegin := false

	if !m.equal(m.valueOf(beforeBegin), value) {
		m.store.set(begin, value)

		keepBegin = true
	}

	m.store.eraseBetween(begin, !keepBegin, stop)
}

// valueOf returns the value stored at p, or the default value if p is not a
// valid position.
func (m *Map[K, V]) valueOf(p position[K, V]) V {
	if p.ok {
		return p.Value
	}

	return m.defaultValue
}

// Floor returns the key of the greatest boundary at or before key.
func (m *Map[K, V]) Floor(key K) (K, bool) {
	b := m.store.floor(key)

	return b.Key, b.ok
}

// Ceil returns the key of the least boundary at or after key.
func (m *Map[K, V]) Ceil(key K) (K, bool) {
	b := m.store.ceil(key)

	return b.Key, b.ok
}

// Clone returns an independent copy of the map. The copy shares storage with
// m until either is modified. Clone writes to m, so it must not run
// concurrently with any other use of m.
func (m *Map[K, V]) Clone() *Map[K, V] {
	clone := *m
	clone.store = m.store.clone()

	return &clone
}
