package intervalmap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/crystalix007/compressed-interval-map/intervalmap"
)

const (
	// universeLow and universeHigh bound the keys painted by the randomized
	// tests. Lookups are checked on a margin either side as well.
	universeLow  = -8
	universeHigh = 40
	lookupMargin = 4
)

// denseMap is the reference model: one slot per key.
type denseMap struct {
	defaultValue int
	values       []int
}

func newDenseMap(defaultValue int) *denseMap {
	values := make([]int, universeHigh-universeLow+2*lookupMargin+1)

	for i := range values {
		values[i] = defaultValue
	}

	return &denseMap{defaultValue: defaultValue, values: values}
}

func (d *denseMap) index(key int) int {
	return key - universeLow + lookupMargin
}

func (d *denseMap) Assign(begin, end, value int) {
	for k := begin; k < end; k++ {
		d.values[d.index(k)] = value
	}
}

func (d *denseMap) Get(key int) int {
	return d.values[d.index(key)]
}

// requireMatchesDense checks every key in the lookup window against the
// reference model, and that the map is canonical.
func requireMatchesDense(t *testing.T, m *intervalmap.Map[int, int], d *denseMap) {
	t.Helper()

	for k := universeLow - lookupMargin; k <= universeHigh+lookupMargin; k++ {
		if m.Get(k) != d.Get(k) {
			require.Failf(t, "lookup mismatch", "Get(%d) = %d, want %d\n%s",
				k, m.Get(k), d.Get(k), spew.Sdump(m.Boundaries()))
		}
	}

	requireCanonical(t, m)
}

func FuzzMap(f *testing.F) {
	f.Add(uint64(0), uint8(3), uint8(2))
	f.Add(uint64(42), uint8(64), uint8(4))
	f.Add(uint64(7), uint8(255), uint8(1))

	f.Fuzz(func(
		t *testing.T,
		seed uint64,
		assignCount uint8,
		valueCount uint8,
	) {
		rng := rand.New(rand.NewPCG(seed, ^seed))

		// Few distinct values make merges with neighbouring runs likely.
		values := int(valueCount%6) + 1

		m := intervalmap.New[int](0)
		d := newDenseMap(0)

		for range assignCount {
			begin := universeLow + rng.IntN(universeHigh-universeLow+1)
			end := universeLow + rng.IntN(universeHigh-universeLow+1)
			value := rng.IntN(values)

			m.Assign(begin, end, value)
			d.Assign(begin, end, value)

			requireMatchesDense(t, m, d)
		}
	})
}

func TestMap_Assign_stress(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	m := intervalmap.New[int](0)
	d := newDenseMap(0)

	for i := 0; i < 2000; i++ {
		begin := universeLow + rng.IntN(universeHigh-universeLow+1)
		length := rng.IntN(12)
		end := min(begin+length, universeHigh)
		value := rng.IntN(4)

		m.Assign(begin, end, value)
		d.Assign(begin, end, value)

		requireMatchesDense(t, m, d)
	}
}
