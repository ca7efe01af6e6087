package main

import (
	"fmt"
	"io"

	"github.com/crystalix007/compressed-interval-map/intervalmap"
)

// report prints the contents of m, its value at every key in [from, to], and
// the boundaries on either side of each key in bounds. Values are printed
// with verb.
func report[V any](w io.Writer, m *intervalmap.Map[int, V], verb string, from, to int, bounds []int) {
	fmt.Fprintf(w, "map: %"+verb+"\n", m)

	fmt.Fprintf(w, "boundaries (%d):\n", m.Len())
	for key, value := range m.All() {
		fmt.Fprintf(w, "  %d: %"+verb+"\n", key, value)
	}

	fmt.Fprintln(w, "values:")
	for k := from; ; k++ {
		fmt.Fprintf(w, "  %d: %"+verb+"\n", k, m.Get(k))

		// Stop on to itself, since k++ past math.MaxInt wraps.
		if k >= to {
			break
		}
	}

	for _, k := range bounds {
		fmt.Fprintf(w, "bounds of %d: floor %s, ceil %s\n", k, describe(m.Floor(k)), describe(m.Ceil(k)))
	}
}

func describe(key int, ok bool) string {
	if !ok {
		return "none"
	}

	return fmt.Sprint(key)
}
