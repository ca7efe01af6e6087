package intervalmap

import (
	"fmt"
)

// Format implements [fmt.Formatter].
//
// The map is printed as its default value followed by each boundary in key
// order. Keys are formatted with %v; values with the verb and flags given, so
// a map of runes can be printed with %c:
//
//	{default: A, 0: B, 2: C, 4: A}
func (m *Map[K, V]) Format(s fmt.State, verb rune) {
	valueFormat := fmt.FormatString(s, verb)

	fmt.Fprint(s, "{default: ")
	fmt.Fprintf(s, valueFormat, m.defaultValue)

	m.store.ascend(func(b Boundary[K, V]) bool {
		fmt.Fprintf(s, ", %v: ", b.Key)
		fmt.Fprintf(s, valueFormat, b.Value)

		return true
	})

	fmt.Fprint(s, "}")
}
