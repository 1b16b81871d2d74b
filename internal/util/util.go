package util

import (
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// MapsKeysSorted returns the keys of m in ascending order.
func MapsKeysSorted[M ~map[K]V, K constraints.Ordered, V any](m M) []K {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m))
}
