package map_reduce

import (
	"cmp"
	"slices"
)

// SortByKey orders pairs by key in place and returns them.
func SortByKey[K cmp.Ordered, V any](pairs []Pair[K, V]) []Pair[K, V] {
	slices.SortStableFunc(pairs, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return pairs
}

// TopN returns a copy of pairs ranked by value, highest first, with ties
// broken by key. n <= 0 keeps every pair.
func TopN[K cmp.Ordered, V cmp.Ordered](pairs []Pair[K, V], n int) []Pair[K, V] {
	ranked := slices.Clone(pairs)
	slices.SortFunc(ranked, func(a, b Pair[K, V]) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
