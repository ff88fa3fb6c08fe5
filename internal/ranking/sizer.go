package ranking

import "sort"

// PadTo appends synthesized entries until the list holds at least n items.
// The synthesizer receives the padding index so hash-derived records stay
// reproducible.
func PadTo[T any](items []T, n int, synth func(i int) T) []T {
	for i := len(items); i < n; i++ {
		items = append(items, synth(i))
	}
	return items
}

// TopN sorts descending by score (stable, so original order breaks ties) and
// truncates to exactly n entries. The input must already contain at least n
// items; pad first when it does not.
func TopN[T any](items []T, n int, score func(T) int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return score(sorted[i]) > score(sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
