// Package order provides the deterministic ordering helpers used to render
// word graphs reproducibly. None of it sits on a query's critical path.
package order

import "golang.org/x/exp/slices"

// Sort sorts words in ascending ordinal (byte-wise) order, in place,
// and returns the same slice for call chaining.
// Complexity: O(n log n).
func Sort(words []string) []string {
	slices.Sort(words)

	return words
}

// Keys returns the members of a word set as a freshly allocated, sorted slice.
// A nil or empty set yields an empty, non-nil slice.
func Keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}

	return Sort(out)
}

// IsSorted reports whether words are in non-decreasing ordinal order.
func IsSorted(words []string) bool {
	return slices.IsSorted(words)
}
