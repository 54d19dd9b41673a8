package seq

import (
	"cmp"
	"slices"
)

// Sorted returns a new slice with the elements in ascending natural order.
// The input is not modified. The sort is stable, so equal elements keep
// their relative order.
func Sorted[T cmp.Ordered](items []T) []T {
	result := slices.Clone(items)
	slices.SortStableFunc(result, cmp.Compare)
	return result
}

// SortedBy returns a new slice ordered by the comparator, which must return
// a negative value when a sorts before b, zero when they are equal, and a
// positive value otherwise. The input is not modified and the sort is
// stable. A comparator that is not a consistent ordering yields some
// unspecified permutation; it is never detected at runtime.
func SortedBy[T any](items []T, compare func(a, b T) int) []T {
	result := slices.Clone(items)
	slices.SortStableFunc(result, compare)
	return result
}

// IsSorted reports whether the slice is in ascending natural order.
func IsSorted[T cmp.Ordered](items []T) bool {
	return slices.IsSorted(items)
}

// Reverse returns a new slice with the elements in reverse order.
func Reverse[T any](items []T) []T {
	result := make([]T, len(items))
	for i, item := range items {
		result[len(items)-1-i] = item
	}
	return result
}
