package seq

// RemoveWhere removes, in place, every element of *items satisfying the
// predicate. Remaining elements keep their relative order. Returns the
// number of elements removed.
//
// The caller must be the exclusive writer of the slice for the duration of
// the call; everything else in this package leaves its input untouched.
func RemoveWhere[T any](items *[]T, predicate func(T) bool) int {
	src := *items
	kept := src[:0]
	for _, item := range src {
		if !predicate(item) {
			kept = append(kept, item)
		}
	}
	removed := len(src) - len(kept)
	// Zero the tail so removed elements don't pin references.
	var zero T
	for i := len(kept); i < len(src); i++ {
		src[i] = zero
	}
	*items = kept
	return removed
}
