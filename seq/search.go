package seq

import "github.com/seqkit/seqkit/option"

// Contains checks if a slice contains a value. Stops at the first match.
func Contains[T comparable](items []T, val T) bool {
	for _, item := range items {
		if item == val {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether at least one element satisfies the predicate.
// Stops invoking the predicate at the first match.
func ContainsFunc[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// AllSatisfy reports whether every element satisfies the predicate.
// Vacuously true for empty input; stops at the first failure.
func AllSatisfy[T any](items []T, predicate func(T) bool) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// AnySatisfy reports whether at least one element satisfies the predicate.
func AnySatisfy[T any](items []T, predicate func(T) bool) bool {
	return ContainsFunc(items, predicate)
}

// FirstIndex returns the index of the first element equal to val,
// or None when no element matches.
func FirstIndex[T comparable](items []T, val T) option.Option[int] {
	return FirstIndexFunc(items, func(item T) bool { return item == val })
}

// FirstIndexFunc returns the index of the first element satisfying the
// predicate, or None when no element matches.
func FirstIndexFunc[T any](items []T, predicate func(T) bool) option.Option[int] {
	for i, item := range items {
		if predicate(item) {
			return option.Some(i)
		}
	}
	return option.None[int]()
}

// LastIndex returns the index of the last element equal to val,
// or None when no element matches.
func LastIndex[T comparable](items []T, val T) option.Option[int] {
	return LastIndexFunc(items, func(item T) bool { return item == val })
}

// LastIndexFunc returns the index of the last element satisfying the
// predicate, or None when no element matches. Scans the whole slice forward,
// retaining the latest match.
func LastIndexFunc[T any](items []T, predicate func(T) bool) option.Option[int] {
	last := option.None[int]()
	for i, item := range items {
		if predicate(item) {
			last = option.Some(i)
		}
	}
	return last
}
