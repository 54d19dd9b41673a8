package seq

import (
	kiterrors "github.com/seqkit/seqkit/errors"
	"github.com/seqkit/seqkit/option"
)

// Map transforms each element using fn. The result has the same length and
// order as the input; empty input yields an empty result.
func Map[T, U any](items []T, fn func(T) U) []U {
	result := make([]U, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

// TryMap transforms each element using a partial fn. The first element for
// which fn fails aborts the pass; the returned error is a
// *errors.TransformError carrying the element's index and value.
// Use CompactMap instead when failures should be dropped rather than raised.
func TryMap[T, U any](items []T, fn func(T) (U, error)) ([]U, error) {
	result := make([]U, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, kiterrors.Conversion("map", i, err).WithValue(item)
		}
		result[i] = v
	}
	return result, nil
}

// Filter returns a new slice containing only elements that satisfy the
// predicate, preserving their relative order.
func Filter[T any](items []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Reduce folds the slice left to right into an accumulator.
// Empty input returns init unchanged.
func Reduce[T, A any](items []T, init A, combine func(A, T) A) A {
	acc := init
	for _, item := range items {
		acc = combine(acc, item)
	}
	return acc
}

// FlatMap transforms each element into a sub-slice and concatenates the
// results in source order. Flattening is one level deep; apply again to
// flatten deeper nesting.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	result := make([]U, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item)...)
	}
	return result
}

// CompactMap transforms each element into an Option and keeps only the
// present values, preserving order. A transform that cannot produce a value
// returns None and the element is dropped; nothing is raised.
func CompactMap[T, U any](items []T, fn func(T) option.Option[U]) []U {
	result := make([]U, 0, len(items))
	for _, item := range items {
		if v, ok := fn(item).Get(); ok {
			result = append(result, v)
		}
	}
	return result
}
