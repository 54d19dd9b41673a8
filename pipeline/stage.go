package pipeline

import (
	"cmp"
	"context"

	kiterrors "github.com/seqkit/seqkit/errors"
	"github.com/seqkit/seqkit/option"
	"github.com/seqkit/seqkit/seq"
)

// Stage is an immutable operation descriptor for the eager Apply API.
// A Stage maps a slice to a slice of the same element type; build one with
// the *Stage constructors and run it with Apply or ApplyChain. Stages that
// change the element type are expressed with the generic operators (Map,
// FlatMap, CompactMap) instead — Go cannot type a heterogeneous descriptor
// list without giving up static checking.
type Stage[T any] struct {
	name string
	run  func(items []T) ([]T, error)
}

// Name returns the stage's operation name, used in error reporting.
func (s Stage[T]) Name() string { return s.name }

// MapStage transforms each element in place of itself. A failing transform
// aborts the chain with a conversion error carrying the element's index.
func MapStage[T any](fn func(T) (T, error)) Stage[T] {
	return Stage[T]{
		name: "map",
		run: func(items []T) ([]T, error) {
			return seq.TryMap(items, fn)
		},
	}
}

// FilterStage keeps elements satisfying the predicate, preserving order.
func FilterStage[T any](predicate func(T) bool) Stage[T] {
	return Stage[T]{
		name: "filter",
		run: func(items []T) ([]T, error) {
			return seq.Filter(items, predicate), nil
		},
	}
}

// SortStage orders elements ascending by natural order, stably.
func SortStage[T cmp.Ordered]() Stage[T] {
	return Stage[T]{
		name: "sort",
		run: func(items []T) ([]T, error) {
			return seq.Sorted(items), nil
		},
	}
}

// SortByStage orders elements by the comparator, stably.
func SortByStage[T any](compare func(a, b T) int) Stage[T] {
	return Stage[T]{
		name: "sort",
		run: func(items []T) ([]T, error) {
			return seq.SortedBy(items, compare), nil
		},
	}
}

// FlatMapStage expands each element into a sub-slice, concatenated in
// source order, one flattening level.
func FlatMapStage[T any](fn func(T) []T) Stage[T] {
	return Stage[T]{
		name: "flat_map",
		run: func(items []T) ([]T, error) {
			return seq.FlatMap(items, fn), nil
		},
	}
}

// CompactMapStage transforms each element into an Option and keeps the
// present values; absent results are dropped, never raised.
func CompactMapStage[T any](fn func(T) option.Option[T]) Stage[T] {
	return Stage[T]{
		name: "compact_map",
		run: func(items []T) ([]T, error) {
			return seq.CompactMap(items, fn), nil
		},
	}
}

// RemoveStage drops elements satisfying the predicate. Unlike
// seq.RemoveWhere it does not mutate chain input; within a chain every
// stage produces a fresh slice.
func RemoveStage[T any](predicate func(T) bool) Stage[T] {
	return Stage[T]{
		name: "remove",
		run: func(items []T) ([]T, error) {
			return seq.Filter(items, func(item T) bool { return !predicate(item) }), nil
		},
	}
}

// Apply runs one stage against items and returns the stage's result.
// The input slice is never mutated.
func Apply[T any](ctx context.Context, items []T, stage Stage[T]) ([]T, error) {
	return ApplyChain(ctx, items, stage)
}

// ApplyChain runs the stages in order, feeding each stage's result to the
// next. Every stage runs to completion before the next starts. A failing
// stage aborts the chain: its error is returned and later stages never run.
func ApplyChain[T any](ctx context.Context, items []T, stages ...Stage[T]) ([]T, error) {
	current := items
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, kiterrors.StageAborted(stage.name, err)
		}
		out, err := stage.run(current)
		if err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}
