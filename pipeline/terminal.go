package pipeline

import (
	"context"

	"github.com/seqkit/seqkit/option"
)

// Fold runs the pipeline and folds all values left to right into an
// accumulator. An empty pipeline returns init unchanged.
func Fold[T, R any](ctx context.Context, p *Pipeline[T], init R, fn func(R, T) R) (R, error) {
	iter := p.create(ctx)
	defer iter.Close()
	acc := init
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc = fn(acc, val)
	}
}

// Contains reports whether the pipeline yields a value equal to val.
// Stops pulling at the first match.
func Contains[T comparable](ctx context.Context, p *Pipeline[T], val T) (bool, error) {
	return ContainsFunc(ctx, p, func(v T) bool { return v == val })
}

// ContainsFunc reports whether at least one yielded value satisfies the
// predicate. Stops pulling at the first match.
func ContainsFunc[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	iter := p.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if predicate(val) {
			return true, nil
		}
	}
}

// AnySatisfy is ContainsFunc under its quantifier name.
func AnySatisfy[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	return ContainsFunc(ctx, p, predicate)
}

// AllSatisfy reports whether every yielded value satisfies the predicate.
// Vacuously true for an empty pipeline; stops pulling at the first failure.
func AllSatisfy[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (bool, error) {
	iter := p.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !predicate(val) {
			return false, nil
		}
	}
}

// FirstIndex returns the position of the first yielded value satisfying the
// predicate, or None when no value matches. Stops pulling at the match.
func FirstIndex[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (option.Option[int], error) {
	iter := p.create(ctx)
	defer iter.Close()
	for i := 0; ; i++ {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return option.None[int](), err
		}
		if !ok {
			return option.None[int](), nil
		}
		if predicate(val) {
			return option.Some(i), nil
		}
	}
}

// LastIndex returns the position of the last yielded value satisfying the
// predicate, or None when no value matches. Pulls the whole pipeline,
// retaining the latest match.
func LastIndex[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (option.Option[int], error) {
	iter := p.create(ctx)
	defer iter.Close()
	last := option.None[int]()
	for i := 0; ; i++ {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return option.None[int](), err
		}
		if !ok {
			return last, nil
		}
		if predicate(val) {
			last = option.Some(i)
		}
	}
}

// Partition runs the pipeline and splits its values into two groups:
// values failing the predicate first, then values satisfying it, each in
// source order.
func Partition[T any](ctx context.Context, p *Pipeline[T], predicate func(T) bool) (rest, matched []T, err error) {
	iter := p.create(ctx)
	defer iter.Close()
	rest = make([]T, 0)
	matched = make([]T, 0)
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return rest, matched, err
		}
		if !ok {
			return rest, matched, nil
		}
		if predicate(val) {
			matched = append(matched, val)
		} else {
			rest = append(rest, val)
		}
	}
}
