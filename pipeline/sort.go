package pipeline

import (
	"cmp"
	"context"

	"github.com/seqkit/seqkit/seq"
)

// Sort buffers the whole upstream, then yields its values in ascending
// natural order. The sort is stable. Sorting cannot stream, so this stage
// pulls everything on the first Next.
func Sort[T cmp.Ordered](p *Pipeline[T]) *Pipeline[T] {
	return SortBy(p, cmp.Compare)
}

// SortBy buffers the whole upstream, then yields its values ordered by the
// comparator (negative when a sorts before b, zero on ties, positive
// otherwise). Stable: tied values keep their upstream order. A comparator
// that is not a consistent ordering yields some unspecified permutation.
func SortBy[T any](p *Pipeline[T], compare func(a, b T) int) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &sortIter[T]{source: p.create(ctx), compare: compare}
		},
	}
}

type sortIter[T any] struct {
	source  Iterator[T]
	compare func(a, b T) int
	sorted  []T
	pos     int
	filled  bool
}

func (it *sortIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.filled {
		var buf []T
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				var zero T
				return zero, false, err
			}
			if !ok {
				break
			}
			buf = append(buf, val)
		}
		it.sorted = seq.SortedBy(buf, it.compare)
		it.filled = true
	}
	if it.pos >= len(it.sorted) {
		var zero T
		return zero, false, nil
	}
	val := it.sorted[it.pos]
	it.pos++
	return val, true, nil
}

func (it *sortIter[T]) Close() error { return it.source.Close() }
