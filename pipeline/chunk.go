package pipeline

import "context"

// Chunk groups consecutive values into slices of up to size elements and
// emits each group as one value. The final group may be shorter. size < 1
// is treated as 1.
//
// On upstream error a partial group is emitted first; the error surfaces on
// the following pull.
func Chunk[T any](p *Pipeline[T], size int) *Pipeline[[]T] {
	if size < 1 {
		size = 1
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: p.create(ctx), size: size}
		},
	}
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	err    error
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.err != nil {
		err = it.err
		it.err = nil
		return nil, false, err
	}
	if it.done {
		return nil, false, nil
	}

	var chunk []T
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(chunk) > 0 {
				it.err = err
				return chunk, true, nil
			}
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(chunk) > 0 {
				return chunk, true, nil
			}
			return nil, false, nil
		}
		chunk = append(chunk, val)
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }
