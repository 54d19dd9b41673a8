// Package pipeline provides composable, pull-based collection pipelines.
//
// Pipelines are lazy — no work happens until values are pulled via Collect,
// Drain, ForEach, or one of the short-circuiting terminals. Each stage pulls
// from the previous stage on demand, one element at a time, in source order.
// Execution is synchronous and single-goroutine: a pipeline is safe to run
// from many call sites at once as long as no caller mutates a shared input
// while another run is pulling from it.
//
// # Operators
//
// Stages (pipeline in, pipeline out):
//
//   - Map: transform each value; a failing transform aborts the run
//   - FlatMap: transform each value into a slice, flattened one level
//   - CompactMap: transform each value into an Option, absent values dropped
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value
//   - Log: Tap that writes each value to a structured logger
//   - Reduce: accumulate all values into one result
//   - Sort / SortBy: buffer everything, emit in stable sorted order
//   - Chunk: group consecutive values into fixed-size slices
//   - Concat: join pipelines sequentially
//
// Terminals (pull until decided, then stop):
//
//   - Collect, Drain, ForEach, Fold
//   - Contains, ContainsFunc, AnySatisfy, AllSatisfy
//   - FirstIndex, LastIndex (Option-typed index results)
//   - Partition (non-matching group first)
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := pipeline.Map(src, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	evens := pipeline.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results, _ := pipeline.Collect(ctx, evens)
//
// For one-shot, same-type transformations the Stage descriptor API runs an
// ordered list of operations eagerly, each stage completing before the next:
//
//	out, err := pipeline.ApplyChain(ctx, words,
//	    pipeline.FilterStage(func(s string) bool { return s != "" }),
//	    pipeline.SortStage[string](),
//	)
package pipeline
