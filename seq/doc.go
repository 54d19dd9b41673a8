// Package seq provides eager, generic transformation operations over slices.
//
// Every operation is pure and order-preserving: it reads its input once, left
// to right, and returns a fresh result without touching the input. The one
// exception is RemoveWhere, which mutates its target in place. Empty input is
// never an error; each operation has a defined empty-input result.
//
// # Operations
//
// Transforming:
//
//   - Map: transform each element (total transform)
//   - TryMap: transform with a partial function; first failure aborts
//   - Filter: keep elements matching a predicate
//   - Reduce: left-to-right fold into an accumulator
//   - FlatMap: element → sub-slice, flattened one level
//   - CompactMap: element → Option, absent results dropped
//
// Searching:
//
//   - Contains / ContainsFunc: first-match short-circuit
//   - AllSatisfy / AnySatisfy: short-circuit quantifiers
//   - FirstIndex / LastIndex (and *Func variants): Option-typed indexes
//
// Reordering and grouping:
//
//   - Sorted / SortedBy: stable sorted copy
//   - Partition: split by predicate, non-matching group first
//   - GroupBy, Unique, Chunk, Reverse
//
// # Usage
//
//	scores := []string{"1", "2", "three", "four", "5"}
//	nums := seq.CompactMap(scores, func(s string) option.Option[int] {
//	    return option.FromResult(strconv.Atoi(s))
//	})
//	// nums == []int{1, 2, 5}
package seq
