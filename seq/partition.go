package seq

// Partition splits the slice into two groups: elements failing the predicate
// first, then elements satisfying it. Both groups preserve the relative
// order of their elements, and their concatenation is a permutation of the
// input.
func Partition[T any](items []T, predicate func(T) bool) (rest, matched []T) {
	rest = make([]T, 0)
	matched = make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	return rest, matched
}

// GroupBy buckets elements by the key returned from keyFn. Within each
// bucket, elements keep their source order.
func GroupBy[T any, K comparable](items []T, keyFn func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := keyFn(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Unique returns a slice with duplicate values removed, keeping the first
// occurrence of each value.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Chunk splits the slice into consecutive groups of up to size elements.
// The last chunk may be shorter. size < 1 is treated as 1.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}
