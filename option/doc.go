// Package option provides a tagged present/absent wrapper for values.
//
// Option[T] replaces nil pointers and sentinel values wherever an operation
// may produce no result: seq.CompactMap drops absent transform results, and
// the index searches return an absent Option instead of -1.
//
// # Usage
//
//	n := option.FromResult(strconv.Atoi("42")) // Some(42)
//	if v, ok := n.Get(); ok {
//	    fmt.Println(v)
//	}
package option
