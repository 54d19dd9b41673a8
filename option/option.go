package option

import "fmt"

// Option holds either a value of type T or nothing.
// The zero value is the absent Option.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromResult converts a (value, error) pair into an Option.
// A non-nil error yields the absent Option; the error itself is discarded.
// Designed to wrap parse-style calls: option.FromResult(strconv.Atoi(s)).
func FromResult[T any](v T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return Some(v)
}

// FromPtr converts a possibly-nil pointer into an Option over its value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the held value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// String implements fmt.Stringer for log and test output.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforms the held value, passing absence through unchanged.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}
