package option

import (
	"fmt"
	"reflect"
)

// Option represents an optional value: every Option is either Some and
// holds a value, or None and holds nothing. The zero value is None.
type Option[T any] struct {
	val    T
	isSome bool
}

const noneMsg = "Value is NONE."

func Some[T any](v T) Option[T] {
	return Option[T]{val: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Maybe returns Some(v) unless v is a nil sentinel (nil interface,
// pointer, map, slice, func or channel), in which case it returns None.
func Maybe[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Unwrap returns the wrapped value, or an *EmptyValueError if the
// Option is None.
func (o Option[T]) Unwrap() (T, error) {
	if o.isSome {
		return o.val, nil
	}
	return o.val, &EmptyValueError{Msg: noneMsg}
}

// MustUnwrap returns the wrapped value and panics with an
// *EmptyValueError if the Option is None.
func (o Option[T]) MustUnwrap() T {
	if !o.isSome {
		panic(&EmptyValueError{Msg: noneMsg})
	}
	return o.val
}

// Expect is Unwrap with a caller-supplied failure message.
func (o Option[T]) Expect(msg string) (T, error) {
	if o.isSome {
		return o.val, nil
	}
	return o.val, &EmptyValueError{Msg: msg}
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.val
	}
	return def
}

func (o Option[T]) UnwrapOrElse(supplier func() T) T {
	if o.isSome {
		return o.val
	}
	return supplier()
}

// Filter returns the Option unchanged when it is Some and pred accepts
// the wrapped value; otherwise it returns None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.isSome && pred(o.val) {
		return o
	}
	return None[T]()
}

// Equal reports whether both Options are the same variant holding
// deeply equal values. Two None values are always equal.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.isSome != other.isSome {
		return false
	}
	if !o.isSome {
		return true
	}
	return reflect.DeepEqual(o.val, other.val)
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "None"
}

// Map applies fn to the wrapped value and wraps the outcome, or returns
// None when o is None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.isSome {
		return Some(fn(o.val))
	}
	return None[U]()
}

// FlatMap applies fn to the wrapped value and returns its result as is,
// without re-wrapping. None stays None.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.isSome {
		return fn(o.val)
	}
	return None[U]()
}

// MapOr applies fn to the wrapped value, or returns def when o is None.
func MapOr[T, U any](o Option[T], fn func(T) U, def U) U {
	if o.isSome {
		return fn(o.val)
	}
	return def
}

// MapOrElse applies fn to the wrapped value, or computes the fallback
// with def when o is None.
func MapOrElse[T, U any](o Option[T], fn func(T) U, def func() U) U {
	if o.isSome {
		return fn(o.val)
	}
	return def()
}
