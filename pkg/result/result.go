package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/opt3/pkg/option"
)

// Result represents either success (Ok, holding a value of type T) or
// failure (Err, holding an error value of type E). The zero value
// behaves as Err of E's zero value.
type Result[T, E any] struct {
	val  T
	err  E
	isOk bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v, isOk: true}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Of adapts a conventional (value, error) return into a Result: Err
// when err is non-nil, Ok otherwise.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Ok converts the success channel into an Option: Some of the value
// when the Result is Ok, None otherwise.
func (r Result[T, E]) Ok() option.Option[T] {
	if r.isOk {
		return option.Some(r.val)
	}
	return option.None[T]()
}

// Err converts the error channel into an Option: Some of the error
// value when the Result is Err, None otherwise.
func (r Result[T, E]) Err() option.Option[E] {
	if !r.isOk {
		return option.Some(r.err)
	}
	return option.None[E]()
}

// Unwrap returns the success value, or an *UnwrapError carrying the
// wrapped error value when the Result is Err.
func (r Result[T, E]) Unwrap() (T, error) {
	if r.isOk {
		return r.val, nil
	}
	return r.val, &UnwrapError{Payload: r.err}
}

// MustUnwrap returns the success value and panics with an *UnwrapError
// when the Result is Err.
func (r Result[T, E]) MustUnwrap() T {
	if !r.isOk {
		panic(&UnwrapError{Payload: r.err})
	}
	return r.val
}

// UnwrapErr returns the error value, or an *UnwrapError carrying the
// wrapped success value when the Result is Ok.
func (r Result[T, E]) UnwrapErr() (E, error) {
	if r.isOk {
		return r.err, &UnwrapError{Payload: r.val}
	}
	return r.err, nil
}

// MustUnwrapErr returns the error value and panics with an *UnwrapError
// when the Result is Ok.
func (r Result[T, E]) MustUnwrapErr() E {
	if r.isOk {
		panic(&UnwrapError{Payload: r.val})
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied failure message.
func (r Result[T, E]) Expect(msg string) (T, error) {
	if r.isOk {
		return r.val, nil
	}
	return r.val, &UnwrapError{Payload: msg}
}

// ExpectErr is UnwrapErr with a caller-supplied failure message.
func (r Result[T, E]) ExpectErr(msg string) (E, error) {
	if r.isOk {
		return r.err, &UnwrapError{Payload: msg}
	}
	return r.err, nil
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.val
	}
	return def
}

// UnwrapOrElse returns the success value, or computes a fallback from
// the error value.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isOk {
		return r.val
	}
	return fn(r.err)
}

// Equal reports whether both Results are the same variant holding
// deeply equal payloads on the active channel.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.val, other.val)
	}
	return reflect.DeepEqual(r.err, other.err)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies fn to the success value, leaving an Err unchanged.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.val))
	}
	return Result[U, E]{err: r.err}
}

// MapErr applies fn to the error value, leaving an Ok unchanged.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.val)
	}
	return Err[T, F](fn(r.err))
}

// FlatMap applies fn to the success value and returns its result as is,
// without re-wrapping. An Err passes through unchanged.
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return fn(r.val)
	}
	return Result[U, E]{err: r.err}
}
