package chain

import "github.com/ib-77/opt3/pkg/result"

// Chain wraps result.Result[T, error], the common case where the error
// channel carries a plain Go error.
type Chain[T any] struct {
	r result.Result[T, error]
}

func Start[T any](r result.Result[T, error]) Chain[T] {
	return Chain[T]{r: r}
}

func FromValue[T any](v T) Chain[T] {
	return Start(result.Ok[T, error](v))
}

func (c Chain[T]) Result() result.Result[T, error] {
	return c.r
}

// Then composes functions that already return result.Result[T, error]
func (c Chain[T]) Then(onOk func(t T) result.Result[T, error]) Chain[T] {
	if c.r.IsErr() {
		return c
	}
	return Chain[T]{r: onOk(c.r.MustUnwrap())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	if c.r.IsErr() {
		return c
	}
	return Chain[T]{r: result.Of(try(c.r.MustUnwrap()))}
}

// Map transforms the success value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.r.IsErr() {
		return c
	}
	return Chain[T]{r: result.Ok[T, error](onOk(c.r.MustUnwrap()))}
}

// Ensure triggers side effects for either variant without changing the chain
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.r.IsErr() {
		if onErr != nil {
			onErr(c.r.MustUnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.r.MustUnwrap())
	}
	return c
}

// Or returns the first chain that holds a success, preferring the receiver
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.r.IsOk() {
		return c
	}
	return alternative
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onOk func(T) T, onErr func(error) T) T {
	if c.r.IsOk() {
		return onOk(c.r.MustUnwrap())
	}
	return onErr(c.r.MustUnwrapErr())
}
