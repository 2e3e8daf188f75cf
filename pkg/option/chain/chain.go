package chain

import "github.com/ib-77/opt3/pkg/option"

type Chain[T any] struct {
	o option.Option[T]
}

func Start[T any](o option.Option[T]) Chain[T] {
	return Chain[T]{o: o}
}

func FromValue[T any](v T) Chain[T] {
	return Start(option.Some(v))
}

func (c Chain[T]) Option() option.Option[T] {
	return c.o
}

// Then composes functions that already return option.Option[T]
func (c Chain[T]) Then(onSome func(t T) option.Option[T]) Chain[T] {
	if c.o.IsNone() {
		return c
	}
	return Chain[T]{o: onSome(c.o.MustUnwrap())}
}

// Map transforms the present value to a new value
func (c Chain[T]) Map(onSome func(t T) T) Chain[T] {
	if c.o.IsNone() {
		return c
	}
	return Chain[T]{o: option.Some(onSome(c.o.MustUnwrap()))}
}

// Filter drops the value to None when pred rejects it
func (c Chain[T]) Filter(pred func(t T) bool) Chain[T] {
	return Chain[T]{o: c.o.Filter(pred)}
}

// Ensure triggers side effects for either variant without changing the chain
func (c Chain[T]) Ensure(onSome func(T), onNone func()) Chain[T] {
	if c.o.IsNone() {
		if onNone != nil {
			onNone()
		}
		return c
	}

	if onSome != nil {
		onSome(c.o.MustUnwrap())
	}
	return c
}

// Or returns the first chain that holds a value, preferring the receiver
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.o.IsSome() {
		return c
	}
	return alternative
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onSome func(T) T, onNone func() T) T {
	if c.o.IsSome() {
		return onSome(c.o.MustUnwrap())
	}
	return onNone()
}
