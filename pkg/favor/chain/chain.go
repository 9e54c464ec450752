package chain

import (
	"github.com/favor-fp/favor/pkg/favor"
	"github.com/favor-fp/favor/pkg/favor/try"
)

// Chain wraps a try.Try to enable fluent synchronous composition.
type Chain[T any] struct {
	res try.Try[T]
}

// Start creates a new chain from a try.Try
func Start[T any](r try.Try[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](v T) Chain[T] {
	return Start(try.Success(v))
}

// Result returns the underlying try.Try
func (c Chain[T]) Result() try.Try[T] {
	return c.res
}

// Then composes functions that already return try.Try[T]
func (c Chain[T]) Then(onSuccess func(t T) try.Try[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: onSuccess(c.res.Get())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(f func(t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	v, err := f(c.res.Get())
	if err != nil {
		return Chain[T]{res: try.Failure[T](err)}
	}
	return Chain[T]{res: try.Success(v)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{res: try.Success(onSuccess(c.res.Get()))}
}

// Recover turns a failure back into a success via f; a success is untouched
func (c Chain[T]) Recover(f func(err error) T) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T]{res: try.Success(f(c.res.GetError()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess favor.Consumer[T], onFailure favor.Consumer[error]) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.GetError())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Get())
	}
	return c
}

// Or picks the first successful chain of the two, falling back to the first
// failure when neither succeeded.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failing chain of the two, the second one otherwise.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Then chains a function that returns try.Try[U]
func Then[T, U any](c Chain[T], onSuccess func(t T) try.Try[U]) Chain[U] {
	return Chain[U]{res: try.FlatMap(c.res, onSuccess)}
}

// ThenTrying chains a function that returns (U, error)
func ThenTrying[T, U any](c Chain[T], f func(t T) (U, error)) Chain[U] {
	return Chain[U]{res: try.FlatMap(c.res, func(t T) try.Try[U] {
		u, err := f(t)
		if err != nil {
			return try.Failure[U](err)
		}
		return try.Success(u)
	})}
}

// MapTo chains a pure transformation function
func MapTo[T, U any](c Chain[T], onSuccess favor.Function1[T, U]) Chain[U] {
	return Chain[U]{res: try.Map(c.res, onSuccess)}
}

// Finally collapses the chain to a final value, delegating to try.Fold
func Finally[T, U any](c Chain[T],
	onSuccess favor.Function1[T, U], onFailure favor.Function1[error, U]) U {
	return try.Fold(c.res, onFailure, onSuccess)
}
