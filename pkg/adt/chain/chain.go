package chain

import (
	"github.com/ib-77/adt/pkg/adt/either"
)

// Chain wraps an Either to enable fluent chaining
type Chain[T any] struct {
	result *either.Either[error, T]
}

// Start creates a new chain from an Either
func Start[T any](result *either.Either[error, T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a Right value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{result: either.Right[error](value)}
}

// Result returns the underlying Either
func (c *Chain[T]) Result() *either.Either[error, T] {
	return c.result
}

// Then chains a function that returns an Either
func Then[T, U any](c *Chain[T], onRight func(T) *either.Either[error, U]) *Chain[U] {
	return &Chain[U]{result: either.FlatMap(c.result, onRight)}
}

// ThenTry chains a function that returns (U, error); panics become Left too
func ThenTry[T, U any](c *Chain[T], tryOnRight func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: either.FlatMap(c.result, either.LiftErr1(tryOnRight))}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onRight func(T) U) *Chain[U] {
	return &Chain[U]{result: either.Map(c.result, onRight)}
}

// Validate turns a Right that fails validation into a Left
func (c *Chain[T]) Validate(validate func(T) (isValid bool, errMsg string)) *Chain[T] {
	return &Chain[T]{result: either.Validate(c.result, validate)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onRight func(T)) *Chain[T] {
	return &Chain[T]{result: either.Tee(c.result, onRight)}
}

// Finally collapses the chain into a final value
func Finally[T, U any](c *Chain[T], onRight func(T) U, onLeft func(error) U) U {
	return either.Cata(c.result, onLeft, onRight)
}
