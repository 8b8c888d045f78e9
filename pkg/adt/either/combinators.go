package either

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/adt/pkg/adt"
)

// Bimap maps the Left value with onLeft or the Right value with onRight,
// keeping the variant. Nothing has no value to map and stays Nothing.
func Bimap[L, R, L2, R2 any](e *Either[L, R], onLeft func(L) L2, onRight func(R) R2) *Either[L2, R2] {
	switch e.variant {
	case adt.RightVariant:
		return Right[L2](onRight(e.right))
	case adt.LeftVariant:
		return Left[L2, R2](onLeft(e.left))
	default:
		return Nothing[L2, R2]()
	}
}

// Cata collapses e into a single value. Nothing is handed to onLeft as
// the zero L.
func Cata[L, R, X any](e *Either[L, R], onLeft func(L) X, onRight func(R) X) X {
	if e.IsRight() {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func Map[L, R, U any](e *Either[L, R], onRight func(R) U) *Either[L, U] {
	if e.IsRight() {
		return Right[L](onRight(e.right))
	}
	return leftAs[U](e)
}

func MapLeft[L, R, U any](e *Either[L, R], onLeft func(L) U) *Either[U, R] {
	switch e.variant {
	case adt.RightVariant:
		return Right[U](e.right)
	case adt.LeftVariant:
		return Left[U, R](onLeft(e.left))
	default:
		return Nothing[U, R]()
	}
}

func FlatMap[L, R, U any](e *Either[L, R], onRight func(R) *Either[L, U]) *Either[L, U] {
	if e.IsRight() {
		return onRight(e.right)
	}
	return leftAs[U](e)
}

// Mbind applies the function carried by other to the Right value of e.
// The first Left wins: e when it is Left, otherwise other. A Left e is
// returned as is when R2 is R. The result of the function is returned as is.
func Mbind[L, R, R2 any](e *Either[L, R], other *Either[L, func(R) *Either[L, R2]]) *Either[L, R2] {
	if e.IsLeft() {
		return leftAs[R2](e)
	}
	if other.IsLeft() {
		return leftAs[R2](other)
	}
	return other.right(e.right)
}

// Join removes one level of nesting.
func Join[L, R any](e *Either[L, *Either[L, R]]) *Either[L, R] {
	if e.IsLeft() {
		return leftAs[R](e)
	}
	if e.right == nil {
		return Right[L, R](*new(R))
	}
	return e.right
}

type nested interface {
	adt.Tagged
	either()
}

// Flatten unwraps Rights whose payload is itself an Either, at any depth.
// The first Left met is the result; a plain Right payload ends the walk.
// Payloads that do not fit L2 or R2 panic with an error wrapping ErrFlatten.
func Flatten[L2, R2 any](e adt.Tagged) *Either[L2, R2] {
	if adt.IsNil(e) {
		panic(fmt.Errorf("%w: nil either", ErrFlatten))
	}

	current := e
	for {
		switch current.Variant() {
		case adt.NothingVariant:
			return Nothing[L2, R2]()
		case adt.LeftVariant:
			return Left[L2, R2](cast[L2](current.Payload()))
		}

		payload := current.Payload()
		inner, ok := payload.(nested)
		if !ok || adt.IsNil(inner) {
			return Right[L2](cast[R2](payload))
		}
		current = inner
	}
}

func cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Errorf("%w: %T is not %v", ErrFlatten, v, reflect.TypeFor[T]()))
	}
	return t
}

// Tee runs sideEffect on the Right value and returns e.
func Tee[L, R any](e *Either[L, R], sideEffect func(R)) *Either[L, R] {
	if e.IsRight() {
		sideEffect(e.right)
	}
	return e
}

// Try calls onRight and turns its error into a Left.
func Try[R, U any](e *Either[error, R], onRight func(R) (U, error)) *Either[error, U] {
	if e.IsRight() {
		out, err := onRight(e.right)
		if err != nil {
			return Left[error, U](err)
		}
		return Right[error](out)
	}
	return leftAs[U](e)
}

func Validate[R any](e *Either[error, R], validate func(R) (isValid bool, errMsg string)) *Either[error, R] {
	if e.IsRight() {
		if isValid, errMsg := validate(e.right); !isValid {
			return Left[error, R](errors.New(errMsg))
		}
	}
	return e
}

func FromError[R any](value R, err error) *Either[error, R] {
	if err != nil {
		return Left[error, R](err)
	}
	return Right[error](value)
}

// ToError returns the Right value, or the Left error. Nothing and a nil
// Left become an error wrapping ErrLeft.
func ToError[R any](e *Either[error, R]) (R, error) {
	if e.IsRight() {
		return e.right, nil
	}
	var zero R
	if e.left == nil {
		return zero, e.leftErr()
	}
	return zero, e.left
}
