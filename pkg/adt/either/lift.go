package either

import "github.com/ib-77/adt/pkg/adt"

// Lift wraps fn so that a panic becomes a Left holding *adt.PanicError.
// The wrapper itself never panics.
func Lift[R any](fn func(args ...any) R) func(args ...any) *Either[error, R] {
	return func(args ...any) *Either[error, R] {
		return guard(func() R { return fn(args...) })
	}
}

func Lift0[R any](fn func() R) func() *Either[error, R] {
	return func() *Either[error, R] {
		return guard(fn)
	}
}

func Lift1[A, R any](fn func(A) R) func(A) *Either[error, R] {
	return func(a A) *Either[error, R] {
		return guard(func() R { return fn(a) })
	}
}

func Lift2[A, B, R any](fn func(A, B) R) func(A, B) *Either[error, R] {
	return func(a A, b B) *Either[error, R] {
		return guard(func() R { return fn(a, b) })
	}
}

// LiftErr1 is Lift1 for functions that also report failure by error.
func LiftErr1[A, R any](fn func(A) (R, error)) func(A) *Either[error, R] {
	return func(a A) *Either[error, R] {
		var (
			out R
			err error
		)
		if panicErr := adt.Recover(func() { out, err = fn(a) }); panicErr != nil {
			return Left[error, R](panicErr)
		}
		return FromError(out, err)
	}
}

func guard[R any](fn func() R) *Either[error, R] {
	var out R
	if err := adt.Recover(func() { out = fn() }); err != nil {
		return Left[error, R](err)
	}
	return Right[error](out)
}
