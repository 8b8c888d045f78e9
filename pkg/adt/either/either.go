package either

import (
	"errors"
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/option"
)

var (
	// ErrLeft is raised by a forced unwrap of a Left or Nothing.
	ErrLeft = errors.New("either: value is left")
	// ErrFlatten is raised when a nested payload does not fit the requested types.
	ErrFlatten = errors.New("either: cannot flatten")
)

// Either values are built by the constructors, or decoded from JSON into
// a zero value. The zero value reads as Left holding the zero L.
type Either[L, R any] struct {
	variant adt.Variant
	left    L
	right   R
	sealed  bool
}

func Right[L, R any](value R) *Either[L, R] {
	return &Either[L, R]{variant: adt.RightVariant, right: value, sealed: true}
}

func Left[L, R any](value L) *Either[L, R] {
	return &Either[L, R]{variant: adt.LeftVariant, left: value, sealed: true}
}

// Nothing returns the shared valueless Left for the pair of types.
func Nothing[L, R any]() *Either[L, R] {
	return adt.Singleton(func() *Either[L, R] {
		return &Either[L, R]{variant: adt.NothingVariant, sealed: true}
	})
}

func (e *Either[L, R]) IsLeft() bool {
	return e.variant.IsLeft()
}

func (e *Either[L, R]) IsRight() bool {
	return e.variant.IsRight()
}

func (e *Either[L, R]) IsNothing() bool {
	return e.variant.IsNothing()
}

func (e *Either[L, R]) Variant() adt.Variant {
	return e.variant
}

// Payload returns the value of the active arm as any, nil for Nothing.
func (e *Either[L, R]) Payload() any {
	switch e.variant {
	case adt.RightVariant:
		return e.right
	case adt.LeftVariant:
		return e.left
	default:
		return nil
	}
}

func (e *Either[L, R]) either() {}

// Get returns the Right value. It panics with an error wrapping ErrLeft
// on Left and Nothing.
func (e *Either[L, R]) Get() R {
	if !e.IsRight() {
		panic(e.leftErr())
	}
	return e.right
}

// GetRight returns the Right value, or the zero R on Left.
func (e *Either[L, R]) GetRight() R {
	return e.right
}

// GetLeft returns the Left value, or the zero L on Right and Nothing.
func (e *Either[L, R]) GetLeft() L {
	return e.left
}

// TryGet returns the Right value, or an error wrapping ErrLeft.
func (e *Either[L, R]) TryGet() (R, error) {
	if !e.IsRight() {
		var zero R
		return zero, e.leftErr()
	}
	return e.right, nil
}

func (e *Either[L, R]) GetOrElse(fn func() R) R {
	if e.IsRight() {
		return e.right
	}
	return fn()
}

func (e *Either[L, R]) GetOrElseGet(defaultValue R) R {
	if e.IsRight() {
		return e.right
	}
	return defaultValue
}

// GetOrThrow returns the Right value. On Left it panics with the first
// non-nil err, or with an error wrapping ErrLeft.
func (e *Either[L, R]) GetOrThrow(errs ...error) R {
	if e.IsRight() {
		return e.right
	}
	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
	panic(e.leftErr())
}

// OrElse returns e when it is Right, the alternative otherwise.
func (e *Either[L, R]) OrElse(fn func() *Either[L, R]) *Either[L, R] {
	if e.IsRight() {
		return e
	}
	return fn()
}

func (e *Either[L, R]) Bimap(onLeft func(L) L, onRight func(R) R) *Either[L, R] {
	return Bimap(e, onLeft, onRight)
}

// Swap exchanges the arms. Nothing stays Nothing.
func (e *Either[L, R]) Swap() *Either[R, L] {
	switch e.variant {
	case adt.RightVariant:
		return Left[R, L](e.right)
	case adt.LeftVariant:
		return Right[R](e.left)
	default:
		return Nothing[R, L]()
	}
}

func (e *Either[L, R]) ToOption() *option.Option[R] {
	if e.IsRight() {
		return option.Some(e.right)
	}
	return option.Nothing[R]()
}

// Equals reports whether other is an Either of the same types and variant
// holding an equal value. Nothing equals only itself. It never panics.
func (e *Either[L, R]) Equals(other any) bool {
	var that *Either[L, R]
	switch v := other.(type) {
	case *Either[L, R]:
		that = v
	case Either[L, R]:
		that = &v
	default:
		return false
	}

	if e == nil || that == nil {
		return e == that
	}
	if e == that {
		return true
	}
	if e.variant != that.variant {
		return false
	}

	switch e.variant {
	case adt.RightVariant:
		return adt.Equal(e.right, that.right)
	case adt.LeftVariant:
		return adt.Equal(e.left, that.left)
	default:
		return false
	}
}

func (e *Either[L, R]) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.variant {
	case adt.RightVariant:
		return fmt.Sprintf("Right(%v)", e.right)
	case adt.LeftVariant:
		return fmt.Sprintf("Left(%v)", e.left)
	default:
		return "Nothing"
	}
}

func (e *Either[L, R]) leftErr() error {
	if e.IsNothing() {
		return fmt.Errorf("%w: nothing", ErrLeft)
	}
	return fmt.Errorf("%w: %v", ErrLeft, e.left)
}

// leftAs carries a Left or Nothing over to a new Right type. When the
// Right type does not change, e itself is returned.
func leftAs[R2, L, R any](e *Either[L, R]) *Either[L, R2] {
	if same, ok := any(e).(*Either[L, R2]); ok {
		return same
	}
	if e.IsNothing() {
		return Nothing[L, R2]()
	}
	return Left[L, R2](e.left)
}
