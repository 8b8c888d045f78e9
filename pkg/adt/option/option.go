package option

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ib-77/adt/pkg/adt"
)

var (
	ErrNothing = errors.New("option: get on nothing")
	ErrJSON    = errors.New("option: malformed json")
)

// Option holds a value or nothing. The zero Option is empty but is not
// the shared Nothing.
type Option[T any] struct {
	variant adt.Variant
	value   T
	sealed  bool
}

type Maybe[T any] = Option[T]

func Some[T any](value T) *Option[T] {
	return &Option[T]{variant: adt.RightVariant, value: value, sealed: true}
}

// Nothing returns the shared empty Option for T.
func Nothing[T any]() *Option[T] {
	return adt.Singleton(func() *Option[T] {
		return &Option[T]{variant: adt.NothingVariant, sealed: true}
	})
}

// Of returns Nothing for nil pointers, maps, slices, funcs, chans and
// interfaces, Some otherwise.
func Of[T any](value T) *Option[T] {
	if adt.IsNil(value) {
		return Nothing[T]()
	}
	return Some(value)
}

func FromPtr[T any](ptr *T) *Option[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Some(*ptr)
}

func (o *Option[T]) IsDefined() bool {
	return o.variant.IsRight()
}

func (o *Option[T]) IsEmpty() bool {
	return !o.IsDefined()
}

func (o *Option[T]) Variant() adt.Variant {
	return o.variant
}

func (o *Option[T]) Payload() any {
	if o.IsDefined() {
		return o.value
	}
	return nil
}

// Get returns the value; it panics with ErrNothing on Nothing.
func (o *Option[T]) Get() T {
	if !o.IsDefined() {
		panic(ErrNothing)
	}
	return o.value
}

func (o *Option[T]) GetOrElse(fn func() T) T {
	if o.IsDefined() {
		return o.value
	}
	return fn()
}

func (o *Option[T]) GetOrElseGet(defaultValue T) T {
	if o.IsDefined() {
		return o.value
	}
	return defaultValue
}

func (o *Option[T]) OrElse(fn func() *Option[T]) *Option[T] {
	if o.IsDefined() {
		return o
	}
	return fn()
}

func (o *Option[T]) ToSlice() []T {
	if o.IsDefined() {
		return []T{o.value}
	}
	return []T{}
}

func (o *Option[T]) ToPtr() *T {
	if o.IsDefined() {
		v := o.value
		return &v
	}
	return nil
}

// Equals reports whether other is an Option of the same type and variant
// holding an equal value. Nothing equals only itself. It never panics.
func (o *Option[T]) Equals(other any) bool {
	var that *Option[T]
	switch v := other.(type) {
	case *Option[T]:
		that = v
	case Option[T]:
		that = &v
	default:
		return false
	}

	if o == nil || that == nil {
		return o == that
	}
	if o == that {
		return true
	}
	if !o.IsDefined() || !that.IsDefined() {
		return false
	}
	return adt.Equal(o.value, that.value)
}

func (o *Option[T]) String() string {
	if o == nil {
		return "<nil>"
	}
	if o.IsDefined() {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "Nothing"
}

// MarshalJSON encodes Some as its value and Nothing as null.
func (o *Option[T]) MarshalJSON() ([]byte, error) {
	if !o.IsDefined() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes into a zero Option, such as a field json
// allocates. Built Options are never overwritten. null leaves the Option
// empty; FromJSON maps it to Nothing instead.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if o.sealed {
		return fmt.Errorf("%w: cannot decode into a built %v", ErrJSON, o)
	}
	if string(data) == "null" {
		*o = Option[T]{variant: adt.LeftVariant, sealed: true}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	*o = Option[T]{variant: adt.RightVariant, value: v, sealed: true}
	return nil
}

func FromJSON[T any](data []byte) (*Option[T], error) {
	o := new(Option[T])
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	if !o.IsDefined() {
		return Nothing[T](), nil
	}
	return o, nil
}

func Map[T, U any](o *Option[T], fn func(T) U) *Option[U] {
	if o.IsDefined() {
		return Some(fn(o.value))
	}
	return Nothing[U]()
}

func FlatMap[T, U any](o *Option[T], fn func(T) *Option[U]) *Option[U] {
	if o.IsDefined() {
		return fn(o.value)
	}
	return Nothing[U]()
}

// Filter returns Nothing when the value does not satisfy predicate.
func Filter[T any](o *Option[T], predicate func(T) bool) *Option[T] {
	if o.IsDefined() && predicate(o.value) {
		return o
	}
	return Nothing[T]()
}
