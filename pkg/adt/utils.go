package adt

import (
	"reflect"
)

func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Equal compares two payloads. Values implementing Equaler decide for
// themselves, errors are equal only when identical, everything else is
// compared structurally. An untyped nil equals only an untyped nil; typed
// nils are equal when their types match. Equal never panics.
func Equal(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if eq, ok := a.(Equaler); ok {
		defer func() {
			if recover() != nil {
				equal = false
			}
		}()
		return eq.Equals(b)
	}

	_, aErr := a.(error)
	_, bErr := b.(error)
	if aErr || bErr {
		return identical(a, b)
	}

	return identical(a, b) || reflect.DeepEqual(a, b)
}

func identical(a, b any) bool {
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
