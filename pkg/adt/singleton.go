package adt

import (
	"reflect"
	"sync"
)

var singletons sync.Map // reflect.Type -> *T

// Singleton returns the one process-wide instance of T, building it on
// first use. Every instantiation of a generic T gets its own instance.
func Singleton[T any](build func() *T) *T {
	key := reflect.TypeFor[T]()
	if v, ok := singletons.Load(key); ok {
		return v.(*T)
	}
	v, _ := singletons.LoadOrStore(key, build())
	return v.(*T)
}
