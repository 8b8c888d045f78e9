package adt

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// PanicError is a recovered panic turned into a value.
type PanicError struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Value     any
	Stack     []byte
}

func NewPanicError(value any) *PanicError {
	return &PanicError{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Value:     value,
		Stack:     debug.Stack(),
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic %s: %v", e.ID, e.Value)
}

// Unwrap exposes the panic value when it was an error, so errors.Is and
// errors.As see through the wrapper.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover runs fn and returns the panic it raised, if any, as *PanicError.
func Recover(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	fn()
	return nil
}
