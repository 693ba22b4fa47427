// Package action provides the building blocks of the action layer: a
// Result type that makes failure an ordinary value, and wrappers that
// normalize every error an action can produce into the closed AppError
// taxonomy. Actions never panic outward and never return raw errors.
package action

import (
	"fmt"

	"github.com/fieldday/api/internal/model"
)

// Result is a tagged union holding either a success value or an
// *model.AppError, never both. The zero value is a failure with no error
// attached; use OK and Err to construct valid results.
type Result[T any] struct {
	ok   bool
	data T
	err  *model.AppError
}

// OK creates a successful result carrying data
func OK[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

// Err creates a failed result carrying err
func Err[T any](err *model.AppError) Result[T] {
	return Result[T]{err: err}
}

// Success reports whether the result carries data
func (r Result[T]) Success() bool {
	return r.ok
}

// Data returns the success value, or the zero value on failure
func (r Result[T]) Data() T {
	return r.data
}

// Error returns the failure, or nil on success
func (r Result[T]) Error() *model.AppError {
	return r.err
}

// Unwrap returns the success value and panics on failure. Only use it
// where failure has already been excluded.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("unwrap of failed result: %v", r.err))
	}
	return r.data
}

// UnwrapOr returns the success value, or fallback on failure
func (r Result[T]) UnwrapOr(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.data
}
