// Package result holds exactly one of two things: a success value (Ok) or a
// failure value (Err). Unlike a (value, error) pair, a Result can never carry
// both or neither.
//
// Operations that keep the value types (IsOk, UnwrapOr, Inspect, ...) are
// methods. Operations that produce a new value type (Map, AndThen, Or, Match,
// ...) are package functions, because Go methods cannot take their own type
// parameters.
package result

import (
	"errors"
	"fmt"
	"iter"
)

// Result holds either an Ok value of type T or an Err value of type E. Only
// Success and Failure implement it.
//
// To narrow a Result, use a type switch:
//
//	switch v := r.(type) {
//	case result.Success[int, string]:
//		use(v.Value)
//	case result.Failure[int, string]:
//		report(v.Value)
//	}
//
// or use the comma-ok accessors Ok and Err.
type Result[T, E any] interface {
	IsOk() bool
	IsOkAnd(pred func(T) bool) bool
	IsErr() bool
	IsErrAnd(pred func(E) bool) bool

	// Ok returns the success value and true, or the zero value and false.
	Ok() (T, bool)
	// Err returns the failure value and true, or the zero value and false.
	Err() (E, bool)

	// Unwrap returns the Ok value. On an Err it panics with a
	// *WrongVariantAccess.
	Unwrap() T
	// UnwrapErr returns the Err value. On an Ok it panics with a
	// *WrongVariantAccess.
	UnwrapErr() E
	// Expect works like Unwrap, but a panic uses msg as its message.
	Expect(msg string) T
	// ExpectErr works like UnwrapErr, but a panic uses msg as its message.
	ExpectErr(msg string) E
	// UnwrapOr returns the Ok value, or def on an Err.
	UnwrapOr(def T) T
	// UnwrapOrElse returns the Ok value. On an Err it returns fn(err).
	UnwrapOrElse(fn func(E) T) T

	// Inspect calls fn with the Ok value. It returns the receiver unchanged.
	Inspect(fn func(T)) Result[T, E]
	// InspectErr calls fn with the Err value. It returns the receiver
	// unchanged.
	InspectErr(fn func(E)) Result[T, E]

	// All yields the Ok value once. On an Err it yields nothing.
	All() iter.Seq[T]

	String() string

	sealed()
}

// Ok returns a Result that holds the success value v. E comes first in the
// type parameter list so that only E has to be written:
//
//	r := result.Ok[string](5) // Result[int, string]
func Ok[E, T any](v T) Result[T, E] {
	return Success[T, E]{Value: v}
}

// Err returns a Result that holds the failure value e.
//
//	r := result.Err[float64]("Division by zero") // Result[float64, string]
func Err[T, E any](e E) Result[T, E] {
	return Failure[T, E]{Value: e}
}

// ErrUninitialized is the panic value a package function uses when it gets a
// nil Result.
var ErrUninitialized = errors.New("result: nil Result")

// WrongVariantAccess is the panic value of an extraction on the wrong
// variant. It is a bug in the caller and cannot be recovered from.
type WrongVariantAccess struct {
	// Op is the method that was called: Unwrap, UnwrapErr, Expect or
	// ExpectErr.
	Op      string
	Message string
}

func (e *WrongVariantAccess) Error() string {
	return e.Message
}

func wrongVariant(op string, format string, args ...any) *WrongVariantAccess {
	return &WrongVariantAccess{
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}
