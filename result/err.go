package result

import (
	"fmt"
	"iter"
)

// Failure is the Err variant. Its zero value is Err(zero E), not a missing
// error. A nil E still counts as an Err.
type Failure[T, E any] struct {
	Value E
}

func (Failure[T, E]) sealed() {}

func (Failure[T, E]) IsOk() bool { return false }

func (Failure[T, E]) IsErr() bool { return true }

func (Failure[T, E]) IsOkAnd(func(T) bool) bool { return false }

func (f Failure[T, E]) IsErrAnd(pred func(E) bool) bool {
	return pred(f.Value)
}

func (Failure[T, E]) Ok() (T, bool) {
	var zero T
	return zero, false
}

func (f Failure[T, E]) Err() (E, bool) { return f.Value, true }

func (f Failure[T, E]) Unwrap() T {
	panic(wrongVariant("Unwrap", "called `Result.Unwrap()` on an `Err` value: %v", f.Value))
}

func (f Failure[T, E]) UnwrapErr() E { return f.Value }

func (f Failure[T, E]) Expect(msg string) T {
	panic(wrongVariant("Expect", "%s: %v", msg, f.Value))
}

func (f Failure[T, E]) ExpectErr(string) E { return f.Value }

// UnwrapOr returns def. The caller has already computed def; use
// UnwrapOrElse to build it only when it is needed.
func (Failure[T, E]) UnwrapOr(def T) T { return def }

func (f Failure[T, E]) UnwrapOrElse(fn func(E) T) T {
	return fn(f.Value)
}

func (f Failure[T, E]) Inspect(func(T)) Result[T, E] { return f }

func (f Failure[T, E]) InspectErr(fn func(E)) Result[T, E] {
	fn(f.Value)
	return f
}

func (Failure[T, E]) All() iter.Seq[T] {
	return func(func(T) bool) {}
}

func (f Failure[T, E]) String() string {
	return fmt.Sprintf("Err(%v)", f.Value)
}
