package result

import (
	"fmt"
	"iter"
)

// Success is the Ok variant. Its zero value is Ok(zero T).
type Success[T, E any] struct {
	Value T
}

func (Success[T, E]) sealed() {}

func (Success[T, E]) IsOk() bool { return true }

func (Success[T, E]) IsErr() bool { return false }

func (s Success[T, E]) IsOkAnd(pred func(T) bool) bool {
	return pred(s.Value)
}

func (Success[T, E]) IsErrAnd(func(E) bool) bool { return false }

func (s Success[T, E]) Ok() (T, bool) { return s.Value, true }

func (Success[T, E]) Err() (E, bool) {
	var zero E
	return zero, false
}

func (s Success[T, E]) Unwrap() T { return s.Value }

func (s Success[T, E]) UnwrapErr() E {
	panic(wrongVariant("UnwrapErr", "called `Result.UnwrapErr()` on an `Ok` value: %v", s.Value))
}

func (s Success[T, E]) Expect(string) T { return s.Value }

func (s Success[T, E]) ExpectErr(msg string) E {
	panic(wrongVariant("ExpectErr", "%s: %v", msg, s.Value))
}

func (s Success[T, E]) UnwrapOr(T) T { return s.Value }

func (s Success[T, E]) UnwrapOrElse(func(E) T) T { return s.Value }

func (s Success[T, E]) Inspect(fn func(T)) Result[T, E] {
	fn(s.Value)
	return s
}

func (s Success[T, E]) InspectErr(func(E)) Result[T, E] { return s }

func (s Success[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(s.Value)
	}
}

func (s Success[T, E]) String() string {
	return fmt.Sprintf("Ok(%v)", s.Value)
}
