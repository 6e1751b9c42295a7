package result

// A variant that passes through a combinator unchanged keeps its payload.
// If the output type is the same as the input type, it is the same value.

// Map applies fn to an Ok value. An Err is passed through and fn is not called.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if v, _, ok := split(r); ok {
		return Success[U, E]{Value: fn(v)}
	}
	return passErr[U](r)
}

// MapErr applies fn to an Err value. An Ok is passed through.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if _, e, ok := split(r); !ok {
		return Failure[T, F]{Value: fn(e)}
	}
	return passOk[F](r)
}

// MapOr returns fn(v) for Ok(v) and def for an Err.
func MapOr[T, E, U any](r Result[T, E], def U, fn func(T) U) U {
	if v, _, ok := split(r); ok {
		return fn(v)
	}
	return def
}

// MapOrElse returns fn(v) for Ok(v). For an Err it returns def(); the error
// value is not passed to def.
func MapOrElse[T, E, U any](r Result[T, E], def func() U, fn func(T) U) U {
	if v, _, ok := split(r); ok {
		return fn(v)
	}
	return def()
}

// And returns other if r is Ok; the Ok value of r is dropped. If r is an
// Err, And returns that Err.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if _, _, ok := split(r); ok {
		return other
	}
	return passErr[U](r)
}

// AndThen returns fn(v) for Ok(v). It chains fallible steps and stops at the
// first Err.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if v, _, ok := split(r); ok {
		return fn(v)
	}
	return passErr[U](r)
}

// Or returns r if it is Ok and other otherwise.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if _, _, ok := split(r); !ok {
		return other
	}
	return passOk[F](r)
}

// OrElse returns fn(e) for Err(e). It is used to build fallback chains.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if _, e, ok := split(r); !ok {
		return fn(e)
	}
	return passOk[F](r)
}

// Match calls exactly one of okFn or errFn and returns its result.
func Match[T, E, U any](r Result[T, E], okFn func(T) U, errFn func(E) U) U {
	v, e, ok := split(r)
	if ok {
		return okFn(v)
	}
	return errFn(e)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	inner, e, ok := split(r)
	if !ok {
		return Failure[T, E]{Value: e}
	}
	if inner == nil {
		panic(ErrUninitialized)
	}
	return inner
}

// Contains reports whether r is Ok and its value equals x.
func Contains[T comparable, E any](r Result[T, E], x T) bool {
	v, _, ok := split(r)
	return ok && v == x
}

// ContainsErr reports whether r is an Err and its value equals x.
func ContainsErr[T any, E comparable](r Result[T, E], x E) bool {
	_, e, ok := split(r)
	return !ok && e == x
}

// split returns the payload of whichever variant r holds. Any type that
// satisfies Result is read through its own Ok and Err methods.
func split[T, E any](r Result[T, E]) (T, E, bool) {
	if r == nil {
		panic(ErrUninitialized)
	}
	if v, ok := r.Ok(); ok {
		var e E
		return v, e, true
	}
	e, _ := r.Err()
	var v T
	return v, e, false
}

// passErr re-types an Err. r is returned as is when it already has the
// output type.
func passErr[U, T, E any](r Result[T, E]) Result[U, E] {
	if same, ok := any(r).(Result[U, E]); ok {
		return same
	}
	_, e, _ := split(r)
	return Failure[U, E]{Value: e}
}

func passOk[F, T, E any](r Result[T, E]) Result[T, F] {
	if same, ok := any(r).(Result[T, F]); ok {
		return same
	}
	v, _, _ := split(r)
	return Success[T, F]{Value: v}
}
