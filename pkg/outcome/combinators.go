package outcome

import "reflect"

// Type-changing combinators are package-level functions: a Go method cannot
// introduce new type parameters.

// Map transforms the success value with fn. A failure passes through with
// its fault untouched and fn is never invoked.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	requireFunc(fn, "fn")
	if r.IsSuccess() {
		return Success[U, E](fn(r.Data()))
	}
	return Failure[U, E](r.Fault())
}

// FlatMap transforms the success value with a function that itself returns
// a Result, so a failure produced by fn propagates as is. A failure
// short-circuits without invoking fn.
func FlatMap[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	requireFunc(fn, "fn")
	if r.IsSuccess() {
		return fn(r.Data())
	}
	return Failure[U, E](r.Fault())
}

// MapError transforms the fault with fn; a success passes through untouched.
func MapError[T, E, E2 any](r Result[T, E], fn func(E) E2) Result[T, E2] {
	requireFunc(fn, "fn")
	if r.IsSuccess() {
		return Success[T, E2](r.Data())
	}
	return Failure[T, E2](fn(r.Fault()))
}

// Combine merges two Results with fn when both succeeded. Otherwise it is
// the first failure, a's fault winning over b's.
func Combine[T1, T2, E, R any](a Result[T1, E], b Result[T2, E], fn func(T1, T2) R) Result[R, E] {
	requireFunc(fn, "fn")
	if a.IsSuccess() && b.IsSuccess() {
		return Success[R, E](fn(a.Data(), b.Data()))
	}
	if a.IsSuccess() {
		return Failure[R, E](b.Fault())
	}
	return Failure[R, E](a.Fault())
}

// Fold collapses a Result to a plain value via the matching handler.
func Fold[T, E, U any](r Result[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	requireFunc(onSuccess, "onSuccess")
	requireFunc(onFailure, "onFailure")
	if r.IsSuccess() {
		return onSuccess(r.Data())
	}
	return onFailure(r.Fault())
}

// Equal reports structural equality: same tag and deeply equal payload.
// Provenance (id, creation time) is not part of a Result's identity.
func Equal[T, E any](a, b Result[T, E]) bool {
	if a.IsSuccess() != b.IsSuccess() {
		return false
	}
	if a.IsSuccess() {
		return reflect.DeepEqual(a.Data(), b.Data())
	}
	return reflect.DeepEqual(a.Fault(), b.Fault())
}
