package lazy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Result is a deferred computation that produces an outcome.Result when
// evaluated. It holds a computation that may fail with an error and a
// translator converting that error into the fault type E. Nothing runs
// until Evaluate is called, and nothing is ever cached.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	compute   func() (T, error)
	translate func(error) E
}

// New wraps a computation and a translator.
// Panics with outcome.ErrInvalidArgument if either is nil.
//
// The translator is expected to be total over error values; if it panics,
// the panic escapes Evaluate untouched.
func New[T, E any](compute func() (T, error), translate func(error) E) Result[T, E] {
	requireFunc(compute, "compute")
	requireFunc(translate, "translate")
	return derive(compute, translate)
}

func derive[T, E any](compute func() (T, error), translate func(error) E) Result[T, E] {
	return Result[T, E]{
		compute:   compute,
		translate: translate,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Evaluate runs the composed computation and realizes it as a Result.
// The first error anywhere in the chain short-circuits the computation and
// is translated exactly once, at this boundary.
//
// Each call re-runs the computation and its side effects from scratch.
func (r Result[T, E]) Evaluate() outcome.Result[T, E] {
	v, err := r.compute()
	if err != nil {
		return outcome.Failure[T, E](r.translate(err))
	}
	return outcome.Success[T, E](v)
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Peek attaches a side effect on the success value; the value passes
// through unchanged. The action never runs when the computation fails, and
// an error returned by the action is translated like a computation fault.
func (r Result[T, E]) Peek(action func(T) error) Result[T, E] {
	requireFunc(action, "action")
	return derive(func() (T, error) {
		v, err := r.compute()
		if err != nil {
			var zero T
			return zero, err
		}
		if err := action(v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}, r.translate)
}

// Recover substitutes fn(fault) on failure, so the derived computation
// always completes normally: the fault is translated first, then handed to
// fn to produce the replacement value.
func (r Result[T, E]) Recover(fn func(E) T) Result[T, E] {
	requireFunc(fn, "fn")
	return derive(func() (T, error) {
		v, err := r.compute()
		if err != nil {
			return fn(r.translate(err)), nil
		}
		return v, nil
	}, r.translate)
}

// Map transforms the eventual success value with a pure function; the
// translator is inherited unchanged.
func Map[T, E, X any](r Result[T, E], fn func(T) X) Result[X, E] {
	requireFunc(fn, "fn")
	return derive(func() (X, error) {
		v, err := r.compute()
		if err != nil {
			var zero X
			return zero, err
		}
		return fn(v), nil
	}, r.translate)
}

// Try transforms the eventual success value with a function that may fail.
// Its error runs through the same translator as a fault of the original
// computation, because it occurs inside the composed computation, before
// the translation boundary.
func Try[T, E, X any](r Result[T, E], fn func(T) (X, error)) Result[X, E] {
	requireFunc(fn, "fn")
	return derive(func() (X, error) {
		v, err := r.compute()
		if err != nil {
			var zero X
			return zero, err
		}
		return fn(v)
	}, r.translate)
}

// DoubleMap transforms both sides: fn maps the eventual success value and
// faultFn extends the translator, which becomes the original translation
// followed by faultFn.
func DoubleMap[T, E, X, E2 any](r Result[T, E], fn func(T) X, faultFn func(E) E2) Result[X, E2] {
	requireFunc(fn, "fn")
	requireFunc(faultFn, "faultFn")
	return derive(func() (X, error) {
		v, err := r.compute()
		if err != nil {
			var zero X
			return zero, err
		}
		return fn(v), nil
	}, func(err error) E2 {
		return faultFn(r.translate(err))
	})
}

// MapError keeps the computation and extends the translator with faultFn.
func MapError[T, E, E2 any](r Result[T, E], faultFn func(E) E2) Result[T, E2] {
	requireFunc(faultFn, "faultFn")
	return derive(r.compute, func(err error) E2 {
		return faultFn(r.translate(err))
	})
}

// FlatMap sequences a dependent deferred computation: run r, then run the
// computation of fn(value).
//
// Only the computation of the inner Result is taken, never its translator:
// a fault from either leg is translated by r's translator. The inner
// translator only matters when that Result is evaluated on its own.
func FlatMap[T, E, X any](r Result[T, E], fn func(T) Result[X, E]) Result[X, E] {
	requireFunc(fn, "fn")
	return derive(func() (X, error) {
		v, err := r.compute()
		if err != nil {
			var zero X
			return zero, err
		}
		return fn(v).compute()
	}, r.translate)
}

func requireFunc(fn any, what string) {
	if outcome.IsNil(fn) {
		panic(fmt.Errorf("%w: %s cannot be nil", outcome.ErrInvalidArgument, what))
	}
}
