package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome/option"
)

// Result holds exactly one of a success value T or a fault E.
// The tag is fixed at construction; every transformation builds a new value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	fault     E
	isSuccess bool
}

// Success creates a Result in the success state.
// Panics with ErrInvalidArgument if value is absent.
func Success[T, E any](value T) Result[T, E] {
	requirePresent(value, "success value")
	return Result[T, E]{
		data:      value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure creates a Result in the failure state.
// Panics with ErrInvalidArgument if fault is absent.
func Failure[T, E any](fault E) Result[T, E] {
	requirePresent(fault, "fault")
	return Result[T, E]{
		fault:     fault,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Data returns the success value, or the zero value of T on failure.
func (r Result[T, E]) Data() T {
	return r.data
}

// Fault returns the failure value, or the zero value of E on success.
func (r Result[T, E]) Fault() E {
	return r.fault
}

// ToOption wraps the success value, or is None on failure.
func (r Result[T, E]) ToOption() option.Option[T] {
	if r.isSuccess {
		return option.Some(r.data)
	}
	return option.None[T]()
}

// OrElse returns the success value or def on failure.
func (r Result[T, E]) OrElse(def T) T {
	if r.isSuccess {
		return r.data
	}
	return def
}

// OrElsePanic returns the success value, or panics with mapper(fault).
// The mapper is expected not to panic itself.
func (r Result[T, E]) OrElsePanic(mapper func(E) error) T {
	requireFunc(mapper, "mapper")
	if r.isSuccess {
		return r.data
	}
	panic(mapper(r.fault))
}

// IfSuccess invokes fn with the success value, then returns the receiver.
func (r Result[T, E]) IfSuccess(fn func(T)) Result[T, E] {
	requireFunc(fn, "fn")
	if r.isSuccess {
		fn(r.data)
	}
	return r
}

// IfFailure invokes fn with the fault, then returns the receiver.
func (r Result[T, E]) IfFailure(fn func(E)) Result[T, E] {
	requireFunc(fn, "fn")
	if !r.isSuccess {
		fn(r.fault)
	}
	return r
}

// Recover turns a failure into Success(fn(fault)); a success is returned as is.
func (r Result[T, E]) Recover(fn func(E) T) Result[T, E] {
	requireFunc(fn, "fn")
	if r.isSuccess {
		return r
	}
	return Success[T, E](fn(r.fault))
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.data)
	}
	return fmt.Sprintf("Failure(%v)", r.fault)
}
