package outcome

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument signals a violated API precondition: an absent payload
// or a nil function passed to a factory or combinator. It is raised via
// panic, never returned inside a Result.
var ErrInvalidArgument = errors.New("invalid argument")

// IsNil reports whether i is nil or wraps a nil of a nilable kind.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func requirePresent(v any, what string) {
	if IsNil(v) {
		panic(fmt.Errorf("%w: %s cannot be absent", ErrInvalidArgument, what))
	}
}

func requireFunc(fn any, what string) {
	if IsNil(fn) {
		panic(fmt.Errorf("%w: %s cannot be nil", ErrInvalidArgument, what))
	}
}
