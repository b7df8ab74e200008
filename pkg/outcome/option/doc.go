// Package option provides a small Option[T] value type, used by
// outcome.Result.ToOption to expose the success value without a fault type.
//
// - Some/None: construct
// - Unwrap: the common Go "(value, ok)" pattern
// - UnwrapOr/MustUnwrap: defaulted or panicking extraction
// - Map: transform the value when present
package option
