// Package outcome provides Result[T, E], an immutable value holding exactly
// one of a success value or a typed fault, as an alternative to error-driven
// control flow.
//
// Highlights:
// - Success/Failure: construct Result[T, E]
// - Map/FlatMap/MapError: transform one side, short-circuiting on the other
// - Combine: merge two Results, the left fault winning
// - Recover/OrElse/OrElsePanic: leave the failure track
// - IfSuccess/IfFailure: side-effect hooks that return the receiver
// - Fold: reduce to a concrete value via success/failure handlers
//
// Type-changing combinators are package-level generic functions; everything
// type-preserving is a method. Absent payloads and nil functions violate the
// API contract and panic with ErrInvalidArgument; they are never converted
// into failures.
//
// For deferred computations that produce a Result only when forced, see
// package lazy.
package outcome
