// Package lazy provides a deferred outcome.Result: a computation plus an
// error translator that only run when Evaluate is called.
//
// - New: wrap a computation func() (T, error) and a translator func(error) E
// - Map/Try: transform the eventual value (pure or fallible)
// - MapError/DoubleMap: extend the translator
// - FlatMap: sequence a dependent deferred computation
// - Peek: side effect on the value without changing it
// - Recover: substitute a value for a translated fault
// - Evaluate: force the chain into a concrete outcome.Result
//
// Evaluation installs a single translation boundary around the whole
// composed chain: the first error short-circuits and is translated once.
// Results are never cached; every Evaluate re-runs the computation and its
// side effects. Two concurrent Evaluate calls on the same value are two
// independent executions, and coordination of any shared state inside the
// computation is the caller's concern.
package lazy
