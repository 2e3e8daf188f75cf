// Package result provides Result[T, E], an immutable container that is
// either Ok and holds a success value of type T, or Err and holds an
// error value of type E. It carries failure as data instead of a bare
// error return, so outcomes can be transformed and combined before
// anything is extracted.
//
// Key operations:
// - Ok/Err/Of: construct a Result (Of adapts a (value, error) return)
// - IsOk/IsErr: inspect the variant
// - Ok/Err (methods): convert either channel into an option.Option
// - Unwrap/UnwrapErr/Expect/ExpectErr/UnwrapOr/UnwrapOrElse: extract
// - Map/MapErr/FlatMap: transform without branching
// - Compare/CompareFunc/Less/Hash/Equal: total ordering and hashing
//
// Results are plain value types: construction goes through the factory
// functions and there is no mutation after construction. Callbacks
// passed to combinators run synchronously and exactly once when the
// variant matches; panics inside them propagate to the caller
// unchanged.
package result
