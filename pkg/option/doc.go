// Package option provides Option[T], an immutable container that is
// either Some and holds a value, or None and holds nothing. It replaces
// nil checks with an explicit variant that must be inspected or
// transformed before the value can be reached.
//
// Key operations:
// - Some/None/Maybe: construct an Option (Maybe treats nil sentinels as None)
// - IsSome/IsNone: inspect the variant
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/MustUnwrap: extract the value
// - Map/FlatMap/MapOr/MapOrElse/Filter: transform without branching
// - Get/GetOr: keyed access into a map-shaped payload
// - Compare/CompareFunc/Less/Hash/Equal: total ordering and hashing
//
// Options are plain value types: construction goes through the factory
// functions, there is no mutation after construction, and the zero
// value is None. Callbacks passed to combinators run synchronously and
// exactly once when the variant matches; panics inside them propagate
// to the caller unchanged.
package option
