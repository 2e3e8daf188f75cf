// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of option.Option[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then: compose option-returning functions
// - Map/Filter: transform or drop the present value
// - Ensure: trigger side effects without changing the chain
// - Or: fall back to an alternative chain when empty
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on None, so a pipeline reads top to bottom
// without branching at each stage.
package chain
