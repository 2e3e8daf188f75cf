// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of result.Result[T, error] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or (T, error)-returning functions
// - Map: transform the success value
// - Ensure: trigger side effects without changing the chain
// - Or: fall back to an alternative chain on failure
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on Err, so a pipeline reads top to bottom
// without checking the error at each stage.
package chain
