// Package flow provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T] values on top of the combine primitives.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose Outcome-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or: fall back to an alternative chain on failure
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps use the package-level Then/ThenTry/Map/Finally, since
// methods cannot introduce type parameters.
package flow
