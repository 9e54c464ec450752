// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of try.Try[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose try-returning or error-returning functions
// - Map/Recover: transform the value or recover from a failure
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between two chains (first success / first failure wins)
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps live as package functions (Then, ThenTrying, MapTo,
// Finally) since methods cannot introduce type parameters.
package chain
