// Package try provides Try[T], the immutable outcome of a computation that
// may fail, split into Success and Failure variants.
//
// Key operations:
// - Success/Failure: construct directly (Failure rejects a nil error)
// - Of0..Of5: capture an arity-0..5 call, converting a panic into a Failure
// - Get: value of a Success, or re-panic with the original stored error
// - Map/FlatMap/Fold: transform or collapse; Fold reroutes a panicking success handler into the failure handler
// - Ap: merge two Trys through supplied combinators (4-case matrix)
// - ToOptional/GetOrElse/GetOrElseOptional: extraction with fallbacks
//
// A Success holding a nil value ("empty success") is legal and distinct from
// a Failure; IsEmpty reports both. Every instance carries a uuid identity
// and UTC creation time.
package try
