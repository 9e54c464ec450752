// Package favor holds the shared vocabulary of the container packages:
// generic callable capabilities, the error taxonomy, nil detection and
// protected execution.
//
// Key pieces:
// - Function0..Function5, Predicate, Supplier, Consumer: static arity-indexed callables
// - Partial: the domain-restricted mapping capability consumed by optional.Collect
// - ArgumentError / StateError: contract-violation and wrong-variant errors, raised by panic
// - IsNil / RequireNonNil: typed-nil aware argument checks
// - Protect: runs a computation and converts a panic into an error return
// - Either: minimal Left/Right sum type used by the validation package
//
// Misuse of the API (nil required argument, accessor on the wrong variant)
// always panics with one of the typed errors above; computation errors never
// escape the entry points documented as exception-safe.
package favor
