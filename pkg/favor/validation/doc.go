// Package validation provides Validation[E, T], an immutable container that
// accumulates an ordered sequence of errors instead of stopping at the first
// one.
//
// Key operations:
// - Valid/Invalid: construct (Invalid normalizes an absent sequence to empty)
// - Combine: eager fold concatenating every Invalid's errors in input order
// - CombineGetFirstInvalid: lazy supplier fold, short-circuits at the first Invalid
// - Ap: merge two Validations through supplied combinators (4-case matrix)
// - Filter/FilterOptional/FilterOrElse: three renditions of predicate filtering
// - Map/MapInvalid/Fold: transform either side or collapse
// - FromTry/FromEither/ToEither/ToOptional: adapters to the sibling containers
//
// Combine and CombineGetFirstInvalid differ in two ways: the former takes
// values eagerly and accumulates every error, the latter takes suppliers and
// surfaces only the first Invalid.
package validation
