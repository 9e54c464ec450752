// Package optional provides Optional[T], an immutable presence container
// that replaces nil checks with explicit absence.
//
// Key operations:
// - Of/OfNullable/Empty: create an Optional (Of rejects nil)
// - Get/GetOrElse/GetOrElseGet/OrElse/OrElseError: extract with or without fallbacks
// - Filter/Map/FlatMap: transform the present value, absence short-circuits
// - Collect: map through a domain-restricted mapping (favor.Partial)
// - Fold: collapse to a single value via exactly one handler
//
// The present variant never holds nil; absence is the single representation
// of "no value". Suppliers on fallback paths are evaluated lazily, only when
// the Optional is empty.
package optional
