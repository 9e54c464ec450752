// Package partial provides PartialFunction[T, R], a function restricted to
// the domain accepted by its verifier.
//
// Key operations:
// - Of: pair a verifier with a mapper (nil verifier means total)
// - IsDefinedAt/Apply/ApplyOrElse: test the domain, map inside or around it
// - AndThen/AndThenPartial/Compose/ComposePartial: composition, with partial operands intersecting domains through the image
// - OrElse: left-biased domain union
// - Lift: total function producing an Optional, present iff defined
//
// Apply never checks the domain itself: calling it outside the domain is the
// documented "undefined behavior if you skip the check" contract.
package partial
