package partial

import (
	"github.com/favor-fp/favor/pkg/favor"
	"github.com/favor-fp/favor/pkg/favor/optional"
)

// PartialFunction is an immutable pair of a domain verifier and a mapper;
// the domain is the set of inputs the verifier accepts. It implements
// favor.Partial. Composition always builds a new pair, never mutates.
type PartialFunction[T, R any] struct {
	verifier favor.Predicate[T]
	mapper   favor.Function1[T, R]
}

// Of builds a PartialFunction. The mapper is required and a nil one panics
// with an *ArgumentError; a nil verifier defaults to "always true", making
// the result a total function in partial-function's clothing.
func Of[T, R any](verifier favor.Predicate[T], mapper favor.Function1[T, R]) PartialFunction[T, R] {
	favor.RequireNonNil(mapper, "mapper")
	if verifier == nil {
		verifier = func(T) bool { return true }
	}
	return PartialFunction[T, R]{verifier: verifier, mapper: mapper}
}

// IsDefinedAt reports whether t belongs to the domain.
func (pf PartialFunction[T, R]) IsDefinedAt(t T) bool {
	return pf.verifier(t)
}

// Apply evaluates the mapper unconditionally. Outside the domain the result
// is undefined and no failure is guaranteed; check IsDefinedAt first or use
// ApplyOrElse.
func (pf PartialFunction[T, R]) Apply(t T) R {
	return pf.mapper(t)
}

// ApplyOrElse evaluates the mapper when t belongs to the domain, def
// otherwise. def is required only at the point t actually falls outside the
// domain; a nil def panics with an *ArgumentError there, not eagerly.
func (pf PartialFunction[T, R]) ApplyOrElse(t T, def favor.Function1[T, R]) R {
	if pf.verifier(t) {
		return pf.mapper(t)
	}
	favor.RequireNonNil(def, "def")
	return def(t)
}

// OrElse builds the left-biased union: defined where either operand is, and
// applying prefers the receiver whenever it is defined at the input.
func (pf PartialFunction[T, R]) OrElse(other PartialFunction[T, R]) PartialFunction[T, R] {
	return PartialFunction[T, R]{
		verifier: func(t T) bool {
			return pf.IsDefinedAt(t) || other.IsDefinedAt(t)
		},
		mapper: func(t T) R {
			if pf.IsDefinedAt(t) {
				return pf.Apply(t)
			}
			return other.Apply(t)
		},
	}
}

// Lift turns the PartialFunction into a total function producing an
// Optional, present exactly when the input belongs to the domain.
func (pf PartialFunction[T, R]) Lift() func(T) optional.Optional[R] {
	return func(t T) optional.Optional[R] {
		if !pf.IsDefinedAt(t) {
			return optional.Empty[R]()
		}
		return optional.OfNullable(pf.Apply(t))
	}
}

// AndThen composes a total function after the mapper; the domain is
// unchanged.
func AndThen[T, R, S any](pf PartialFunction[T, R], after favor.Function1[R, S]) PartialFunction[T, S] {
	favor.RequireNonNil(after, "after")
	return PartialFunction[T, S]{
		verifier: pf.verifier,
		mapper: func(t T) S {
			return after(pf.mapper(t))
		},
	}
}

// AndThenPartial composes another PartialFunction after this one; the
// resulting domain requires both this domain and, through the image, the
// domain of after.
func AndThenPartial[T, R, S any](pf PartialFunction[T, R], after PartialFunction[R, S]) PartialFunction[T, S] {
	return PartialFunction[T, S]{
		verifier: func(t T) bool {
			return pf.IsDefinedAt(t) && after.IsDefinedAt(pf.Apply(t))
		},
		mapper: func(t T) S {
			return after.Apply(pf.Apply(t))
		},
	}
}

// Compose applies a total function before the verifier and mapper; the
// domain requires only that the transformed input belongs to this domain.
func Compose[V, T, R any](pf PartialFunction[T, R], before favor.Function1[V, T]) PartialFunction[V, R] {
	favor.RequireNonNil(before, "before")
	return PartialFunction[V, R]{
		verifier: func(v V) bool {
			return pf.IsDefinedAt(before(v))
		},
		mapper: func(v V) R {
			return pf.Apply(before(v))
		},
	}
}

// ComposePartial applies another PartialFunction before this one; the
// resulting domain requires the domain of before and, through its image,
// this domain.
func ComposePartial[V, T, R any](pf PartialFunction[T, R], before PartialFunction[V, T]) PartialFunction[V, R] {
	return PartialFunction[V, R]{
		verifier: func(v V) bool {
			return before.IsDefinedAt(v) && pf.IsDefinedAt(before.Apply(v))
		},
		mapper: func(v V) R {
			return pf.Apply(before.Apply(v))
		},
	}
}
