package optional

import (
	"reflect"

	"github.com/favor-fp/favor/pkg/favor"
)

// Optional is an immutable presence container. Absence is the only legal way
// to represent "no value": the present variant never holds nil.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps a non-nil value; it panics with an *ArgumentError when value is nil.
func Of[T any](value T) Optional[T] {
	favor.RequireNonNil(value, "value")
	return Optional[T]{value: value, present: true}
}

// OfNullable wraps value, collapsing a nil one to the empty Optional.
func OfNullable[T any](value T) Optional[T] {
	if favor.IsNil(value) {
		return Empty[T]()
	}
	return Optional[T]{value: value, present: true}
}

// Empty returns the absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value; it panics with an *ArgumentError when absent.
func (o Optional[T]) Get() T {
	if !o.present {
		panic(favor.Argumentf("Get called on an empty Optional"))
	}
	return o.value
}

// Filter keeps the value only when p holds. An absent Optional stays absent
// without evaluating p.
func (o Optional[T]) Filter(p favor.Predicate[T]) Optional[T] {
	if !o.present {
		return o
	}
	favor.RequireNonNil(p, "p")
	if p(o.value) {
		return o
	}
	return Empty[T]()
}

// Map transforms the contained value, keeping its type. Absence is a no-op
// and f is not evaluated. For a type-changing transform use the package
// function Map.
func (o Optional[T]) Map(f func(T) T) Optional[T] {
	if !o.present {
		return o
	}
	favor.RequireNonNil(f, "f")
	return OfNullable(f(o.value))
}

// FlatMap transforms the contained value with a function that already
// returns an Optional. Absence is a no-op.
func (o Optional[T]) FlatMap(f func(T) Optional[T]) Optional[T] {
	if !o.present {
		return o
	}
	favor.RequireNonNil(f, "f")
	return f(o.value)
}

// GetOrElse returns the contained value or def when absent.
func (o Optional[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// GetOrElseGet returns the contained value or the supplied one; the supplier
// is evaluated only on the empty path.
func (o Optional[T]) GetOrElseGet(s favor.Supplier[T]) T {
	if o.present {
		return o.value
	}
	favor.RequireNonNil(s, "s")
	return s()
}

// OrElse returns this Optional when present, other otherwise.
func (o Optional[T]) OrElse(other Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return other
}

// OrElseError returns the contained value, or the supplied error when
// absent. The supplier is evaluated only on the empty path.
func (o Optional[T]) OrElseError(errSupplier favor.Supplier[error]) (T, error) {
	if o.present {
		return o.value, nil
	}
	favor.RequireNonNil(errSupplier, "errSupplier")
	var zero T
	return zero, errSupplier()
}

// IfPresent invokes action with the contained value; absence or a nil action
// is a no-op.
func (o Optional[T]) IfPresent(action favor.Consumer[T]) {
	if o.present && action != nil {
		action(o.value)
	}
}

// Equals compares two Optionals. Both absent compare equal, mixed presence
// does not. Two present values delegate to the value's own Equal method when
// it exposes one, falling back to structural deep equality.
func (o Optional[T]) Equals(other Optional[T]) bool {
	if !o.present || !other.present {
		return o.present == other.present
	}
	if eq, ok := any(o.value).(favor.Equalable[T]); ok {
		return eq.Equal(other.value)
	}
	return reflect.DeepEqual(any(o.value), any(other.value))
}

// Map transforms the contained value to a new type. Absence is a no-op and
// f is not evaluated.
func Map[T, U any](o Optional[T], f favor.Function1[T, U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	favor.RequireNonNil(f, "f")
	return OfNullable(f(o.value))
}

// FlatMap transforms the contained value with a function returning an
// Optional of a new type.
func FlatMap[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}
	favor.RequireNonNil(f, "f")
	return f(o.value)
}

// Collect maps the contained value through pf only when the value belongs to
// pf's domain; pf.Apply is never called unless the domain check passed.
func Collect[T, R any](o Optional[T], pf favor.Partial[T, R]) Optional[R] {
	favor.RequireNonNil(pf, "pf")
	if o.present && pf.IsDefinedAt(o.value) {
		return OfNullable(pf.Apply(o.value))
	}
	return Empty[R]()
}

// Fold collapses the Optional by invoking exactly one of the handlers.
func Fold[T, U any](o Optional[T], onEmpty favor.Supplier[U], onPresent favor.Function1[T, U]) U {
	if o.present {
		favor.RequireNonNil(onPresent, "onPresent")
		return onPresent(o.value)
	}
	favor.RequireNonNil(onEmpty, "onEmpty")
	return onEmpty()
}
