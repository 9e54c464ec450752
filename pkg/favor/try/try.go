package try

import (
	"time"

	"github.com/google/uuid"

	"github.com/favor-fp/favor/pkg/favor"
	"github.com/favor-fp/favor/pkg/favor/optional"
)

// Try is the immutable outcome of a computation that may fail: either a
// Success holding a value (a nil value is a legal "empty success") or a
// Failure holding a non-nil error. Each instance carries a creation identity
// and UTC timestamp.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	failed    bool
}

// Success wraps a value. A nil value is legal and distinct from Failure.
func Success[T any](value T) Try[T] {
	return Try[T]{
		value:     value,
		err:       nil,
		failed:    false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps an error; it panics with an *ArgumentError on a nil err.
func Failure[T any](err error) Try[T] {
	favor.RequireNonNil(err, "err")
	return Try[T]{
		err:       err,
		failed:    true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failureFrom carries a Failure across a type switch, preserving identity
// and creation time.
func failureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		failed:    true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Of0 invokes f inside a protected region: a panic becomes a Failure holding
// the recovered error, a normal return becomes a Success.
func Of0[R any](f favor.Function0[R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f() })
}

// Of1 invokes f with a1 inside a protected region.
func Of1[T1, R any](a1 T1, f favor.Function1[T1, R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f(a1) })
}

// Of2 invokes f with a1, a2 inside a protected region.
func Of2[T1, T2, R any](a1 T1, a2 T2, f favor.Function2[T1, T2, R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f(a1, a2) })
}

// Of3 invokes f with a1..a3 inside a protected region.
func Of3[T1, T2, T3, R any](a1 T1, a2 T2, a3 T3, f favor.Function3[T1, T2, T3, R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f(a1, a2, a3) })
}

// Of4 invokes f with a1..a4 inside a protected region.
func Of4[T1, T2, T3, T4, R any](a1 T1, a2 T2, a3 T3, a4 T4, f favor.Function4[T1, T2, T3, T4, R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f(a1, a2, a3, a4) })
}

// Of5 invokes f with a1..a5 inside a protected region.
func Of5[T1, T2, T3, T4, T5, R any](a1 T1, a2 T2, a3 T3, a4 T4, a5 T5, f favor.Function5[T1, T2, T3, T4, T5, R]) Try[R] {
	favor.RequireNonNil(f, "f")
	return capture(func() R { return f(a1, a2, a3, a4, a5) })
}

func capture[R any](f func() R) Try[R] {
	value, err := favor.Protect(f)
	if err != nil {
		return Failure[R](err)
	}
	return Success(value)
}

func (t Try[T]) IsSuccess() bool {
	return !t.failed
}

func (t Try[T]) IsFailure() bool {
	return t.failed
}

// Get returns the value of a Success. On a Failure it re-panics with the
// original stored error, not a wrapped copy.
func (t Try[T]) Get() T {
	if t.failed {
		panic(t.err)
	}
	return t.value
}

// GetError returns the stored error of a Failure; it panics with a
// *StateError on a Success.
func (t Try[T]) GetError() error {
	if !t.failed {
		panic(favor.Statef("GetError called on a Success"))
	}
	return t.err
}

// IsEmpty reports whether there is no usable value: a Failure, or a Success
// holding a nil value.
func (t Try[T]) IsEmpty() bool {
	return t.failed || favor.IsNil(t.value)
}

// ToOptional collapses the Try into presence: empty successes and failures
// both become the empty Optional.
func (t Try[T]) ToOptional() optional.Optional[T] {
	if t.IsEmpty() {
		return optional.Empty[T]()
	}
	return optional.Of(t.value)
}

// GetOrElse returns the value of a Success, def otherwise.
func (t Try[T]) GetOrElse(def T) T {
	if t.failed {
		return def
	}
	return t.value
}

// GetOrElseOptional wraps the chosen value, collapsing nil to empty.
func (t Try[T]) GetOrElseOptional(def T) optional.Optional[T] {
	return optional.OfNullable(t.GetOrElse(def))
}

// Map transforms the value of a Success, keeping its type. For a
// type-changing transform use the package function Map.
func (t Try[T]) Map(f func(T) T) Try[T] {
	if t.failed {
		return t
	}
	favor.RequireNonNil(f, "f")
	return Success(f(t.value))
}

// Ap merges two Trys:
//   - both Success: Success of mergeSuccess(this, other), exception-safe
//   - exactly one Failure: that Failure wins, no merge invoked
//   - both Failure: Failure of mergeFailure(this.err, other.err), exception-safe
//
// A nil other returns the receiver unchanged. The merge function required by
// the matching case must be non-nil; the other may be omitted.
func (t Try[T]) Ap(other *Try[T], mergeFailure func(error, error) error, mergeSuccess func(T, T) T) Try[T] {
	if other == nil {
		return t
	}

	switch {
	case !t.failed && !other.failed:
		favor.RequireNonNil(mergeSuccess, "mergeSuccess")
		return capture(func() T { return mergeSuccess(t.value, other.value) })
	case !t.failed:
		return Failure[T](other.err)
	case !other.failed:
		return Failure[T](t.err)
	default:
		favor.RequireNonNil(mergeFailure, "mergeFailure")
		merged, err := favor.Protect(func() error { return mergeFailure(t.err, other.err) })
		if err != nil {
			return Failure[T](err)
		}
		return Failure[T](merged)
	}
}

// Id returns the creation identity.
func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt returns the creation time (UTC).
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// Map transforms the value of a Success to a new type; a Failure is carried
// through with its identity preserved.
func Map[In, Out any](t Try[In], f favor.Function1[In, Out]) Try[Out] {
	if t.failed {
		return failureFrom[In, Out](t)
	}
	favor.RequireNonNil(f, "f")
	return Success(f(t.value))
}

// FlatMap transforms the value of a Success with a function that already
// returns a Try; a Failure is carried through.
func FlatMap[In, Out any](t Try[In], f func(In) Try[Out]) Try[Out] {
	if t.failed {
		return failureFrom[In, Out](t)
	}
	favor.RequireNonNil(f, "f")
	return f(t.value)
}

// Fold collapses the Try by invoking exactly one handler. A panic raised by
// onSuccess is recovered, normalized to an error and rerouted into
// onFailure, so a failure while processing a success still yields a
// failure-path result. onFailure itself is not protected.
func Fold[T, U any](t Try[T], onFailure favor.Function1[error, U], onSuccess favor.Function1[T, U]) U {
	favor.RequireNonNil(onFailure, "onFailure")
	if t.failed {
		return onFailure(t.err)
	}

	favor.RequireNonNil(onSuccess, "onSuccess")
	out, err := favor.Protect(func() U { return onSuccess(t.value) })
	if err != nil {
		return onFailure(err)
	}
	return out
}
