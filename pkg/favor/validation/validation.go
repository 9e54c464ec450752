package validation

import (
	"slices"

	"github.com/favor-fp/favor/pkg/favor"
	"github.com/favor-fp/favor/pkg/favor/optional"
	"github.com/favor-fp/favor/pkg/favor/try"
)

// Validation is an immutable multi-error accumulating container: either a
// Valid holding a value (a nil value is legal) or an Invalid holding an
// ordered, possibly empty sequence of errors.
type Validation[E, T any] struct {
	value T
	errs  []E
	valid bool
}

// Valid wraps a value. A nil value is legal.
func Valid[E, T any](value T) Validation[E, T] {
	return Validation[E, T]{value: value, valid: true}
}

// Invalid wraps an ordered error sequence. An absent or nil sequence
// normalizes to an empty one; this never fails.
func Invalid[E, T any](errs ...E) Validation[E, T] {
	if errs == nil {
		errs = []E{}
	}
	return Validation[E, T]{errs: slices.Clone(errs), valid: false}
}

func (v Validation[E, T]) IsValid() bool {
	return v.valid
}

func (v Validation[E, T]) IsInvalid() bool {
	return !v.valid
}

// Get returns the value of a Valid; it panics with a *StateError on an Invalid.
func (v Validation[E, T]) Get() T {
	if !v.valid {
		panic(favor.Statef("Get called on an Invalid"))
	}
	return v.value
}

// GetErrors returns a copy of the stored error sequence of an Invalid; it
// panics with a *StateError on a Valid.
func (v Validation[E, T]) GetErrors() []E {
	if v.valid {
		panic(favor.Statef("GetErrors called on a Valid"))
	}
	return slices.Clone(v.errs)
}

// Combine folds the whole sequence eagerly. A nil or empty sequence yields a
// Valid holding the zero value. When every element is Valid the last one
// wins. Otherwise the result is an Invalid concatenating, in input order,
// the errors of every Invalid element; Valid elements contribute nothing.
func Combine[E, T any](vs []Validation[E, T]) Validation[E, T] {
	if len(vs) == 0 {
		var zero T
		return Valid[E, T](zero)
	}

	var errs []E
	anyInvalid := false
	for _, v := range vs {
		if !v.valid {
			anyInvalid = true
			errs = append(errs, v.errs...)
		}
	}

	if anyInvalid {
		return Invalid[E, T](errs...)
	}
	return vs[len(vs)-1]
}

// CombineGetFirstInvalid evaluates the suppliers one at a time, in order,
// stopping at the first Invalid result; later suppliers are never invoked.
// When every evaluated supplier is Valid the last evaluated Valid wins. A
// nil supplier element panics with an *ArgumentError. A nil or empty
// sequence yields a Valid holding the zero value.
func CombineGetFirstInvalid[E, T any](suppliers []favor.Supplier[Validation[E, T]]) Validation[E, T] {
	if len(suppliers) == 0 {
		var zero T
		return Valid[E, T](zero)
	}

	var last Validation[E, T]
	for i, supply := range suppliers {
		if supply == nil {
			panic(favor.Argumentf("suppliers[%d] must not be nil", i))
		}
		last = supply()
		if last.IsInvalid() {
			return last
		}
	}
	return last
}

// FromEither maps a Right to a Valid and a Left to an Invalid holding the
// left value as its single error.
func FromEither[E, T any](e favor.Either[E, T]) Validation[E, T] {
	if e.IsRight() {
		return Valid[E, T](e.Get())
	}
	return Invalid[E, T](e.GetLeft())
}

// FromTry maps a Success to a Valid and a Failure to an Invalid holding the
// captured error as its single element.
func FromTry[T any](t try.Try[T]) Validation[error, T] {
	if t.IsSuccess() {
		return Valid[error, T](t.Get())
	}
	return Invalid[error, T](t.GetError())
}

// Ap merges two Validations:
//   - both Valid: Valid of mergeValues(this, other), exception-safe
//   - exactly one Invalid: that Invalid wins, no merge invoked
//   - both Invalid: Invalid of mergeErrors(this.errs, other.errs),
//     exception-safe; the combinator is fully parametric, concatenation is
//     only the usual choice
//
// A nil other returns the receiver unchanged. The merge function required by
// the matching case must be non-nil; the other may be omitted.
func (v Validation[E, T]) Ap(other *Validation[E, T],
	mergeErrors func([]E, []E) []E, mergeValues func(T, T) T) Validation[E, T] {

	if other == nil {
		return v
	}

	switch {
	case v.valid && other.valid:
		favor.RequireNonNil(mergeValues, "mergeValues")
		merged, err := favor.Protect(func() T { return mergeValues(v.value, other.value) })
		if err != nil {
			return invalidOfError[E, T](err)
		}
		return Valid[E, T](merged)
	case v.valid:
		return Invalid[E, T](other.errs...)
	case other.valid:
		return Invalid[E, T](v.errs...)
	default:
		favor.RequireNonNil(mergeErrors, "mergeErrors")
		merged, err := favor.Protect(func() []E { return mergeErrors(slices.Clone(v.errs), slices.Clone(other.errs)) })
		if err != nil {
			return invalidOfError[E, T](err)
		}
		return Invalid[E, T](merged...)
	}
}

// invalidOfError routes a recovered merge error into the Invalid path. The
// error lands in the sequence when it is assignable to E; otherwise the
// Invalid carries an empty sequence, since a parametric E cannot hold it.
func invalidOfError[E, T any](err error) Validation[E, T] {
	if e, ok := any(err).(E); ok {
		return Invalid[E, T](e)
	}
	return Invalid[E, T]()
}

// Filter tests the value of a Valid. The second return is false only when
// the predicate was evaluated and rejected the value; the caller must handle
// that "no result" case explicitly. An Invalid passes through untouched and
// a nil predicate keeps the Valid unchanged.
func (v Validation[E, T]) Filter(p favor.Predicate[T]) (Validation[E, T], bool) {
	if !v.valid || p == nil || p(v.value) {
		return v, true
	}
	return Validation[E, T]{}, false
}

// FilterOptional wraps the three Filter outcomes in an Optional: a rejected
// value becomes the empty Optional instead of a missing result.
func (v Validation[E, T]) FilterOptional(p favor.Predicate[T]) optional.Optional[Validation[E, T]] {
	if res, ok := v.Filter(p); ok {
		return optional.Of(res)
	}
	return optional.Empty[Validation[E, T]]()
}

// FilterOrElse keeps a Valid whose value passes p unchanged and turns a
// rejected value into an Invalid holding errorMapper(value). errorMapper is
// required only at the point a value is actually rejected. An Invalid passes
// through untouched and a nil predicate keeps the Valid unchanged.
func (v Validation[E, T]) FilterOrElse(p favor.Predicate[T], errorMapper favor.Function1[T, E]) Validation[E, T] {
	if !v.valid || p == nil || p(v.value) {
		return v
	}
	favor.RequireNonNil(errorMapper, "errorMapper")
	return Invalid[E, T](errorMapper(v.value))
}

// Map transforms the value of a Valid, keeping its type; an Invalid is a
// no-op. For a type-changing transform use the package function Map.
func (v Validation[E, T]) Map(f func(T) T) Validation[E, T] {
	if !v.valid {
		return v
	}
	favor.RequireNonNil(f, "f")
	return Valid[E, T](f(v.value))
}

// MapInvalid transforms the whole error sequence of an Invalid; a Valid is a
// no-op. f receives and returns the full sequence.
func (v Validation[E, T]) MapInvalid(f func([]E) []E) Validation[E, T] {
	if v.valid {
		return v
	}
	favor.RequireNonNil(f, "f")
	return Invalid[E, T](f(slices.Clone(v.errs))...)
}

// ToEither maps a Valid to a Right of the value and an Invalid to a Left of
// the whole error sequence.
func (v Validation[E, T]) ToEither() favor.Either[[]E, T] {
	if v.valid {
		return favor.Right[[]E, T](v.value)
	}
	return favor.Left[[]E, T](slices.Clone(v.errs))
}

// ToOptional maps a Valid to a present Optional (empty when the value is
// nil) and an Invalid to the empty Optional.
func (v Validation[E, T]) ToOptional() optional.Optional[T] {
	if !v.valid {
		return optional.Empty[T]()
	}
	return optional.OfNullable(v.value)
}

// Map transforms the value of a Valid to a new type; an Invalid is carried
// through unchanged.
func Map[E, T, U any](v Validation[E, T], f favor.Function1[T, U]) Validation[E, U] {
	if !v.valid {
		return Invalid[E, U](v.errs...)
	}
	favor.RequireNonNil(f, "f")
	return Valid[E, U](f(v.value))
}

// Fold collapses the Validation by invoking exactly one handler.
func Fold[E, T, U any](v Validation[E, T], onInvalid favor.Function1[[]E, U], onValid favor.Function1[T, U]) U {
	if v.valid {
		favor.RequireNonNil(onValid, "onValid")
		return onValid(v.value)
	}
	favor.RequireNonNil(onInvalid, "onInvalid")
	return onInvalid(slices.Clone(v.errs))
}
