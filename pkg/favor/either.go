package favor

// Either holds exactly one of two values: a Left (conventionally the error
// side) or a Right (conventionally the success side). Immutable.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding the left value.
func Left[L, R any](left L) Either[L, R] {
	return Either[L, R]{left: left, isRight: false}
}

// Right creates an Either holding the right value.
func Right[L, R any](right R) Either[L, R] {
	return Either[L, R]{right: right, isRight: true}
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Get returns the right value; it panics with a *StateError on a Left.
func (e Either[L, R]) Get() R {
	if !e.isRight {
		panic(Statef("Get called on a Left"))
	}
	return e.right
}

// GetLeft returns the left value; it panics with a *StateError on a Right.
func (e Either[L, R]) GetLeft() L {
	if e.isRight {
		panic(Statef("GetLeft called on a Right"))
	}
	return e.left
}

// Swap exchanges the sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// FoldEither collapses the Either by invoking exactly one of the handlers.
func FoldEither[L, R, U any](e Either[L, R], onLeft Function1[L, U], onRight Function1[R, U]) U {
	if e.isRight {
		RequireNonNil(onRight, "onRight")
		return onRight(e.right)
	}
	RequireNonNil(onLeft, "onLeft")
	return onLeft(e.left)
}

// MapEither transforms the right value, leaving a Left untouched.
func MapEither[L, R, R2 any](e Either[L, R], f Function1[R, R2]) Either[L, R2] {
	if !e.isRight {
		return Left[L, R2](e.left)
	}
	RequireNonNil(f, "f")
	return Right[L, R2](f(e.right))
}

// MapLeft transforms the left value, leaving a Right untouched.
func MapLeft[L, L2, R any](e Either[L, R], f Function1[L, L2]) Either[L2, R] {
	if e.isRight {
		return Right[L2, R](e.right)
	}
	RequireNonNil(f, "f")
	return Left[L2, R](f(e.left))
}
