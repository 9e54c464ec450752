package favor

// Function0 is a computation taking no arguments.
type Function0[R any] func() R

// Function1 is a unary transform from T to R.
type Function1[T, R any] func(T) R

// Function2 is a binary transform.
type Function2[T1, T2, R any] func(T1, T2) R

// Function3 is a ternary transform.
type Function3[T1, T2, T3, R any] func(T1, T2, T3) R

// Function4 takes four arguments.
type Function4[T1, T2, T3, T4, R any] func(T1, T2, T3, T4) R

// Function5 takes five arguments.
type Function5[T1, T2, T3, T4, T5, R any] func(T1, T2, T3, T4, T5) R

// Predicate is a unary boolean test over T.
type Predicate[T any] func(T) bool

// Supplier produces a value lazily; it is evaluated only when needed.
type Supplier[T any] func() T

// Consumer is an action callback executed for its side effects.
type Consumer[T any] func(T)

// Partial is the capability of a domain-restricted mapping: Apply may only
// be meaningful for inputs where IsDefinedAt reports true. Callers that skip
// the domain check get no failure guarantee from Apply.
type Partial[T, R any] interface {
	// IsDefinedAt reports whether t belongs to the mapping's domain
	IsDefinedAt(t T) bool
	// Apply maps t unconditionally
	Apply(t T) R
}

// Equalable lets a contained value define its own equality semantics,
// distinct from structural comparison.
type Equalable[T any] interface {
	Equal(other T) bool
}
