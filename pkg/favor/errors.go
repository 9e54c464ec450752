package favor

import "fmt"

// ArgumentError reports a contract violation: a required argument was nil at
// the point of use. It is raised by panicking, never recovered by the
// library itself.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return "invalid argument: " + e.Message
}

// Argumentf creates a new ArgumentError with a formatted message.
func Argumentf(pattern string, values ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(pattern, values...)}
}

// StateError reports an accessor called on the wrong variant of a container,
// e.g. reading the error of a successful computation.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return "illegal state: " + e.Message
}

// Statef creates a new StateError with a formatted message.
func Statef(pattern string, values ...any) *StateError {
	return &StateError{Message: fmt.Sprintf(pattern, values...)}
}

// RequireNonNil panics with an *ArgumentError when value is nil, including
// typed nils hiding behind an interface.
func RequireNonNil(value any, name string) {
	if IsNil(value) {
		panic(Argumentf("%s must not be nil", name))
	}
}
