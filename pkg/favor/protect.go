package favor

import "fmt"

// Protect runs f and converts any panic raised inside it into an error
// return. The recovered value is kept as-is when it already is an error and
// wrapped into a generic one otherwise. Exception-safe entry points across
// the containers are built on this single primitive instead of letting
// panics travel through combinators.
func Protect[R any](f func() R) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NormalizeRecovered(r)
		}
	}()

	result = f()
	return result, nil
}

// NormalizeRecovered converts a recovered panic value into an error.
func NormalizeRecovered(r any) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}
