package favor

import "reflect"

// IsNil reports whether i is nil, including a typed nil wrapped in a
// non-nil interface value.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// CollectErrors flattens err into its joined parts. A nil error yields an
// empty slice; an error without an Unwrap() []error method yields itself.
func CollectErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
