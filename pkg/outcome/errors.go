package outcome

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrFailure is the reason stored when a failure is built without one.
var ErrFailure = errors.New("outcome: failure")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors splits a joined error into its parts.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// CoerceError converts an arbitrary thrown or rejection value into an
// error. Error values pass through verbatim; anything else keeps only its
// printed form.
func CoerceError(v any) error {
	if IsNil(v) {
		return ErrFailure
	}
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
