package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds the result of a fallible computation: either a success
// carrying a payload of T, or a failure carrying an error. Exactly one of
// the two is populated, and the value is immutable after construction.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	ok        bool
	hasValue  bool
}

// Succeed wraps v into a successful Outcome.
//
// Precondition: v must not be a non-nil error and must not itself be an
// Outcome. A payload that signals failure or wraps another result defeats
// the discriminant; both cases panic. Use Fail for errors and Wrap when the
// value may already be an Outcome.
func Succeed[T any](v T) Outcome[T] {
	if e, isErr := any(v).(error); isErr && !IsNil(e) {
		panic(fmt.Sprintf("outcome: Succeed called with error payload: %v", e))
	}
	if Is(any(v)) {
		panic("outcome: Succeed called with Outcome payload, use Wrap to flatten")
	}
	return Outcome[T]{
		value:     v,
		ok:        true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err into a failed Outcome. A nil err is normalized to
// ErrFailure so a failure always carries a reason.
func Fail[T any](err error) Outcome[T] {
	if IsNil(err) {
		err = ErrFailure
	}
	return Outcome[T]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failf builds a failed Outcome from a message, lifting plain text into an
// error.
func Failf[T any](format string, args ...any) Outcome[T] {
	return Fail[T](fmt.Errorf(format, args...))
}

// Value returns the successful payload, or the zero value on failure.
func (r Outcome[T]) Value() T {
	return r.value
}

// Err returns the error if the computation failed.
func (r Outcome[T]) Err() error {
	return r.err
}

// IsSuccess returns true if the computation succeeded.
func (r Outcome[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure returns true if the computation failed.
func (r Outcome[T]) IsFailure() bool {
	return !r.ok
}

// HasValue reports whether a payload is populated.
func (r Outcome[T]) HasValue() bool {
	return r.hasValue
}

// Payload returns the payload untyped, nil when absent. It is also the
// hook that makes every Outcome satisfy Any.
func (r Outcome[T]) Payload() any {
	if !r.hasValue {
		return nil
	}
	return r.value
}

// CreatedAt is the construction time (UTC).
func (r Outcome[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports whether r is an unconstructed zero value.
func (r Outcome[T]) IsEmpty() bool {
	return r.err == nil && !r.ok && !r.hasValue
}

func (r Outcome[T]) Id() uuid.UUID {
	return r.id
}

func (r Outcome[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
