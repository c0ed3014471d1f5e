package outcome

import "errors"

// Must returns the payload, or panics with the contained error on failure.
// Transformers never panic; extraction is the only point a represented
// failure may surface as a panic.
func (r Outcome[T]) Must() T {
	if r.ok {
		return r.value
	}
	if r.err != nil {
		panic(r.err)
	}
	panic(ErrFailure)
}

// OrNil returns a pointer to the payload, or nil on failure.
func (r Outcome[T]) OrNil() *T {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

// OrZero returns the payload, or the zero value on failure.
func (r Outcome[T]) OrZero() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.value
}

// OrElse returns the payload, or fallback on failure.
func (r Outcome[T]) OrElse(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}

// Get returns the payload and the error in Go's two-value form. Exactly
// one of them is meaningful; the caller discriminates on the error.
func (r Outcome[T]) Get() (T, error) {
	return r.value, r.err
}

// Validator inspects an Outcome's payload and error, either of which may
// be absent, and returns a Verdict driving the MustVerify chain.
type Validator[T any] func(value T, err error) Verdict

type verdictKind int

const (
	verdictContinue verdictKind = iota
	verdictAccept
	verdictReject
	verdictRejectWith
)

// Verdict is the tagged decision of a single validator.
type Verdict struct {
	kind  verdictKind
	msg   string
	cause any
}

// Accept terminates the whole chain immediately and successfully.
func Accept() Verdict {
	return Verdict{kind: verdictAccept}
}

// Continue moves on to the next validator.
func Continue() Verdict {
	return Verdict{kind: verdictContinue}
}

// Reject aborts the chain, raising a new error carrying msg.
func Reject(msg string) Verdict {
	return Verdict{kind: verdictReject, msg: msg}
}

// RejectWith aborts the chain, raising cause verbatim.
func RejectWith(cause any) Verdict {
	return Verdict{kind: verdictRejectWith, cause: cause}
}

// MustVerify runs validators in order against the payload and error and
// returns the payload once a validator accepts.
//
// Accept escapes the entire chain, skipping every remaining validator even
// when a later one would reject; a validator that only means "this single
// check passed" must return Continue, not Accept. Reject panics with an
// error built from its message, RejectWith panics with its cause verbatim,
// and nil validators are skipped. If every validator continues, a success
// returns its payload and a failure panics with the contained error.
func (r Outcome[T]) MustVerify(validators ...Validator[T]) T {
	for _, validate := range validators {
		if validate == nil {
			continue
		}
		switch v := validate(r.value, r.err); v.kind {
		case verdictAccept:
			return r.value
		case verdictReject:
			panic(errors.New(v.msg))
		case verdictRejectWith:
			panic(v.cause)
		}
	}
	if r.ok {
		return r.value
	}
	return r.Must()
}
