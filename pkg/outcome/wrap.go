package outcome

// Wrap executes op and converts whatever happens into an Outcome: a panic
// becomes a failure (error values kept verbatim, anything else coerced via
// CoerceError), a returned Outcome collapses into itself rather than
// nesting, a returned bare error becomes a failure, and any other return
// value becomes a successful payload. Callers never observe a panic from
// Wrap itself.
func Wrap(op func() any) (res Outcome[any]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[any](CoerceError(r))
		}
	}()
	return wrapAny(op())
}

// Try runs op and converts its (value, error) pair into an Outcome,
// recovering panics the same way Wrap does.
func Try[T any](op func() (T, error)) (res Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](CoerceError(r))
		}
	}()
	v, err := op()
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(v)
}

// wrapAny applies the wrap rules to an already-computed value. Nested
// Outcomes collapse until a plain payload or a failure is reached.
func wrapAny(v any) Outcome[any] {
	for {
		o, ok := asAny(v)
		if !ok {
			break
		}
		if !o.IsSuccess() {
			return Fail[any](o.Err())
		}
		v = o.Payload()
	}
	if e, isErr := v.(error); isErr && !IsNil(e) {
		// a bare error return signals failure, not a payload
		return Fail[any](e)
	}
	return Succeed[any](v)
}
