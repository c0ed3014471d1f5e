package outcome

// OnSuccess invokes effect with the payload on success, for its side
// effect only, and returns the receiver unchanged.
func (r Outcome[T]) OnSuccess(effect func(v T)) Outcome[T] {
	if r.ok && effect != nil {
		effect(r.value)
	}
	return r
}

// OnFailure invokes effect with the error on failure, for its side effect
// only, and returns the receiver unchanged.
func (r Outcome[T]) OnFailure(effect func(err error)) Outcome[T] {
	if !r.ok && effect != nil {
		effect(r.err)
	}
	return r
}
