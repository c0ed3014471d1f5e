package outcome

import "time"

// Any is the untyped structural view of an Outcome: the discriminant, the
// error and the untyped payload. Recognition is deliberately duck-typed so
// that result values built in another package, or reconstructed across a
// module boundary, are still treated as Outcomes during flattening.
type Any interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if operation failed
	Err() error
	// Payload returns the untyped payload, nil when absent
	Payload() any
}

// Provider is the typed read surface of an Outcome.
type Provider[T any] interface {
	Any
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Is reports whether v is structurally an Outcome.
func Is(v any) bool {
	_, ok := asAny(v)
	return ok
}

func asAny(v any) (Any, bool) {
	if v == nil {
		return nil, false
	}
	o, ok := v.(Any)
	return o, ok
}
