package deferred

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// From converts a Deferred's settlement into an Outcome so the rejection
// never escapes the returned Deferred: fulfillment resolves to a success,
// rejection resolves to a failure carrying mapErr's translation of the
// reason. A nil mapErr keeps the reason verbatim. The returned Deferred
// always resolves, never rejects.
func From[T any](d *Deferred[T], mapErr func(err error) error) *Deferred[outcome.Outcome[T]] {
	out := New[outcome.Outcome[T]]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				out.Resolve(outcome.Fail[T](outcome.CoerceError(r)))
			}
		}()

		v, err := d.Await(context.Background())
		if err != nil {
			if mapErr != nil {
				err = mapErr(err)
			}
			out.Resolve(outcome.Fail[T](err))
			return
		}
		out.Resolve(outcome.Succeed(v))
	}()
	return out
}

// Wrap runs fn in its own goroutine and resolves with its result as an
// Outcome: the asynchronous half of outcome.Try.
func Wrap[T any](fn func() (T, error)) *Deferred[outcome.Outcome[T]] {
	d := New[outcome.Outcome[T]]()
	go func() {
		d.Resolve(outcome.Try(fn))
	}()
	return d
}

// WrapAny runs fn in its own goroutine and applies the full wrap contract
// to whatever it produces: a panic becomes a failure, a returned Outcome
// collapses into itself, a returned Deferred is awaited and its settled
// value run through the same rules again, and anything else becomes a
// successful payload.
func WrapAny(fn func() any) *Deferred[outcome.Outcome[any]] {
	d := New[outcome.Outcome[any]]()
	go func() {
		d.Resolve(settle(outcome.Wrap(fn)))
	}()
	return d
}

// awaiter is the structural view of a Deferred, whatever its type
// parameter.
type awaiter interface {
	AwaitAny(ctx context.Context) (any, error)
}

// settle drains nested deferred payloads, re-applying the wrap rules to
// each settled value.
func settle(res outcome.Outcome[any]) outcome.Outcome[any] {
	for {
		if res.IsFailure() {
			return res
		}
		aw, ok := res.Payload().(awaiter)
		if !ok {
			return res
		}

		v, err := aw.AwaitAny(context.Background())
		if err != nil {
			return outcome.Fail[any](err)
		}
		res = outcome.Wrap(func() any { return v })
	}
}
