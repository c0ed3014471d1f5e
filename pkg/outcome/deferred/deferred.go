package deferred

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Deferred represents work that settles exactly once, with either a value
// or a rejection error. The zero value is not usable; create one with New
// or Run.
//
// There is no cancellation primitive: a caller may give up waiting through
// its context, but the Deferred still settles on its own schedule.
type Deferred[T any] struct {
	once   sync.Once
	done   chan struct{}
	value  T
	reason error
}

func New[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

// Resolve fulfills d with v. The first settlement wins; Resolve reports
// whether this call was the one that settled d.
func (d *Deferred[T]) Resolve(v T) bool {
	settled := false
	d.once.Do(func() {
		d.value = v
		settled = true
		close(d.done)
	})
	return settled
}

// Reject fails d with err. A nil err is normalized so a rejected Deferred
// always carries a reason. The first settlement wins.
func (d *Deferred[T]) Reject(err error) bool {
	settled := false
	d.once.Do(func() {
		d.reason = outcome.CoerceError(err)
		settled = true
		close(d.done)
	})
	return settled
}

// Done is closed once d settles.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Settled reports whether d has settled, without blocking.
func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Await blocks until d settles or ctx is done. Giving up via ctx returns
// ctx.Err() and leaves d untouched.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.reason
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitAny is Await with an untyped value, letting Deferreds of different
// type parameters be recognized structurally.
func (d *Deferred[T]) AwaitAny(ctx context.Context) (any, error) {
	v, err := d.Await(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Run executes fn in its own goroutine and settles the returned Deferred
// with its result. A panic inside fn rejects with the coerced panic value.
func Run[T any](fn func() (T, error)) *Deferred[T] {
	d := New[T]()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.Reject(outcome.CoerceError(r))
			}
		}()

		v, err := fn()
		if err != nil {
			d.Reject(err)
			return
		}
		d.Resolve(v)
	}()
	return d
}

// All resolves with every value in argument order once each input settles,
// or rejects with the leftmost rejection. A done ctx rejects with its
// error. With no inputs it resolves to an empty slice.
func All[T any](ctx context.Context, ds ...*Deferred[T]) *Deferred[[]T] {
	out := New[[]T]()
	go func() {
		vs := make([]T, len(ds))
		for i, d := range ds {
			v, err := d.Await(ctx)
			if err != nil {
				out.Reject(err)
				return
			}
			vs[i] = v
		}
		out.Resolve(vs)
	}()
	return out
}

// Race settles as the first-settling input settles, value or rejection.
// With no inputs the result never settles.
func Race[T any](ctx context.Context, ds ...*Deferred[T]) *Deferred[T] {
	out := New[T]()
	for _, d := range ds {
		d := d
		go func() {
			v, err := d.Await(ctx)
			if err != nil {
				out.Reject(err)
				return
			}
			out.Resolve(v)
		}()
	}
	return out
}
