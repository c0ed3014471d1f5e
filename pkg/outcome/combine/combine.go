package combine

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Map transforms the successful payload, leaving failures untouched.
// onSuccess is never invoked on a failure.
func Map[In any, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return outcome.Succeed(onSuccess(ctx, input.Value()))
	}
	return outcome.Fail[Out](input.Err())
}

// Then composes a function that itself returns an Outcome, short-circuiting
// on failure without invoking onSuccess.
func Then[In any, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return outcome.Fail[Out](input.Err())
}

// Try composes a function in Go's (value, error) form, converting a
// returned error into a failure.
func Try[In any, Out any](ctx context.Context, input outcome.Outcome[In],
	onTryExecute func(ctx context.Context, v In) (Out, error)) outcome.Outcome[Out] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return outcome.Fail[Out](err)
		}
		return outcome.Succeed(out)
	}
	return outcome.Fail[Out](input.Err())
}

// Apply applies a wrapped unary function to a wrapped argument. When both
// sides failed, the function-side error wins.
func Apply[A any, B any](ctx context.Context, fn outcome.Outcome[func(ctx context.Context, a A) B],
	arg outcome.Outcome[A]) outcome.Outcome[B] {

	if fn.IsFailure() {
		return outcome.Fail[B](fn.Err())
	}
	if arg.IsFailure() {
		return outcome.Fail[B](arg.Err())
	}
	return outcome.Succeed(fn.Value()(ctx, arg.Value()))
}

// Lift2 lifts a binary function over Outcomes. Arguments are scanned left
// to right and the first failure is returned without invoking f.
func Lift2[A, B, R any](f func(ctx context.Context, a A, b B) R) func(ctx context.Context,
	a outcome.Outcome[A], b outcome.Outcome[B]) outcome.Outcome[R] {

	return func(ctx context.Context, a outcome.Outcome[A], b outcome.Outcome[B]) outcome.Outcome[R] {
		if a.IsFailure() {
			return outcome.Fail[R](a.Err())
		}
		if b.IsFailure() {
			return outcome.Fail[R](b.Err())
		}
		return outcome.Succeed(f(ctx, a.Value(), b.Value()))
	}
}

// Lift3 lifts a ternary function over Outcomes, leftmost failure first.
func Lift3[A, B, C, R any](f func(ctx context.Context, a A, b B, c C) R) func(ctx context.Context,
	a outcome.Outcome[A], b outcome.Outcome[B], c outcome.Outcome[C]) outcome.Outcome[R] {

	return func(ctx context.Context, a outcome.Outcome[A], b outcome.Outcome[B],
		c outcome.Outcome[C]) outcome.Outcome[R] {

		if a.IsFailure() {
			return outcome.Fail[R](a.Err())
		}
		if b.IsFailure() {
			return outcome.Fail[R](b.Err())
		}
		if c.IsFailure() {
			return outcome.Fail[R](c.Err())
		}
		return outcome.Succeed(f(ctx, a.Value(), b.Value(), c.Value()))
	}
}

// Lift4 lifts a four-argument function over Outcomes, leftmost failure
// first.
func Lift4[A, B, C, D, R any](f func(ctx context.Context, a A, b B, c C, d D) R) func(ctx context.Context,
	a outcome.Outcome[A], b outcome.Outcome[B], c outcome.Outcome[C], d outcome.Outcome[D]) outcome.Outcome[R] {

	return func(ctx context.Context, a outcome.Outcome[A], b outcome.Outcome[B],
		c outcome.Outcome[C], d outcome.Outcome[D]) outcome.Outcome[R] {

		if a.IsFailure() {
			return outcome.Fail[R](a.Err())
		}
		if b.IsFailure() {
			return outcome.Fail[R](b.Err())
		}
		if c.IsFailure() {
			return outcome.Fail[R](c.Err())
		}
		if d.IsFailure() {
			return outcome.Fail[R](d.Err())
		}
		return outcome.Succeed(f(ctx, a.Value(), b.Value(), c.Value(), d.Value()))
	}
}

// LiftAll lifts a homogeneous variadic function over Outcomes, leftmost
// failure first.
func LiftAll[T, R any](f func(ctx context.Context, vs ...T) R) func(ctx context.Context,
	inputs ...outcome.Outcome[T]) outcome.Outcome[R] {

	return func(ctx context.Context, inputs ...outcome.Outcome[T]) outcome.Outcome[R] {
		vs := make([]T, 0, len(inputs))
		for _, in := range inputs {
			if in.IsFailure() {
				return outcome.Fail[R](in.Err())
			}
			vs = append(vs, in.Value())
		}
		return outcome.Succeed(f(ctx, vs...))
	}
}

// Match reduces an Outcome to a final value; exactly one branch runs.
func Match[In any, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return onFailure(ctx, input.Err())
}

// Collect gathers every payload in argument order, or fails with all
// errors joined when any input failed. A done context fails immediately.
func Collect[T any](ctx context.Context, inputs ...outcome.Outcome[T]) outcome.Outcome[[]T] {
	if err := ctx.Err(); err != nil {
		return outcome.Fail[[]T](err)
	}

	vs := make([]T, 0, len(inputs))
	var errs []error
	for _, in := range inputs {
		if in.IsFailure() {
			errs = append(errs, outcome.Errors(in.Err())...)
			continue
		}
		vs = append(vs, in.Value())
	}

	if len(errs) > 0 {
		return outcome.Fail[[]T](errors.Join(errs...))
	}
	return outcome.Succeed(vs)
}
