package flow

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/combine"
)

// Chain wraps an Outcome with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Outcome[T]
}

// Start creates a new chain from an Outcome.
func Start[T any](ctx context.Context, r outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Succeed(v))
}

// Outcome returns the underlying Outcome.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.res
}

// Then composes a function that already returns an Outcome.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, v T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: combine.Then(c.ctx, c.res, onSuccess)}
}

// ThenTry composes a function that returns (T, error).
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: combine.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: combine.Map(c.ctx, c.res, onSuccess)}
}

// Ensure triggers side effects for success or failure without changing the
// result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Or returns c when it succeeded and the alternative otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// Finally collapses the chain to a final value, delegating to
// combine.Match.
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return combine.Match(c.ctx, c.res, onSuccess, onFailure)
}

// Then switches the chain to a new value type via a function that returns
// an Outcome.
func Then[T, U any](c Chain[T], onSuccess func(ctx context.Context, v T) outcome.Outcome[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: combine.Then(c.ctx, c.res, onSuccess)}
}

// ThenTry switches the chain to a new value type via a function that
// returns (U, error).
func ThenTry[T, U any](c Chain[T], try func(ctx context.Context, v T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: combine.Try(c.ctx, c.res, try)}
}

// Map switches the chain to a new value type via a pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, v T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: combine.Map(c.ctx, c.res, onSuccess)}
}

// Finally collapses the chain into a final value of another type.
func Finally[T, U any](c Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U,
) U {
	return combine.Match(c.ctx, c.res, onSuccess, onFailure)
}
