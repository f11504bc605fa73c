package chain

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[V, E any] struct {
	ctx    context.Context
	result rop.Result[V, E]
}

// Start creates a new chain from a rop.Result
func Start[V, E any](ctx context.Context, result rop.Result[V, E]) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[V, E any](ctx context.Context, value V) *Chain[V, E] {
	return &Chain[V, E]{
		ctx:    ctx,
		result: rop.Ok[V, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[V, E]) Result() rop.Result[V, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[V, U, E any](c *Chain[V, E], onOk func(context.Context, V) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.FlatMap(c.result, func(v V) rop.Result[U, E] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[V, U any](c *Chain[V, error], tryOnOk func(context.Context, V) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx: c.ctx,
		result: solo.Try(c.result, func(v V) (U, error) {
			return tryOnOk(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[V, U, E any](c *Chain[V, E], onOk func(context.Context, V) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v V) U {
			return onOk(c.ctx, v)
		}),
	}
}

// MapFails rewrites the failure payload
func MapFails[V, E, E2 any](c *Chain[V, E], onFail func(context.Context, E) E2) *Chain[V, E2] {
	return &Chain[V, E2]{
		ctx: c.ctx,
		result: solo.MapFails(c.result, func(e E) E2 {
			return onFail(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect on success without changing the result.
// Unlike solo.Ensure it never validates or turns Ok into Fail.
func (c *Chain[V, E]) Ensure(onOk func(context.Context, V)) *Chain[V, E] {
	return &Chain[V, E]{
		ctx: c.ctx,
		result: solo.Tee(c.result, func(v V) {
			onOk(c.ctx, v)
		}),
	}
}

// OnFail performs a side effect on failure without changing the result
func (c *Chain[V, E]) OnFail(onFail func(context.Context, E)) *Chain[V, E] {
	return &Chain[V, E]{
		ctx: c.ctx,
		result: solo.TeeFail(c.result, func(e E) {
			onFail(c.ctx, e)
		}),
	}
}

// Finally collapses the chain into a final result using solo.Fold
func Finally[V, E, R any](c *Chain[V, E], onOk func(context.Context, V) R, onFail func(context.Context, E) R) R {
	return solo.Fold(c.result,
		func(v V) R { return onOk(c.ctx, v) },
		func(e E) R { return onFail(c.ctx, e) })
}
