package tiny

import (
	"context"

	"github.com/ib-77/rop4/pkg/rop"
	"github.com/ib-77/rop4/pkg/rop/solo"
)

type Chain[V, E any] struct {
	ctx context.Context
	res rop.Result[V, E]
}

func Start[V, E any](ctx context.Context, r rop.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{ctx: ctx, res: r}
}

func FromValue[V, E any](ctx context.Context, v V) Chain[V, E] {
	return Start(ctx, rop.Ok[V, E](v))
}

func (c Chain[V, E]) Result() rop.Result[V, E] {
	return c.res
}

// Then composes functions that already return rop.Result[V, E]
func (c Chain[V, E]) Then(onOk func(ctx context.Context, v V) rop.Result[V, E]) Chain[V, E] {
	if c.res.IsFail() {
		return c
	}
	return Chain[V, E]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[V, E]) Map(onOk func(ctx context.Context, v V) V) Chain[V, E] {
	if c.res.IsFail() {
		return c
	}
	return Chain[V, E]{ctx: c.ctx, res: rop.Ok[V, E](onOk(c.ctx, c.res.Value()))}
}

// RepeatUntil runs onOk at least once and keeps going while until holds.
func (c Chain[V, E]) RepeatUntil(onOk func(ctx context.Context, v V) rop.Result[V, E],
	until func(ctx context.Context, v V) bool) Chain[V, E] {

	if c.res.IsFail() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsFail() || !until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[V, E]) While(onOk func(ctx context.Context, v V) rop.Result[V, E],
	while func(ctx context.Context, v V) bool) Chain[V, E] {

	for c.res.IsOk() && while(c.ctx, c.res.Value()) {
		c = c.Then(onOk)
	}
	return c
}

// Or keeps c when it is Ok, otherwise the first Ok alternative. When all
// fail, the last failure wins.
func (c Chain[V, E]) Or(alternatives ...Chain[V, E]) Chain[V, E] {
	current := c
	for _, alt := range alternatives {
		if current.res.IsOk() {
			return current
		}
		current = Chain[V, E]{ctx: alt.ctx, res: solo.Or(current.res, alt.res)}
	}
	return current
}

// OrElse recovers a failed chain with a fallback step.
func (c Chain[V, E]) OrElse(onFail func(ctx context.Context, e E) rop.Result[V, E]) Chain[V, E] {
	return Chain[V, E]{ctx: c.ctx, res: solo.OrElse(c.res, func(e E) rop.Result[V, E] {
		return onFail(c.ctx, e)
	})}
}

// And returns the last chain when every chain is Ok, otherwise the first
// failed one.
func (c Chain[V, E]) And(required ...Chain[V, E]) Chain[V, E] {
	current := c
	for _, next := range required {
		if current.res.IsFail() {
			return current
		}
		current = Chain[V, E]{ctx: next.ctx, res: solo.And(current.res, next.res)}
	}
	return current
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[V, E]) Ensure(onOk func(context.Context, V), onFail func(context.Context, E)) Chain[V, E] {
	if c.res.IsFail() {
		if onFail != nil {
			onFail(c.ctx, c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Fold
func (c Chain[V, E]) Finally(
	onOk func(context.Context, V) V,
	onFail func(context.Context, E) V,
) V {
	return solo.Fold(c.res,
		func(v V) V { return onOk(c.ctx, v) },
		func(e E) V { return onFail(c.ctx, e) })
}
