package solo

import (
	"github.com/ib-77/rop4/pkg/rop"
)

// Handlers holds one function per variant for Match.
type Handlers[V, E, R any] struct {
	OnOk   func(v V) R
	OnFail func(e E) R
}

func Map[V, V2, E any](input rop.Result[V, E], onOk func(v V) V2) rop.Result[V2, E] {
	if input.IsOk() {
		return rop.Ok[V2, E](onOk(input.Value()))
	}
	return rop.Fail[V2](input.Err())
}

// FlatMap returns onOk's result as is; on Fail onOk is never invoked.
func FlatMap[V, V2, E any](input rop.Result[V, E], onOk func(v V) rop.Result[V2, E]) rop.Result[V2, E] {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return rop.Fail[V2](input.Err())
}

// AndThen is FlatMap under the name used when reading a chain of steps.
func AndThen[V, V2, E any](input rop.Result[V, E], next func(v V) rop.Result[V2, E]) rop.Result[V2, E] {
	return FlatMap(input, next)
}

func MapFails[V, E, E2 any](input rop.Result[V, E], onFail func(e E) E2) rop.Result[V, E2] {
	if input.IsOk() {
		return rop.Ok[V, E2](input.Value())
	}
	return rop.Fail[V](onFail(input.Err()))
}

func Flip[V, E any](input rop.Result[V, E]) rop.Result[E, V] {
	if input.IsOk() {
		return rop.Fail[E](input.Value())
	}
	return rop.Ok[E, V](input.Err())
}

// Flatten removes one level of nesting.
func Flatten[V, E any](input rop.Result[rop.Result[V, E], E]) rop.Result[V, E] {
	return FlatMap(input, func(inner rop.Result[V, E]) rop.Result[V, E] {
		return inner
	})
}

// And returns other when input is Ok. other is evaluated by the caller
// before the call; use AndWith to skip that work on Fail.
func And[V, V2, E any](input rop.Result[V, E], other rop.Result[V2, E]) rop.Result[V2, E] {
	if input.IsOk() {
		return other
	}
	return rop.Fail[V2](input.Err())
}

func AndWith[V, V2, E any](input rop.Result[V, E], other func() rop.Result[V2, E]) rop.Result[V2, E] {
	if input.IsOk() {
		return other()
	}
	return rop.Fail[V2](input.Err())
}

// Or returns input when it is Ok and other otherwise. Like And, other is
// already evaluated; OrWith defers it.
func Or[V, E, E2 any](input rop.Result[V, E], other rop.Result[V, E2]) rop.Result[V, E2] {
	if input.IsOk() {
		return rop.Ok[V, E2](input.Value())
	}
	return other
}

func OrWith[V, E, E2 any](input rop.Result[V, E], other func() rop.Result[V, E2]) rop.Result[V, E2] {
	if input.IsOk() {
		return rop.Ok[V, E2](input.Value())
	}
	return other()
}

func OrElse[V, E, E2 any](input rop.Result[V, E], onFail func(e E) rop.Result[V, E2]) rop.Result[V, E2] {
	if input.IsOk() {
		return rop.Ok[V, E2](input.Value())
	}
	return onFail(input.Err())
}

// Match invokes exactly one handler and returns its result.
func Match[V, E, R any](input rop.Result[V, E], handlers Handlers[V, E, R]) R {
	return Fold(input, handlers.OnOk, handlers.OnFail)
}

func Fold[V, E, R any](input rop.Result[V, E], onOk func(v V) R, onFail func(e E) R) R {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return onFail(input.Err())
}

func Tee[V, E any](input rop.Result[V, E], onOk func(v V)) rop.Result[V, E] {
	if input.IsOk() {
		onOk(input.Value())
	}
	return input
}

func TeeFail[V, E any](input rop.Result[V, E], onFail func(e E)) rop.Result[V, E] {
	if input.IsFail() {
		onFail(input.Err())
	}
	return input
}

func DoubleTee[V, E any](input rop.Result[V, E], onOk func(v V), onFail func(e E)) rop.Result[V, E] {
	if input.IsOk() {
		if onOk != nil {
			onOk(input.Value())
		}
	} else if onFail != nil {
		onFail(input.Err())
	}
	return input
}

// Ensure turns an Ok into Fail(failWith) when valid rejects its value.
func Ensure[V, E any](input rop.Result[V, E], valid func(v V) bool, failWith E) rop.Result[V, E] {
	if input.IsOk() && !valid(input.Value()) {
		return rop.Fail[V](failWith)
	}
	return input
}
