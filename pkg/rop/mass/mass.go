package mass

import (
	"errors"

	"github.com/ib-77/rop4/pkg/rop"
)

// Combine returns Ok with all values when every input is Ok, otherwise Fail
// with every failure payload. Both slices keep input order and are never nil.
func Combine[V, E any](results ...rop.Result[V, E]) rop.Result[[]V, []E] {
	oks, fails := Partition(results...)
	if len(fails) > 0 {
		return rop.Fail[[]V](fails)
	}
	return rop.Ok[[]V, []E](oks)
}

// Partition splits results into their values and failures, keeping order.
func Partition[V, E any](results ...rop.Result[V, E]) ([]V, []E) {
	oks := make([]V, 0, len(results))
	fails := make([]E, 0)

	for _, r := range results {
		if r.IsOk() {
			oks = append(oks, r.Value())
		} else {
			fails = append(fails, r.Err())
		}
	}
	return oks, fails
}

// Traverse applies fn to every item and combines the outcomes. fn runs for
// all items even after a failure.
func Traverse[T, V, E any](items []T, fn func(item T) rop.Result[V, E]) rop.Result[[]V, []E] {
	results := make([]rop.Result[V, E], 0, len(items))
	for _, item := range items {
		results = append(results, fn(item))
	}
	return Combine(results...)
}

// Sequence collects all values or returns the first failure.
func Sequence[V, E any](results ...rop.Result[V, E]) rop.Result[[]V, E] {
	oks := make([]V, 0, len(results))
	for _, r := range results {
		if r.IsFail() {
			return rop.Fail[[]V](r.Err())
		}
		oks = append(oks, r.Value())
	}
	return rop.Ok[[]V, E](oks)
}

// CombineErrors is Combine for error failures, joining them with
// errors.Join. Already joined errors are flattened first.
func CombineErrors[V any](results ...rop.Result[V, error]) rop.Result[[]V, error] {
	oks, fails := Partition(results...)
	if len(fails) == 0 {
		return rop.Success(oks)
	}

	var all []error
	for _, err := range fails {
		parts := rop.GetErrors(err)
		if len(parts) == 0 {
			parts = []error{rop.ErrNilFailure}
		}
		all = append(all, parts...)
	}
	return rop.Failure[[]V](errors.Join(all...))
}

func AllOk(results ...rop.Tagged) bool {
	for _, r := range results {
		if r.IsFail() {
			return false
		}
	}
	return true
}

func AnyFail(results ...rop.Tagged) bool {
	return !AllOk(results...)
}

// CountFails returns how many of results are Fail.
func CountFails(results ...rop.Tagged) int {
	n := 0
	for _, r := range results {
		if r.IsFail() {
			n++
		}
	}
	return n
}
