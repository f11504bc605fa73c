package solo

import "github.com/ib-77/rop4/pkg/rop"

// Try calls a (value, error) function on the success value and lifts its
// outcome with rop.FromPair, so a typed nil error counts as success.
func Try[V, V2 any](input rop.Result[V, error], onTryExecute func(v V) (V2, error)) rop.Result[V2, error] {
	if input.IsFail() {
		return rop.Failure[V2](input.Err())
	}
	return rop.FromPair(onTryExecute(input.Value()))
}

// FailOnError keeps the value but fails when check reports an error.
func FailOnError[V any](input rop.Result[V, error], check func(v V) error) rop.Result[V, error] {
	if input.IsOk() {
		if err := check(input.Value()); !rop.IsNil(err) {
			return rop.Failure[V](err)
		}
	}
	return input
}

// ToPair converts back to the conventional Go return pair. A Fail carrying
// a nil error yields rop.ErrNilFailure so it never reads as success.
func ToPair[V any](input rop.Result[V, error]) (V, error) {
	if input.IsFail() && rop.IsNil(input.Err()) {
		return input.Value(), rop.ErrNilFailure
	}
	return input.Value(), input.Err()
}
