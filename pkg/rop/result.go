package rop

import "fmt"

// Result is either Ok with a value or Fail with a failure payload.
// The zero Result is a Fail carrying the zero E.
type Result[V, E any] struct {
	value V
	err   E
	ok    bool
}

// Outcome is a Result whose failure channel is a Go error.
type Outcome[V any] = Result[V, error]

func Ok[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value: v,
		ok:    true,
	}
}

func Fail[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		err: e,
		ok:  false,
	}
}

func Success[V any](v V) Result[V, error] {
	return Ok[V, error](v)
}

func Failure[V any](err error) Result[V, error] {
	return Fail[V](err)
}

// FromPair lifts a (value, error) pair. A typed nil pointer stored in err
// counts as no error.
func FromPair[V any](v V, err error) Result[V, error] {
	if IsNil(err) {
		return Success(v)
	}
	return Failure[V](err)
}

func (r Result[V, E]) IsOk() bool {
	return r.ok
}

func (r Result[V, E]) IsFail() bool {
	return !r.ok
}

// Value returns the success value, or the zero V on Fail.
func (r Result[V, E]) Value() V {
	return r.value
}

// Err returns the failure payload, or the zero E on Ok.
func (r Result[V, E]) Err() E {
	return r.err
}

// Get returns both payloads and the tag.
func (r Result[V, E]) Get() (V, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[V, E]) Unwrap() V {
	if !r.ok {
		panic(&UnwrapError{Failure: r.err})
	}
	return r.value
}

// Expect is Unwrap with a caller supplied diagnostic attached to the panic.
// An empty message panics exactly like Unwrap.
func (r Result[V, E]) Expect(message string) V {
	if !r.ok {
		panic(&UnwrapError{Failure: r.err, Message: message})
	}
	return r.value
}

func (r Result[V, E]) UnwrapOr(fallback V) V {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[V, E]) UnwrapOrElse(onFail func(e E) V) V {
	if r.ok {
		return r.value
	}
	return onFail(r.err)
}

// ValueOrError returns whichever payload is present, dropping the tag.
func (r Result[V, E]) ValueOrError() any {
	if r.ok {
		return r.value
	}
	return r.err
}

func (r Result[V, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}
