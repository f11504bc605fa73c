package rop

import (
	"errors"
	"fmt"
)

// ErrUnwrapOnFail is matched by every UnwrapError.
var ErrUnwrapOnFail = errors.New("rop: unwrap on fail")

// ErrNilFailure stands in for a Fail whose error payload is nil when the
// result is turned back into a Go error.
var ErrNilFailure = errors.New("rop: failure without error")

// UnwrapError is the panic value raised by Unwrap and Expect on a Fail.
type UnwrapError struct {
	Failure any
	Message string
}

func (e *UnwrapError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Failure)
	}
	return fmt.Sprintf("%s: %v", ErrUnwrapOnFail.Error(), e.Failure)
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrapOnFail
}

// Unwrap exposes the failure payload when it is an error itself.
func (e *UnwrapError) Unwrap() error {
	if err, ok := e.Failure.(error); ok {
		return err
	}
	return nil
}
