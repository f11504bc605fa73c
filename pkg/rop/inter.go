package rop

// Tagged is implemented by every Result regardless of its type parameters,
// so results of different shapes can be inspected together.
type Tagged interface {
	// IsOk reports the success variant
	IsOk() bool
	// IsFail reports the failure variant, always !IsOk()
	IsFail() bool
	// ValueOrError returns the present payload untagged
	ValueOrError() any
}

var _ Tagged = Result[struct{}, struct{}]{}
