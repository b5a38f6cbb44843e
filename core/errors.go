package core

import "errors"

// Errors returned by the numeric core. They are wrapped with context via fmt.Errorf,
// so callers should match them with errors.Is.
var (
	// ErrInvalidArgument reports a shape mismatch, an empty range or a bad parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange reports a row, column or slice bound outside the array.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotImplemented reports an operation that has no defined semantics yet.
	ErrNotImplemented = errors.New("not implemented")
)
