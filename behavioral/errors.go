package behavioral

import "errors"

var (
	// ErrUnhandled indicates no handler in the chain consumed the request.
	ErrUnhandled = errors.New("behavioral: request fell through the chain")
	// ErrBadToken indicates the interpreter met an unsupported operator or operand.
	ErrBadToken = errors.New("behavioral: unsupported token")
	// ErrNothingToUndo indicates Undo was called with an empty command history.
	ErrNothingToUndo = errors.New("behavioral: command history is empty")
	// ErrExhausted indicates Next was called on a finished iterator.
	ErrExhausted = errors.New("behavioral: iterator exhausted")
)
