package ir

import "errors"

var (
	// ErrKind reports a write against a value whose Kind does not admit it,
	// such as SetKey on a non-Map or SetIndex on a non-Array.
	ErrKind = errors.New("kind violation")

	// ErrIndex reports a SetIndex outside [0, Len()). Growth by assignment
	// is not supported; use Add.
	ErrIndex = errors.New("index out of range")

	// ErrPath reports a GetPath miss or a malformed path.
	ErrPath = errors.New("bad path")
)
