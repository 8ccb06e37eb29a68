package rubiks

import "errors"

// Sentinel errors for the rubiks package.
var (
	// Programming errors
	ErrIndexOutOfRange = errors.New("rubiks: row or column index out of range")
	ErrInvalidMove     = errors.New("rubiks: invalid move")

	// Parsing errors
	ErrInvalidNotation = errors.New("rubiks: invalid move notation")
	ErrInvalidState    = errors.New("rubiks: invalid cube state")

	// Shuffle errors
	ErrNegativeCount = errors.New("rubiks: negative move count")
)
