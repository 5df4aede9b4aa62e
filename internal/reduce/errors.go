package reduce

import "errors"

// Reduction errors. Callers match them with errors.Is; returned errors
// are wrapped with the offending axis or rank.
var (
	ErrEmptyArray      = errors.New("reduce: array is empty")
	ErrInvalidAxis     = errors.New("reduce: invalid axis")
	ErrUnsupportedRank = errors.New("reduce: unsupported rank")
	ErrUnsupportedOp   = errors.New("reduce: unsupported operation")
	ErrLayoutMismatch  = errors.New("reduce: buffer length does not match layout")
)
