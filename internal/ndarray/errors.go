package ndarray

import (
	"errors"
	"fmt"

	"github.com/born-ml/ndarray/internal/reduce"
	"github.com/born-ml/ndarray/internal/shape"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")
	ErrNegativeExtent    = shape.ErrNegativeExtent
	ErrSizeOverflow      = shape.ErrSizeOverflow
	ErrEmptyArray        = reduce.ErrEmptyArray
	ErrInvalidAxis       = reduce.ErrInvalidAxis
	ErrUnsupportedRank   = reduce.ErrUnsupportedRank
)

// DimensionMismatchError reports a buffer whose length differs from the
// element count required by its shape.
type DimensionMismatchError struct {
	Expected int // Elements required by the shape
	Actual   int // Elements in the buffer
}

// Error implements the error interface.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("ndarray: dimension mismatch: expected %d elements based on the shape, but the data contains %d",
		e.Expected, e.Actual)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
