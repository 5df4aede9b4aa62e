package shape

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors.
var (
	ErrNegativeExtent = errors.New("shape: negative extent")
	ErrSizeOverflow   = errors.New("shape: size overflows int")
)

// Shape wraps a single Dimension value and delegates to it.
// Shapes are values: copying a Shape copies its dimension.
type Shape[D Dimension] struct {
	dim D
}

// New creates a Shape from a dimension.
//
// Example:
//
//	s := shape.New(shape.NewIx2(3, 4))
//	s.Size() // 12
func New[D Dimension](dim D) Shape[D] {
	return Shape[D]{dim: dim}
}

// RawDim returns the wrapped dimension.
func (s Shape[D]) RawDim() D {
	return s.dim
}

// NDim returns the number of axes.
func (s Shape[D]) NDim() int {
	return s.dim.NDim()
}

// Size returns the number of elements.
func (s Shape[D]) Size() int {
	return s.dim.Size()
}

// Dims returns a copy of the extents, axis 0 first.
func (s Shape[D]) Dims() []int {
	return s.dim.Dims()
}

// Validate checks that no extent is negative and that the element count
// fits in an int. Zero extents are allowed and describe an empty array.
func (s Shape[D]) Validate() error {
	_, err := CheckedSize(s.dim)
	return err
}

// Equal reports whether other has the same extents in the same order.
func (s Shape[D]) Equal(other Dimension) bool {
	a, b := s.dim.Dims(), other.Dims()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable form, e.g. "Shape=[2 3]".
func (s Shape[D]) String() string {
	return fmt.Sprintf("Shape=%v", s.dim.Dims())
}

// CheckedSize returns the element count of d. Unlike d.Size it fails with
// ErrNegativeExtent or ErrSizeOverflow instead of returning a wrapped product.
func CheckedSize(d Dimension) (int, error) {
	dims := d.Dims()
	empty := len(dims) == 0
	for i, e := range dims {
		if e < 0 {
			return 0, fmt.Errorf("%w: axis %d has extent %d", ErrNegativeExtent, i, e)
		}
		if e == 0 {
			empty = true
		}
	}
	if empty {
		return 0, nil
	}

	n := 1
	for _, e := range dims {
		if n > math.MaxInt/e {
			return 0, fmt.Errorf("%w: extents %v", ErrSizeOverflow, dims)
		}
		n *= e
	}
	return n, nil
}

// Strides calculates row-major strides for any dimension.
// stride[i] is the product of all extents after axis i.
func Strides(d Dimension) []int {
	dims := d.Dims()
	strides := make([]int, len(dims))
	if len(dims) == 0 {
		return strides
	}

	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}
	return strides
}
