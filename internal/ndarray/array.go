// Package ndarray provides shaped numeric arrays over flat row-major buffers
// and fluent max/min/mean reductions.
package ndarray

import (
	"fmt"
	"sync"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
)

// Array owns a flat row-major buffer of T and the Shape describing it.
//
// For a [depth, rows, cols] array, element (d, r, c) is stored at
// d*rows*cols + r*cols + c. len(Data()) == Shape().Size() always holds.
//
// Type Parameters:
//   - T: element type (must satisfy dtype.Numeric)
//   - D: dimension type (shape.Ix1, shape.Ix2, shape.Ix3 or shape.IxDyn)
//
// Reductions started through a builder hold a read lock for their duration;
// Fill, Zero and One take the write lock. Concurrent reductions over the
// same array are safe.
type Array[T dtype.Numeric, D shape.Dimension] struct {
	mu    sync.RWMutex
	data  []T
	shape shape.Shape[D]
}

// New creates an Array from a buffer and a shape. The array takes ownership
// of data; callers must not modify it afterwards.
//
// It returns a *DimensionMismatchError when len(data) != s.Size().
//
// Example:
//
//	a, err := ndarray.New([]int64{1, 2, 3, 4, 5, 6}, shape.New(shape.NewIx2(2, 3)))
func New[T dtype.Numeric, D shape.Dimension](data []T, s shape.Shape[D]) (*Array[T, D], error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("ndarray: invalid shape: %w", err)
	}
	if len(data) != s.Size() {
		return nil, &DimensionMismatchError{Expected: s.Size(), Actual: len(data)}
	}
	return &Array[T, D]{data: data, shape: s}, nil
}

// Data returns the underlying buffer without copying.
// WARNING: the slice aliases the array; treat it as read-only.
func (a *Array[T, D]) Data() []T {
	return a.data
}

// Shape returns the array's shape.
func (a *Array[T, D]) Shape() shape.Shape[D] {
	return a.shape
}

// NDim returns the number of axes.
func (a *Array[T, D]) NDim() int {
	return a.shape.NDim()
}

// Len returns the number of elements.
func (a *Array[T, D]) Len() int {
	return len(a.data)
}

// DType returns the runtime element type tag.
func (a *Array[T, D]) DType() dtype.DataType {
	return dtype.Of[T]()
}

// Fill overwrites every element with v.
func (a *Array[T, D]) Fill(v T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.data {
		a.data[i] = v
	}
}

// Zero overwrites every element with 0.
func (a *Array[T, D]) Zero() {
	a.Fill(0)
}

// One overwrites every element with 1.
func (a *Array[T, D]) One() {
	a.Fill(1)
}

// read runs fn with the buffer under the read lock.
func (a *Array[T, D]) read(fn func(data []T)) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	fn(a.data)
}
