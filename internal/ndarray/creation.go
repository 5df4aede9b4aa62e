package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
)

// Full creates an array of the given shape filled with value.
//
// Example:
//
//	a, _ := ndarray.Full(shape.New(shape.NewIx2(3, 3)), 3.14)
func Full[T dtype.Numeric, D shape.Dimension](s shape.Shape[D], value T) (*Array[T, D], error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("ndarray: invalid shape: %w", err)
	}
	data := make([]T, s.Size())
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return New(data, s)
}

// Zeros creates an array of the given shape filled with zeros.
func Zeros[T dtype.Numeric, D shape.Dimension](s shape.Shape[D]) (*Array[T, D], error) {
	return Full[T](s, 0)
}

// Ones creates an array of the given shape filled with ones.
func Ones[T dtype.Numeric, D shape.Dimension](s shape.Shape[D]) (*Array[T, D], error) {
	return Full[T](s, 1)
}

// From1D creates a rank-1 array from a copy of values.
func From1D[T dtype.Numeric](values []T) (*Array[T, shape.IxDyn], error) {
	data := make([]T, len(values))
	copy(data, values)
	return New(data, shape.New(shape.NewIxDyn(len(values))))
}

// From2D creates a [rows, cols] array from nested rows.
// All rows must have the same length.
//
// Example:
//
//	b, _ := ndarray.From2D([][]int64{{1, 5, 3}, {4, 2, 6}, {0, 9, 8}})
func From2D[T dtype.Numeric](rows [][]T) (*Array[T, shape.IxDyn], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("ndarray: row %d has %d elements, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}
	return New(data, shape.New(shape.NewIxDyn(len(rows), cols)))
}

// From3D creates a [depth, rows, cols] array from nested matrices.
// All matrices must have the same number of rows and columns.
func From3D[T dtype.Numeric](planes [][][]T) (*Array[T, shape.IxDyn], error) {
	rows, cols := 0, 0
	if len(planes) > 0 {
		rows = len(planes[0])
		if rows > 0 {
			cols = len(planes[0][0])
		}
	}

	data := make([]T, 0, len(planes)*rows*cols)
	for d, plane := range planes {
		if len(plane) != rows {
			return nil, fmt.Errorf("ndarray: plane %d has %d rows, want %d: %w",
				d, len(plane), rows, ErrDimensionMismatch)
		}
		for r, row := range plane {
			if len(row) != cols {
				return nil, fmt.Errorf("ndarray: plane %d row %d has %d elements, want %d: %w",
					d, r, len(row), cols, ErrDimensionMismatch)
			}
			data = append(data, row...)
		}
	}
	return New(data, shape.New(shape.NewIxDyn(len(planes), rows, cols)))
}
