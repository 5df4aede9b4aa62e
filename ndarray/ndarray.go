// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/reduce"
	"github.com/born-ml/ndarray/internal/shape"
)

// Type aliases for public API

// Numeric is a constraint for array element types:
// signed and unsigned integers, float32 and float64.
type Numeric = dtype.Numeric

// DataType is the runtime tag of an element type.
type DataType = dtype.DataType

// Data type constants.
const (
	Int     DataType = dtype.Int
	Int8    DataType = dtype.Int8
	Int16   DataType = dtype.Int16
	Int32   DataType = dtype.Int32
	Int64   DataType = dtype.Int64
	Uint    DataType = dtype.Uint
	Uint8   DataType = dtype.Uint8
	Uint16  DataType = dtype.Uint16
	Uint32  DataType = dtype.Uint32
	Uint64  DataType = dtype.Uint64
	Float32 DataType = dtype.Float32
	Float64 DataType = dtype.Float64
)

// Dimension describes the extents of an array.
type Dimension = shape.Dimension

// Fixed-rank and dynamic-rank dimensions.
type (
	Ix1   = shape.Ix1
	Ix2   = shape.Ix2
	Ix3   = shape.Ix3
	IxDyn = shape.IxDyn
)

// Shape wraps a Dimension.
// Example: NewShape(NewIx3(2, 2, 3)) describes a 2×2×3 array.
type Shape[D Dimension] = shape.Shape[D]

// Array is a shaped numeric array over a flat row-major buffer.
type Array[T Numeric, D Dimension] = ndarray.Array[T, D]

// Builder configures a max or min reduction.
type Builder[T Numeric, D Dimension] = ndarray.Builder[T, D]

// MeanBuilder configures a mean reduction.
type MeanBuilder[T Numeric, D Dimension] = ndarray.MeanBuilder[T, D]

// DimensionMismatchError is returned by New for a buffer of the wrong length.
type DimensionMismatchError = ndarray.DimensionMismatchError

// Op is a reduction operation.
type Op = reduce.Op

// Reduction operations.
const (
	Max  Op = reduce.Max
	Min  Op = reduce.Min
	Mean Op = reduce.Mean
)

// Axis is an optional axis index; see All and Along.
type Axis = reduce.Axis

// All reduces over every element.
var All = reduce.All

// MaxRank is the highest rank the reductions accept.
const MaxRank = reduce.MaxRank

// Errors.
var (
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrNegativeExtent    = ndarray.ErrNegativeExtent
	ErrSizeOverflow      = ndarray.ErrSizeOverflow
	ErrEmptyArray        = ndarray.ErrEmptyArray
	ErrInvalidAxis       = ndarray.ErrInvalidAxis
	ErrUnsupportedRank   = ndarray.ErrUnsupportedRank
)

// NewIx1 creates a rank-1 dimension.
func NewIx1(n int) Ix1 { return shape.NewIx1(n) }

// NewIx2 creates a [rows, cols] dimension.
func NewIx2(rows, cols int) Ix2 { return shape.NewIx2(rows, cols) }

// NewIx3 creates a [depth, rows, cols] dimension.
func NewIx3(depth, rows, cols int) Ix3 { return shape.NewIx3(depth, rows, cols) }

// NewIxDyn creates a dimension of any rank.
func NewIxDyn(extents ...int) IxDyn { return shape.NewIxDyn(extents...) }

// NewShape wraps a dimension in a Shape.
func NewShape[D Dimension](dim D) Shape[D] { return shape.New(dim) }

// New creates an Array from a buffer and shape. The array takes ownership
// of data. It fails with ErrDimensionMismatch when len(data) != s.Size().
func New[T Numeric, D Dimension](data []T, s Shape[D]) (*Array[T, D], error) {
	return ndarray.New(data, s)
}

// Full creates an array of shape s filled with value.
func Full[T Numeric, D Dimension](s Shape[D], value T) (*Array[T, D], error) {
	return ndarray.Full(s, value)
}

// Zeros creates an array of shape s filled with zeros.
func Zeros[T Numeric, D Dimension](s Shape[D]) (*Array[T, D], error) {
	return ndarray.Zeros[T](s)
}

// Ones creates an array of shape s filled with ones.
func Ones[T Numeric, D Dimension](s Shape[D]) (*Array[T, D], error) {
	return ndarray.Ones[T](s)
}

// From1D creates a rank-1 array from a copy of values.
func From1D[T Numeric](values []T) (*Array[T, IxDyn], error) {
	return ndarray.From1D(values)
}

// From2D creates a [rows, cols] array from equally long rows.
func From2D[T Numeric](rows [][]T) (*Array[T, IxDyn], error) {
	return ndarray.From2D(rows)
}

// From3D creates a [depth, rows, cols] array from equally shaped matrices.
func From3D[T Numeric](planes [][][]T) (*Array[T, IxDyn], error) {
	return ndarray.From3D(planes)
}

// Along reduces along axis i.
func Along(i int) Axis { return reduce.Along(i) }

// ParseOp parses "max", "min" or "mean".
func ParseOp(s string) (Op, error) { return reduce.ParseOp(s) }

// Reduce applies op along axis and returns float64 results.
func Reduce[T Numeric, D Dimension](a *Array[T, D], op Op, axis Axis) ([]float64, error) {
	return ndarray.Reduce(a, op, axis)
}

// ResultDims returns the extents of a reduction result.
func ResultDims(dim Dimension, axis Axis) []int {
	return reduce.ResultDims(dim, axis)
}
