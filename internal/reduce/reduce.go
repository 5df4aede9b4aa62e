// Package reduce implements max, min and mean reductions over flat row-major
// buffers, either over the whole buffer or along a single axis.
//
// Every reduction splits the buffer into groups. A group holds the elements
// that share coordinates on every axis except the reduced one, so along axis a
// of extents [d0 ... dn] there are prod(d[:a]) * prod(d[a+1:]) groups of d[a]
// elements each, spaced prod(d[a+1:]) apart. Results are ordered row-major
// over the remaining axes:
//
//	x has shape [2, 2, 3]
//	Extremum(Max, x, dims, Along(2))  // 4 results: (d0,r0) (d0,r1) (d1,r0) (d1,r1)
//	Extremum(Max, x, dims, Along(0))  // 6 results: (r,c) pairs, row-major
//
// Source buffers are never written; every call allocates its result.
package reduce

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/shape"
)

// MaxRank is the highest rank accepted by the reductions.
const MaxRank = 3

// groups describes how a reduction partitions a buffer.
//
// Group (o, i) for o in [0, outer) and i in [0, inner) starts at
// o*extent*inner + i and visits extent elements with step inner.
type groups struct {
	outer  int // product of extents before the reduced axis
	extent int // extent of the reduced axis (group length)
	inner  int // product of extents after the reduced axis (group stride)
}

// layout computes the groups for dim and axis from its row-major strides.
// A missing axis gives a single group covering the whole buffer.
// dim must have passed validate, so every extent is positive.
func layout(dim shape.Dimension, axis Axis) groups {
	size := dim.Size()
	a, ok := axis.Index()
	if !ok {
		return groups{outer: 1, extent: size, inner: 1}
	}
	extent := dim.Dims()[a]
	inner := shape.Strides(dim)[a]
	return groups{
		outer:  size / (extent * inner),
		extent: extent,
		inner:  inner,
	}
}

// count returns the number of groups (result length).
func (g groups) count() int {
	return g.outer * g.inner
}

// walk calls fn once per group with the result index and the buffer
// offset of the group's first element, in row-major result order.
func (g groups) walk(fn func(out, base int)) {
	block := g.extent * g.inner
	for o := 0; o < g.outer; o++ {
		for i := 0; i < g.inner; i++ {
			fn(o*g.inner+i, o*block+i)
		}
	}
}

// validate checks the preconditions shared by all reductions, in order:
// empty buffer, axis range, rank.
func validate(n int, dim shape.Dimension, axis Axis) error {
	if n == 0 {
		return ErrEmptyArray
	}

	ndim := dim.NDim()
	if a, ok := axis.Index(); ok && (a < 0 || a >= ndim) {
		return fmt.Errorf("%w: axis %d out of range for %dD array", ErrInvalidAxis, a, ndim)
	}
	if ndim < 1 || ndim > MaxRank {
		return fmt.Errorf("%w: %dD arrays are not supported (max %dD)", ErrUnsupportedRank, ndim, MaxRank)
	}
	size, err := shape.CheckedSize(dim)
	if err != nil {
		return err
	}
	if size != n {
		return fmt.Errorf("%w: %d elements for %v", ErrLayoutMismatch, n, dim.Dims())
	}
	return nil
}

// Extremum computes the maximum (op == Max) or minimum (op == Min) of each group.
//
// Example:
//
//	data := []int64{1, 5, 3, 4, 2, 6, 0, 9, 8}
//	cols, _ := reduce.Extremum(reduce.Max, data, shape.NewIx2(3, 3), reduce.Along(0))
//	// cols = [4 9 8]
func Extremum[T dtype.Numeric](op Op, data []T, dim shape.Dimension, axis Axis) ([]T, error) {
	var better func(a, b T) bool
	switch op {
	case Max:
		better = func(a, b T) bool { return a > b }
	case Min:
		better = func(a, b T) bool { return a < b }
	default:
		return nil, fmt.Errorf("%w: %s does not return element values", ErrUnsupportedOp, op)
	}

	if err := validate(len(data), dim, axis); err != nil {
		return nil, err
	}

	g := layout(dim, axis)
	result := make([]T, g.count())
	g.walk(func(out, base int) {
		best := data[base]
		for k := 1; k < g.extent; k++ {
			if v := data[base+k*g.inner]; better(v, best) {
				best = v
			}
		}
		result[out] = best
	})
	return result, nil
}

// Average computes the arithmetic mean of each group.
// Elements are accumulated as float64, so integer inputs give fractional means.
func Average[T dtype.Numeric](data []T, dim shape.Dimension, axis Axis) ([]float64, error) {
	if err := validate(len(data), dim, axis); err != nil {
		return nil, err
	}

	g := layout(dim, axis)
	result := make([]float64, g.count())
	n := float64(g.extent)
	g.walk(func(out, base int) {
		var sum float64
		for k := 0; k < g.extent; k++ {
			sum += float64(data[base+k*g.inner])
		}
		result[out] = sum / n
	})
	return result, nil
}

// Float64 applies any operation and returns the result as float64.
// Max and Min results are converted after reduction.
func Float64[T dtype.Numeric](op Op, data []T, dim shape.Dimension, axis Axis) ([]float64, error) {
	if op == Mean {
		return Average(data, dim, axis)
	}

	values, err := Extremum(op, data, dim, axis)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(values))
	for i, v := range values {
		result[i] = float64(v)
	}
	return result, nil
}

// ResultDims returns the extents of a reduction result: dim without the
// reduced axis. A reduction over everything, or over the only axis of a
// 1D array, yields [1].
func ResultDims(dim shape.Dimension, axis Axis) []int {
	a, ok := axis.Index()
	dims := dim.Dims()
	if !ok || a < 0 || a >= len(dims) || len(dims) == 1 {
		return []int{1}
	}

	out := make([]int, 0, len(dims)-1)
	out = append(out, dims[:a]...)
	return append(out, dims[a+1:]...)
}
