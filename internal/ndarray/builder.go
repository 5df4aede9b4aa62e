package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/reduce"
	"github.com/born-ml/ndarray/internal/shape"
)

// request is the configuration shared by all builders.
type request struct {
	op   reduce.Op
	axis reduce.Axis
}

// describe renders the configuration for String methods.
func describe[T dtype.Numeric, D shape.Dimension](r request, a *Array[T, D]) string {
	return fmt.Sprintf("%s(axis=%s) over Array[%s, %s]", r.op, r.axis, a.DType(), a.shape)
}

// Builder configures a max or min reduction. Nothing is computed until
// Compute is called, and a builder can be computed any number of times.
//
// Example:
//
//	cols, err := a.Max().Axis(0).Compute()
type Builder[T dtype.Numeric, D shape.Dimension] struct {
	array *Array[T, D]
	req   request
}

// Max starts building a maximum reduction over a.
func (a *Array[T, D]) Max() *Builder[T, D] {
	return &Builder[T, D]{array: a, req: request{op: reduce.Max}}
}

// Min starts building a minimum reduction over a.
func (a *Array[T, D]) Min() *Builder[T, D] {
	return &Builder[T, D]{array: a, req: request{op: reduce.Min}}
}

// Axis sets the axis to reduce along.
func (b *Builder[T, D]) Axis(axis int) *Builder[T, D] {
	b.req.axis = reduce.Along(axis)
	return b
}

// Compute runs the reduction. With no axis the result has one element;
// otherwise it has one element per combination of the other axes.
func (b *Builder[T, D]) Compute() ([]T, error) {
	var (
		result []T
		err    error
	)
	b.array.read(func(data []T) {
		result, err = reduce.Extremum(b.req.op, data, b.array.shape.RawDim(), b.req.axis)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.req.op, err)
	}
	return result, nil
}

// MustCompute is like Compute but panics on error.
func (b *Builder[T, D]) MustCompute() []T {
	result, err := b.Compute()
	if err != nil {
		panic(err)
	}
	return result
}

// ComputeArray runs the reduction and shapes the result with the reduced
// axis removed (or as [1] when nothing remains).
func (b *Builder[T, D]) ComputeArray() (*Array[T, shape.IxDyn], error) {
	result, err := b.Compute()
	if err != nil {
		return nil, err
	}
	dims := reduce.ResultDims(b.array.shape.RawDim(), b.req.axis)
	return New(result, shape.New(shape.NewIxDyn(dims...)))
}

// String describes the configured reduction.
func (b *Builder[T, D]) String() string {
	return describe(b.req, b.array)
}

// MeanBuilder configures a mean reduction. Results are always float64.
type MeanBuilder[T dtype.Numeric, D shape.Dimension] struct {
	array *Array[T, D]
	req   request
}

// Mean starts building a mean reduction over a.
func (a *Array[T, D]) Mean() *MeanBuilder[T, D] {
	return &MeanBuilder[T, D]{array: a, req: request{op: reduce.Mean}}
}

// Axis sets the axis to reduce along.
func (b *MeanBuilder[T, D]) Axis(axis int) *MeanBuilder[T, D] {
	b.req.axis = reduce.Along(axis)
	return b
}

// Compute runs the reduction.
func (b *MeanBuilder[T, D]) Compute() ([]float64, error) {
	var (
		result []float64
		err    error
	)
	b.array.read(func(data []T) {
		result, err = reduce.Average(data, b.array.shape.RawDim(), b.req.axis)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.req.op, err)
	}
	return result, nil
}

// MustCompute is like Compute but panics on error.
func (b *MeanBuilder[T, D]) MustCompute() []float64 {
	result, err := b.Compute()
	if err != nil {
		panic(err)
	}
	return result
}

// ComputeArray runs the reduction and returns a shaped float64 array.
func (b *MeanBuilder[T, D]) ComputeArray() (*Array[float64, shape.IxDyn], error) {
	result, err := b.Compute()
	if err != nil {
		return nil, err
	}
	dims := reduce.ResultDims(b.array.shape.RawDim(), b.req.axis)
	return New(result, shape.New(shape.NewIxDyn(dims...)))
}

// String describes the configured reduction.
func (b *MeanBuilder[T, D]) String() string {
	return describe(b.req, b.array)
}

// Reduce applies op to a and returns float64 results for every operation.
// It is the entry point for callers that pick the operation at runtime.
func Reduce[T dtype.Numeric, D shape.Dimension](a *Array[T, D], op reduce.Op, axis reduce.Axis) ([]float64, error) {
	var (
		result []float64
		err    error
	)
	a.read(func(data []T) {
		result, err = reduce.Float64(op, data, a.shape.RawDim(), axis)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
