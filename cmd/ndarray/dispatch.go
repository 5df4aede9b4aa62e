// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/born-ml/ndarray/internal/document"
	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/reduce"
)

// job is one document to reduce.
type job struct {
	source string
	ops    []reduce.Op
	axis   reduce.Axis
	logger *zap.Logger
}

// handler binds the element type chosen by a document's dtype.
type handler struct {
	reduce func(doc *document.Document, j job) ([]document.Result, error)
	format func(doc *document.Document, precision int) (string, error)
}

var handlers = map[dtype.DataType]handler{
	dtype.Int:     handlerFor[int](),
	dtype.Int8:    handlerFor[int8](),
	dtype.Int16:   handlerFor[int16](),
	dtype.Int32:   handlerFor[int32](),
	dtype.Int64:   handlerFor[int64](),
	dtype.Uint:    handlerFor[uint](),
	dtype.Uint8:   handlerFor[uint8](),
	dtype.Uint16:  handlerFor[uint16](),
	dtype.Uint32:  handlerFor[uint32](),
	dtype.Uint64:  handlerFor[uint64](),
	dtype.Float32: handlerFor[float32](),
	dtype.Float64: handlerFor[float64](),
}

func handlerFor[T dtype.Numeric]() handler {
	return handler{reduce: reduceAs[T], format: formatAs[T]}
}

// lookup returns the handler for a document's dtype.
func lookup(doc *document.Document) (handler, error) {
	dt, err := doc.DataType()
	if err != nil {
		return handler{}, err
	}
	h, ok := handlers[dt]
	if !ok {
		return handler{}, fmt.Errorf("no handler for dtype %s", dt)
	}
	return h, nil
}

// reduceAs decodes doc as T and applies every requested operation.
// Reduction errors are reported in the results; decode errors abort the
// run, as the reduce command's help describes.
func reduceAs[T dtype.Numeric](doc *document.Document, j job) ([]document.Result, error) {
	arr, err := document.Array[T](doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", j.source, err)
	}
	j.logger.Debug("reducing array",
		zap.String("source", j.source),
		zap.Stringer("dtype", arr.DType()),
		zap.Stringer("shape", arr.Shape()),
		zap.Stringer("axis", j.axis))

	var axis *int
	if a, ok := j.axis.Index(); ok {
		axis = &a
	}

	results := make([]document.Result, 0, len(j.ops))
	for _, op := range j.ops {
		r := document.Result{Source: j.source, Op: op.String(), Axis: axis}
		values, err := ndarray.Reduce(arr, op, j.axis)
		if err != nil {
			j.logger.Warn("reduction failed",
				zap.String("source", j.source),
				zap.Stringer("op", op),
				zap.Error(err))
			r.Error = err.Error()
		} else {
			r.Shape = reduce.ResultDims(arr.Shape().RawDim(), j.axis)
			r.Data = values
		}
		results = append(results, r)
	}
	return results, nil
}

// formatAs decodes doc as T and renders it.
func formatAs[T dtype.Numeric](doc *document.Document, precision int) (string, error) {
	arr, err := document.Array[T](doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s\n%s", arr.DType(), arr.Shape(), arr.Format(precision)), nil
}
