// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides shaped numeric arrays and max/min/mean reductions.
//
// # Overview
//
// An Array owns a flat row-major buffer and a Shape. The Shape wraps a
// Dimension, which is either fixed-rank (Ix1, Ix2, Ix3) or dynamic (IxDyn).
// Reductions collapse the whole array or a single axis:
//
//	b, _ := ndarray.New([]int64{1, 5, 3, 4, 2, 6, 0, 9, 8},
//	    ndarray.NewShape(ndarray.NewIx2(3, 3)))
//
//	b.Max().Compute()          // [9]
//	b.Max().Axis(0).Compute()  // [4 9 8]   one per column
//	b.Max().Axis(1).Compute()  // [5 6 9]   one per row
//	b.Mean().Axis(0).Compute() // [1.667 5.333 5.667]
//
// # Result Order
//
// Reducing along an axis yields one value per combination of the other
// axes, in row-major order. For a [depth, rows, cols] array:
//   - axis 0: rows*cols values, ordered by (row, col)
//   - axis 1: depth*cols values, ordered by (depth, col)
//   - axis 2: depth*rows values, ordered by (depth, row)
//
// Mean always returns float64, also for integer arrays.
//
// # Errors
//
// New fails with ErrDimensionMismatch when the buffer length differs from
// the shape size. Reductions fail with ErrEmptyArray, ErrInvalidAxis or
// ErrUnsupportedRank (ranks 1 to 3 are supported). Match them with errors.Is.
//
// # Concurrency
//
// Reductions only read the array and may run concurrently. Fill, Zero and
// One are serialized against reductions started through builders.
package ndarray
