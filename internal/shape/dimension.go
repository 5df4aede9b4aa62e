// Package shape provides the dimension and shape types that describe the
// layout of a flat row-major buffer.
package shape

// Dimension describes the extents of an array.
//
// Implementations:
//   - Ix1, Ix2, Ix3: fixed rank, known from the type
//   - IxDyn: rank known only at runtime
type Dimension interface {
	// NDim returns the number of axes.
	NDim() int

	// Size returns the number of elements (product of all extents).
	// An empty extent list has size 0.
	Size() int

	// Dims returns a copy of the extents, axis 0 first.
	Dims() []int
}

// Compile-time checks.
var (
	_ Dimension = Ix1{}
	_ Dimension = Ix2{}
	_ Dimension = Ix3{}
	_ Dimension = IxDyn(nil)
)

// Ix1 is a rank-1 dimension.
type Ix1 [1]int

// Ix2 is a rank-2 dimension: [rows, cols].
type Ix2 [2]int

// Ix3 is a rank-3 dimension: [depth, rows, cols].
type Ix3 [3]int

// NewIx1 creates a rank-1 dimension of length n.
func NewIx1(n int) Ix1 { return Ix1{n} }

// NewIx2 creates a rank-2 dimension.
func NewIx2(rows, cols int) Ix2 { return Ix2{rows, cols} }

// NewIx3 creates a rank-3 dimension.
func NewIx3(depth, rows, cols int) Ix3 { return Ix3{depth, rows, cols} }

// NDim returns 1.
func (Ix1) NDim() int { return 1 }

// Size returns the extent of the single axis.
func (d Ix1) Size() int { return product(d[:]) }

// Dims returns the extents.
func (d Ix1) Dims() []int { return []int{d[0]} }

// NDim returns 2.
func (Ix2) NDim() int { return 2 }

// Size returns rows*cols.
func (d Ix2) Size() int { return product(d[:]) }

// Dims returns the extents.
func (d Ix2) Dims() []int { return []int{d[0], d[1]} }

// NDim returns 3.
func (Ix3) NDim() int { return 3 }

// Size returns depth*rows*cols.
func (d Ix3) Size() int { return product(d[:]) }

// Dims returns the extents.
func (d Ix3) Dims() []int { return []int{d[0], d[1], d[2]} }

// IxDyn is a dimension whose rank is only known at runtime.
type IxDyn []int

// NewIxDyn creates a dynamic dimension. The extents are copied.
//
// Example:
//
//	d := shape.NewIxDyn(2, 2, 3) // rank 3, 12 elements
func NewIxDyn(extents ...int) IxDyn {
	d := make(IxDyn, len(extents))
	copy(d, extents)
	return d
}

// NDim returns the number of extents.
func (d IxDyn) NDim() int { return len(d) }

// Size returns the product of the extents.
func (d IxDyn) Size() int { return product(d) }

// Dims returns a copy of the extents.
func (d IxDyn) Dims() []int {
	dims := make([]int, len(d))
	copy(dims, d)
	return dims
}

// product returns the product of extents, or 0 for an empty list.
func product(extents []int) int {
	if len(extents) == 0 {
		return 0
	}
	n := 1
	for _, e := range extents {
		n *= e
	}
	return n
}
