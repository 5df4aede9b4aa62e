package ndarray

import (
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/dtype"
)

// DefaultPrecision is the number of decimals String uses for float elements.
const DefaultPrecision = 1

// String renders the array with DefaultPrecision.
func (a *Array[T, D]) String() string {
	return a.Format(DefaultPrecision)
}

// Format renders 1D, 2D and 3D arrays as nested brackets with columns
// right-aligned. Float elements use precision decimals; integers ignore it.
//
// Example output for a 2x3 array:
//
//	[
//	   [1, 22, 3]
//	   [4,  5, 6]
//	]
func (a *Array[T, D]) Format(precision int) string {
	var sb strings.Builder
	a.read(func(data []T) {
		cells := make([]string, len(data))
		for i, v := range data {
			cells[i] = formatValue(v, precision)
		}

		dims := a.shape.Dims()
		switch len(dims) {
		case 1:
			sb.WriteString("[" + strings.Join(cells, ", ") + "]")
		case 2:
			widths := columnWidths(cells, dims[1])
			sb.WriteString("[\n")
			writeRows(&sb, cells, dims[0], dims[1], widths, "   ")
			sb.WriteString("]")
		case 3:
			widths := columnWidths(cells, dims[2])
			plane := dims[1] * dims[2]
			sb.WriteString("[\n")
			for d := 0; d < dims[0]; d++ {
				sb.WriteString("   [\n")
				writeRows(&sb, cells[d*plane:(d+1)*plane], dims[1], dims[2], widths, "      ")
				sb.WriteString("   ]\n")
			}
			sb.WriteString("]")
		default:
			sb.WriteString("Unsupported dimension: " + strconv.Itoa(len(dims)))
		}
	})
	return sb.String()
}

// writeRows writes rows of cols cells, one bracketed row per line.
func writeRows(sb *strings.Builder, cells []string, rows, cols int, widths []int, indent string) {
	for r := 0; r < rows; r++ {
		sb.WriteString(indent + "[")
		for c := 0; c < cols; c++ {
			cell := cells[r*cols+c]
			sb.WriteString(strings.Repeat(" ", widths[c]-len(cell)))
			sb.WriteString(cell)
			if c < cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}
}

// columnWidths returns the widest cell per column.
func columnWidths(cells []string, cols int) []int {
	widths := make([]int, cols)
	for i, cell := range cells {
		c := i % cols
		widths[c] = max(widths[c], len(cell))
	}
	return widths
}

// formatValue renders floats with fixed precision and integers exactly.
func formatValue[T dtype.Numeric](v T, precision int) string {
	if !dtype.Fractional[T]() {
		if v < 0 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatUint(uint64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'f', precision, 64)
}
