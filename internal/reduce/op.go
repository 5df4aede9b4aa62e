package reduce

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is the aggregation applied to every group.
type Op int

// Supported operations.
const (
	Max Op = iota
	Min
	Mean
)

// String returns the lower-case operation name.
func (op Op) String() string {
	switch op {
	case Max:
		return "max"
	case Min:
		return "min"
	case Mean:
		return "mean"
	default:
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
}

// ParseOp parses "max", "min" or "mean" (case-insensitive).
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "mean":
		return Mean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOp, s)
	}
}

// Axis is an optional axis index. The zero value is All.
type Axis struct {
	index int
	set   bool
}

// All reduces over every element.
var All = Axis{}

// Along reduces along axis i.
func Along(i int) Axis {
	return Axis{index: i, set: true}
}

// Index returns the axis index and whether one was set.
func (a Axis) Index() (int, bool) {
	return a.index, a.set
}

// String returns the axis index, or "none" for All.
func (a Axis) String() string {
	if !a.set {
		return "none"
	}
	return strconv.Itoa(a.index)
}
