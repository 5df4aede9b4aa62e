// Package dtype provides the element type constraint and runtime type tags for arrays.
package dtype

import (
	"errors"
	"fmt"
)

// Numeric is a constraint for supported array element types.
// Every member is totally ordered and converts to float64.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// DataType represents runtime type information for array elements.
type DataType int

// Supported data types.
const (
	Unknown DataType = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// ErrUnknownDataType is returned by Parse for names it does not recognise.
var ErrUnknownDataType = errors.New("dtype: unknown data type")

var names = map[DataType]string{
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if name, ok := names[dt]; ok {
		return name
	}
	return "unknown"
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int, Int64, Uint, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// Fractional reports whether T holds fractional values. Named types
// fall back to a conversion probe, since Of reports them as Unknown.
func Fractional[T Numeric]() bool {
	if dt := Of[T](); dt != Unknown {
		return dt.IsFloat()
	}
	half := 0.5
	return T(half) != 0
}

// Parse returns the DataType for a name such as "int64" or "float32".
func Parse(name string) (DataType, error) {
	for dt, n := range names {
		if n == name {
			return dt, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownDataType, name)
}

// Of infers the DataType of T.
// Named types with a numeric underlying type report Unknown.
func Of[T Numeric]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Unknown
	}
}
