// Package document decodes arrays from YAML documents and encodes reduction
// results back to YAML.
//
// An array document names its element type, an optional shape and the data,
// either flat or nested:
//
//	dtype: int64
//	data:
//	  - [1, 5, 3]
//	  - [4, 2, 6]
//	  - [0, 9, 8]
//
// Without a shape the extents are taken from the nesting ([3, 3] above).
// With a shape the leaves are read in row-major order and laid out by it.
// A stream may hold several documents separated by "---".
package document

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/internal/dtype"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/shape"
)

// Common errors.
var (
	ErrMissingData = errors.New("document: missing data")
	ErrRagged      = errors.New("document: ragged nesting")
	ErrMalformed   = errors.New("document: malformed data")
)

// Document is one decoded array document.
type Document struct {
	Name  string    `yaml:"name,omitempty"`
	DType string    `yaml:"dtype"`
	Shape []int     `yaml:"shape,omitempty"`
	Data  yaml.Node `yaml:"data"`
}

// DataType returns the parsed element type. An empty dtype means float64.
func (d *Document) DataType() (dtype.DataType, error) {
	if d.DType == "" {
		return dtype.Float64, nil
	}
	return dtype.Parse(d.DType)
}

// DecodeAll reads every document in r.
func DecodeAll(r io.Reader) ([]*Document, error) {
	dec := yaml.NewDecoder(r)
	var docs []*Document
	for {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: decode: %w", len(docs), err)
		}
		docs = append(docs, &doc)
	}
}

// Array builds an array of T from the document. Each leaf is decoded
// directly into T, so out-of-range values are rejected. Integer types
// also reject float leaves with a fractional part.
func Array[T dtype.Numeric](d *Document) (*ndarray.Array[T, shape.IxDyn], error) {
	if d.Data.Kind == 0 {
		return nil, ErrMissingData
	}

	dims, leaves, err := flatten(&d.Data)
	if err != nil {
		return nil, err
	}
	if d.Shape != nil {
		dims = d.Shape
	}

	integral := !dtype.Fractional[T]()
	data := make([]T, len(leaves))
	for i, leaf := range leaves {
		if integral && leaf.ShortTag() == "!!float" {
			if err := checkIntegral(leaf); err != nil {
				return nil, fmt.Errorf("%w: element %d (line %d): %w", ErrMalformed, i, leaf.Line, err)
			}
		}
		if err := leaf.Decode(&data[i]); err != nil {
			return nil, fmt.Errorf("%w: element %d (line %d): %w", ErrMalformed, i, leaf.Line, err)
		}
	}

	return ndarray.New(data, shape.New(shape.NewIxDyn(dims...)))
}

// flatten returns the nesting extents and the scalar leaves of n in
// row-major order.
func flatten(n *yaml.Node) ([]int, []*yaml.Node, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return nil, []*yaml.Node{n}, nil
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return []int{0}, nil, nil
		}

		var (
			inner  []int
			leaves []*yaml.Node
		)
		for i, child := range n.Content {
			dims, childLeaves, err := flatten(child)
			if err != nil {
				return nil, nil, err
			}
			if i == 0 {
				inner = dims
			} else if !shape.New(shape.IxDyn(inner)).Equal(shape.IxDyn(dims)) {
				return nil, nil, fmt.Errorf("%w: line %d: element %d has extents %v, want %v",
					ErrRagged, child.Line, i, dims, inner)
			}
			leaves = append(leaves, childLeaves...)
		}
		return append([]int{len(n.Content)}, inner...), leaves, nil
	default:
		return nil, nil, fmt.Errorf("%w: line %d: expected a sequence or number", ErrMalformed, n.Line)
	}
}

// checkIntegral fails for a float leaf that an integer cannot hold exactly.
func checkIntegral(leaf *yaml.Node) error {
	var f float64
	if err := leaf.Decode(&f); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return fmt.Errorf("%s is not an integer", leaf.Value)
	}
	return nil
}
