package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result is one reduction outcome as written by the CLI.
type Result struct {
	Source string    `yaml:"source"`
	Op     string    `yaml:"op"`
	Axis   *int      `yaml:"axis,omitempty"`
	Shape  []int     `yaml:"shape,flow"`
	Data   []float64 `yaml:"data,flow"`
	Error  string    `yaml:"error,omitempty"`
}

// EncodeResults writes results to w as a YAML sequence.
func EncodeResults(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("document: encode: %w", err)
	}
	return enc.Close()
}
