package grid

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML description of a grid's columns.
type Spec struct {
	Columns []ColumnSpec `yaml:"columns"`
}

type ColumnSpec struct {
	Key      string   `yaml:"key"`
	Title    string   `yaml:"title"`
	Width    float64  `yaml:"width"`
	MinWidth *float64 `yaml:"min_width,omitempty"`
	MaxWidth *float64 `yaml:"max_width,omitempty"`
}

// ParseSpec decodes a grid spec from YAML.
func ParseSpec(r io.Reader) (Spec, error) {
	var spec Spec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("decoding grid spec: %w", err)
	}
	if err := spec.validate(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// LoadSpec reads and decodes a grid spec from the file at path.
func LoadSpec(path string) (Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return Spec{}, fmt.Errorf("opening grid spec: %w", err)
	}
	defer f.Close()

	return ParseSpec(f)
}

func (s Spec) validate() error {
	if len(s.Columns) == 0 {
		return fmt.Errorf("grid spec defines no columns")
	}
	seen := make(map[string]struct{}, len(s.Columns))
	for i, col := range s.Columns {
		if col.Key == "" {
			return fmt.Errorf("column %d is missing a key", i)
		}
		if _, ok := seen[col.Key]; ok {
			return fmt.Errorf("duplicate column key: %s", col.Key)
		}
		seen[col.Key] = struct{}{}
		if col.Width < 0 {
			return fmt.Errorf("column %s has negative width", col.Key)
		}
	}
	return nil
}

// FromSpec constructs a grid from a spec.
func FromSpec(spec Spec) *Grid {
	cols := make([]Column, len(spec.Columns))
	for i, cs := range spec.Columns {
		cols[i] = Column{
			Key:      ColumnKey(cs.Key),
			Title:    cs.Title,
			Width:    cs.Width,
			MinWidth: cs.MinWidth,
			MaxWidth: cs.MaxWidth,
		}
	}
	return New(cols)
}
