package geom

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// pointFile is the on-disk layout of a point set. YAML and JSON are both
// accepted since JSON is valid YAML:
//
//	points:
//	  - {x: 0, y: 0}
//	  - {x: 1, y: 0.5}
type pointFile struct {
	Points []Point `json:"points"`
}

// ParsePoints decodes a YAML or JSON point document.
func ParsePoints(data []byte) (*PointSet, error) {
	var pf pointFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("geom: decode points: %w", err)
	}

	return NewPointSet(pf.Points)
}

// LoadPoints reads and decodes the point file at path.
func LoadPoints(path string) (*PointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ps, err := ParsePoints(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ps, nil
}

// MarshalPoints encodes s as a YAML point document.
func MarshalPoints(s *PointSet) ([]byte, error) {
	return yaml.Marshal(pointFile{Points: s.Points()})
}

// WritePoints writes s to path as YAML.
func WritePoints(path string, s *PointSet) error {
	data, err := MarshalPoints(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
