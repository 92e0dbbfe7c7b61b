package cli

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/tsp"
)

// result is the outcome of a solve run as written to --output.
type result struct {
	Points   int          `json:"points"`
	Energy   float64      `json:"energy"`
	Sweeps   int          `json:"sweeps"`
	State    string       `json:"state"`
	Restart  int          `json:"restart"`
	Restarts int          `json:"restarts"`
	Seed     int64        `json:"seed"`
	Tour     []int        `json:"tour"`
	Path     []geom.Point `json:"path"`
}

// outcome is the best run of a solve invocation.
type outcome struct {
	restart int
	seed    int64
	best    tsp.BestSolution
	status  tsp.Status
	trace   *traceObserver
}

// newResult renders o over ps; the tour is rotated to start at point 0.
func newResult(ps *geom.PointSet, o outcome, restarts int) result {
	tour := o.best.Tour.RotateTo(0)
	path := make([]geom.Point, len(tour))
	for i, idx := range tour {
		path[i] = ps.At(idx)
	}

	return result{
		Points:   ps.Len(),
		Energy:   o.best.Energy,
		Sweeps:   o.status.Sweep,
		State:    o.status.State.String(),
		Restart:  o.restart,
		Restarts: restarts,
		Seed:     o.seed,
		Tour:     tour,
		Path:     path,
	}
}

// writeResult writes r to path as YAML.
func writeResult(path string, r result) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write result %s: %w", path, err)
	}
	return nil
}
