package cli

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspanneal/geom"
)

var (
	errNoSource    = errors.New("no point source: use --points, --random or --circle")
	errManySources = errors.New("--points, --random and --circle are mutually exclusive")
)

// sourceFlags selects where a command gets its points from.
type sourceFlags struct {
	file   string
	random int
	circle int
	width  float64
	height float64
}

// bind registers the source flags on cmd. withFile adds --points.
func (s *sourceFlags) bind(cmd *cobra.Command, withFile bool) {
	if withFile {
		cmd.Flags().StringVarP(&s.file, "points", "p", "", "point file (YAML or JSON)")
	}
	cmd.Flags().IntVar(&s.random, "random", 0, "generate N uniform random points")
	cmd.Flags().IntVar(&s.circle, "circle", 0, "generate N points evenly spaced on a circle")
	cmd.Flags().Float64Var(&s.width, "width", defaultSide, "width of the generation area")
	cmd.Flags().Float64Var(&s.height, "height", defaultSide, "height of the generation area")
}

// load returns the selected point set and a short description of it.
// seed feeds the uniform generator; 0 selects seed 1 like the annealer.
func (s sourceFlags) load(seed int64) (*geom.PointSet, string, error) {
	var picked int
	if s.file != "" {
		picked++
	}
	if s.random > 0 {
		picked++
	}
	if s.circle > 0 {
		picked++
	}
	switch {
	case picked == 0:
		return nil, "", errNoSource
	case picked > 1:
		return nil, "", errManySources
	}

	switch {
	case s.file != "":
		ps, err := geom.LoadPoints(s.file)
		if err != nil {
			return nil, "", fmt.Errorf("load points %s: %w", s.file, err)
		}
		return ps, s.file, nil

	case s.random > 0:
		if seed == 0 {
			seed = 1
		}
		ps, err := geom.Uniform(rand.New(rand.NewSource(seed)), s.random, s.width, s.height)
		if err != nil {
			return nil, "", fmt.Errorf("generate points: %w", err)
		}
		return ps, fmt.Sprintf("random(%d, seed=%d)", s.random, seed), nil

	default:
		center := geom.Point{X: s.width / 2, Y: s.height / 2}
		ps, err := geom.Circle(s.circle, center, math.Min(s.width, s.height)/2)
		if err != nil {
			return nil, "", fmt.Errorf("generate points: %w", err)
		}
		return ps, fmt.Sprintf("circle(%d)", s.circle), nil
	}
}
