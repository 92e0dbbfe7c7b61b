package cli

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/tspanneal/geom"
	"github.com/katalvlaran/tspanneal/tsp"
)

var (
	colorTour    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colorPoint   = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colorLive    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	colorBestRun = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// plotMargin is the axis padding of tour plots relative to the point spread.
const plotMargin = 0.05

// tracePath derives the energy trace file name from the tour plot path:
// "run.png" becomes "run.trace.png".
func tracePath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".trace" + ext
}

// writeTourPlot draws the closed tour over ps and saves it to path. The image
// format follows the file extension (png, svg, pdf, ...).
func writeTourPlot(path string, ps *geom.PointSet, tour tsp.Tour, energy float64) error {
	if len(tour) == 0 {
		return errors.New("plot: empty tour")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d points, length %.4f", ps.Len(), energy)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, 0, len(tour)+1)
	for _, idx := range tour {
		pt := ps.At(idx)
		pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
	}
	pts = append(pts, pts[0])

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot tour: %w", err)
	}
	line.Color = colorTour
	line.Width = vg.Points(1)

	scatter, err := plotter.NewScatter(pts[:len(tour)])
	if err != nil {
		return fmt.Errorf("plot points: %w", err)
	}
	scatter.GlyphStyle.Color = colorPoint
	scatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(line, scatter)
	padAxes(p, ps)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// padAxes frames the bounding box of ps with a margin of plotMargin times
// its larger side, so points on the hull are not drawn on the axes.
func padAxes(p *plot.Plot, ps *geom.PointSet) {
	lo, hi := ps.Bounds()
	pad := plotMargin * math.Max(hi.X-lo.X, hi.Y-lo.Y)
	if pad == 0 {
		pad = 1
	}
	p.X.Min, p.X.Max = lo.X-pad, hi.X+pad
	p.Y.Min, p.Y.Max = lo.Y-pad, hi.Y+pad
}

// writeTracePlot draws live and best energy per sweep and saves it to path.
func writeTracePlot(path string, samples []sample) error {
	if len(samples) == 0 {
		return errors.New("plot: no sweeps recorded")
	}

	p := plot.New()
	p.Title.Text = "Energy per sweep"
	p.X.Label.Text = "sweep"
	p.Y.Label.Text = "tour length"

	live := make(plotter.XYs, len(samples))
	best := make(plotter.XYs, len(samples))
	for i, s := range samples {
		live[i] = plotter.XY{X: float64(s.Sweep), Y: s.Energy}
		best[i] = plotter.XY{X: float64(s.Sweep), Y: s.Best}
	}

	liveLine, err := plotter.NewLine(live)
	if err != nil {
		return fmt.Errorf("plot trace: %w", err)
	}
	liveLine.Color = colorLive
	liveLine.Width = vg.Points(1)

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("plot trace: %w", err)
	}
	bestLine.Color = colorBestRun
	bestLine.Width = vg.Points(1.5)

	p.Add(liveLine, bestLine)
	p.Legend.Add("live", liveLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
