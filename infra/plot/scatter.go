// Package plot renders the optimal schedule set as a mean-vs-stddev scatter.
package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mvaneyck/posology/core/schedule"
)

// Render writes a scatter of mean (x) against stddev (y) to an image file;
// the format follows the path extension (png, pdf, svg, ...). Glyph color
// encodes the period; lower is better.
func Render(path string, optimal []schedule.Schedule) error {
	if len(optimal) == 0 {
		return fmt.Errorf("plot: no schedules to render")
	}

	pts := make(plotter.XYZs, len(optimal))
	minPeriod, maxPeriod := optimal[0].Period(), optimal[0].Period()
	for i, s := range optimal {
		p := s.Period()
		pts[i] = plotter.XYZ{X: s.Mean(), Y: s.StdDev(), Z: float64(p)}
		if p < minPeriod {
			minPeriod = p
		}
		if p > maxPeriod {
			maxPeriod = p
		}
	}
	if maxPeriod == minPeriod {
		// A degenerate color range breaks the palette lookup.
		maxPeriod++
	}

	colors := moreland.Kindlmann()
	colors.SetMin(float64(minPeriod))
	colors.SetMax(float64(maxPeriod))

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: scatter: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		_, _, z := pts.XYZ(i)
		c, cerr := colors.At(z)
		if cerr != nil {
			return draw.GlyphStyle{Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	}

	p := gplot.New()
	p.Title.Text = fmt.Sprintf("%d optimal schedules\n(colors correspond to period; lower is better)", len(optimal))
	p.X.Label.Text = "mean dosage [pills/day]"
	p.Y.Label.Text = "standard deviation [pills/day]"
	p.Add(plotter.NewGrid())
	p.Add(sc)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
