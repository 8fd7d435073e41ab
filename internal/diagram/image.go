package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WriteImage renders one diagram to a standalone image file. The output
// format follows the file extension, with unknown extensions falling
// back to PNG.
func WriteImage(spec Spec, positions, values []float64, path string) error {
	vals := values
	if spec.Invert {
		vals = invert(values)
	}

	p := plot.New()
	p.Title.Text = spec.Caption
	p.X.Label.Text = "Beam Length (m)"
	p.Y.Label.Text = spec.YLabelText

	xmin, xmax := seriesRange(positions)
	lo, hi := seriesRange(vals)
	p.X.Min = xmin
	p.X.Max = xmax
	p.Y.Min = -spec.Headroom
	if lo < 0 {
		p.Y.Min = lo * 1.2
	}
	p.Y.Max = spec.Headroom
	if hi > 0 {
		p.Y.Max = hi * 1.2
	}

	if err := addStrips(p, spec, positions, vals, lo, hi); err != nil {
		return err
	}
	if err := addZeroLine(p, xmin, xmax); err != nil {
		return err
	}
	if err := addTrajectory(p, positions, vals); err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 3.5 * vg.Inch

	switch filepath.Ext(path) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, path)
	default:
		return p.Save(width, height, path+".png")
	}
}

// addStrips draws the gradient fill as one narrow colored polygon per
// resample interval, mirroring the pgfplots strip rendering. Series
// with fewer than two distinct positions get no fill.
func addStrips(p *plot.Plot, spec Spec, positions, values []float64, lo, hi float64) error {
	xs, ys := sortKnots(positions, values)
	if len(xs) < 2 {
		return nil
	}

	grid := linspace(xs[0], xs[len(xs)-1], resamplePoints)
	var resampled []float64
	if spec.Quadratic {
		resampled = resampleQuadratic(xs, ys, grid)
	} else {
		resampled = resampleLinear(xs, ys, grid)
	}

	for i := 0; i < len(grid)-1; i++ {
		y := resampled[i]
		strip, err := plotter.NewPolygon(plotter.XYs{
			{X: grid[i], Y: 0},
			{X: grid[i+1], Y: 0},
			{X: grid[i+1], Y: y},
			{X: grid[i], Y: y},
		})
		if err != nil {
			return err
		}
		c := spec.Ramp.RGBA(normalize(y, lo, hi))
		strip.Color = c
		strip.LineStyle.Color = c
		p.Add(strip)
	}
	return nil
}

// addZeroLine draws the dashed reference line at value zero.
func addZeroLine(p *plot.Plot, xmin, xmax float64) error {
	zero, err := plotter.NewLine(plotter.XYs{
		{X: xmin, Y: 0},
		{X: xmax, Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Black
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)
	return nil
}

// addTrajectory overlays the true data points as a marked polyline.
func addTrajectory(p *plot.Plot, positions, values []float64) error {
	pts := make(plotter.XYs, len(positions))
	for i := range positions {
		pts[i] = plotter.XY{X: positions[i], Y: values[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.Black
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)
	return nil
}
