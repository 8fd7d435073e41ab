// Package diagram renders shear force and bending moment diagrams as
// pgfplots markup for report embedding, as standalone image files, and
// as plain-text terminal previews.
//
// The pgfplots rendering approximates a heat-map fill by resampling the
// series onto a fine grid and emitting one narrow colored strip per
// grid interval between the curve and the zero axis, with the true data
// points overlaid as a marker trajectory.
package diagram

import (
	"fmt"
	"strings"
)

// resamplePoints is the size of the uniform grid the strips are drawn
// on, giving resamplePoints-1 strips across the beam span.
const resamplePoints = 200

// Spec describes how one diagram flavor is drawn.
type Spec struct {
	YLabel     string // value axis label, TeX markup
	YLabelText string // value axis label for plain-text renderers
	Caption    string
	Label      string
	Invert     bool // plot the negative of the raw series
	Smooth     bool // smooth the trajectory curve
	Quadratic  bool // quadratic resampling for the color strips
	Ramp       Ramp
	Headroom   float64 // vertical axis padding when the series stays one-signed
}

// ShearSpec returns the drawing rules for shear force diagrams. Shear
// series are sign-inverted before plotting, the usual convention for
// the force trajectory direction.
func ShearSpec() Spec {
	return Spec{
		YLabel:     "Shear Force (kN)",
		YLabelText: "Shear Force (kN)",
		Caption:    "Shear Force Diagram (SFD) - Contour Visualization",
		Label:      "fig:sfd",
		Invert:     true,
		Ramp:       shearRamp,
		Headroom:   5,
	}
}

// MomentSpec returns the drawing rules for bending moment diagrams.
// Moments keep their raw sign and get a quadratic strip resampling for
// the smoother physical gradation of the moment curve.
func MomentSpec() Spec {
	return Spec{
		YLabel:     `Bending Moment (kN$\cdot$m)`,
		YLabelText: "Bending Moment (kN.m)",
		Caption:    "Bending Moment Diagram (BMD) - Contour Visualization",
		Label:      "fig:bmd",
		Smooth:     true,
		Quadratic:  true,
		Ramp:       momentRamp,
		Headroom:   10,
	}
}

// Shear renders the shear force diagram for the given series.
func Shear(positions, forces []float64) string {
	return Render(ShearSpec(), positions, forces)
}

// Moment renders the bending moment diagram for the given series.
func Moment(positions, moments []float64) string {
	return Render(MomentSpec(), positions, moments)
}

// Render produces the pgfplots figure for one series under the given
// spec. Series too degenerate to interpolate (fewer than two distinct
// positions) still render, with the trajectory alone and no strips.
func Render(spec Spec, positions, values []float64) string {
	vals := values
	if spec.Invert {
		vals = invert(values)
	}

	xmin, xmax := seriesRange(positions)
	lo, hi := seriesRange(vals)

	ymin := -spec.Headroom
	if lo < 0 {
		ymin = lo * 1.2
	}
	ymax := spec.Headroom
	if hi > 0 {
		ymax = hi * 1.2
	}

	var b strings.Builder
	b.WriteString("\\begin{figure}[htbp]\n\\centering\n\\begin{tikzpicture}\n")
	fmt.Fprintf(&b, "\\begin{axis}[\n"+
		"    width=\\textwidth,\n"+
		"    height=7cm,\n"+
		"    xlabel={Beam Length (m)},\n"+
		"    ylabel={%s},\n"+
		"    xmin=%.3f,\n"+
		"    xmax=%.3f,\n"+
		"    ymin=%.3f,\n"+
		"    ymax=%.3f,\n"+
		"    grid=major,\n"+
		"    axis lines=left\n"+
		"]\n", spec.YLabel, xmin, xmax, ymin, ymax)

	b.WriteString("\n% Colored vertical strips for gradient effect\n")
	writeStrips(&b, spec, positions, vals, lo, hi)

	b.WriteString("\n% Zero reference line\n\\addplot[black, very thin, dashed] {0};\n")

	b.WriteString("\n% Trajectory curve with markers\n\\addplot[\n    black,\n    thick,\n    mark=*,\n    mark size=1.5pt")
	if spec.Smooth {
		b.WriteString(",\n    smooth")
	}
	b.WriteString("\n] coordinates {\n")
	for i := range positions {
		fmt.Fprintf(&b, "(%.3f,%.3f)\n", positions[i], vals[i])
	}
	b.WriteString("};\n")

	b.WriteString("\n\\end{axis}\n\\end{tikzpicture}\n")
	fmt.Fprintf(&b, "\\caption{%s}\n\\label{%s}\n\\end{figure}\n", spec.Caption, spec.Label)
	return b.String()
}

// writeStrips emits one filled rectangle per resample interval, colored
// by the interval's normalized value. Strips run from the zero axis to
// the local value, above or below depending on its sign.
func writeStrips(b *strings.Builder, spec Spec, positions, values []float64, lo, hi float64) {
	xs, ys := sortKnots(positions, values)
	if len(xs) < 2 {
		return
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
		fill := spec.Ramp.Color(normalize(y, lo, hi))
		if y >= 0 {
			fmt.Fprintf(b, "\\fill[%s] (axis cs:%.4f,0) rectangle (axis cs:%.4f,%.4f);\n", fill, grid[i], grid[i+1], y)
		} else {
			fmt.Fprintf(b, "\\fill[%s] (axis cs:%.4f,%.4f) rectangle (axis cs:%.4f,0);\n", fill, grid[i], y, grid[i+1])
		}
	}
}

// normalize maps v into [0,1] over the [lo, hi] range. A collapsed
// range maps every value to the midpoint.
func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func seriesRange(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 0
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// invert flips the sign of a series, mapping zero to positive zero so
// rendered coordinates read 0.000 rather than -0.000.
func invert(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if v != 0 {
			out[i] = -v
		}
	}
	return out
}
