package diagram

import (
	"sort"

	"gonum.org/v1/gonum/interp"
)

// sortKnots orders knots by ascending position and drops duplicate
// positions, keeping the first value seen for each. The result is the
// strictly increasing knot set the interpolators require.
func sortKnots(xs, ys []float64) ([]float64, []float64) {
	type knot struct{ x, y float64 }
	knots := make([]knot, len(xs))
	for i := range xs {
		knots[i] = knot{x: xs[i], y: ys[i]}
	}
	sort.SliceStable(knots, func(i, j int) bool { return knots[i].x < knots[j].x })

	sx := make([]float64, 0, len(knots))
	sy := make([]float64, 0, len(knots))
	for _, k := range knots {
		if len(sx) > 0 && k.x == sx[len(sx)-1] {
			continue
		}
		sx = append(sx, k.x)
		sy = append(sy, k.y)
	}
	return sx, sy
}

// linspace returns n evenly spaced samples over [lo, hi], endpoints
// included.
func linspace(lo, hi float64, n int) []float64 {
	pts := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range pts {
		pts[i] = lo + float64(i)*step
	}
	pts[n-1] = hi
	return pts
}

// resampleLinear evaluates a piecewise linear fit of the knots at every
// grid point. Knots must be strictly increasing with at least two
// entries, as produced by sortKnots.
func resampleLinear(xs, ys, grid []float64) []float64 {
	var pl interp.PiecewiseLinear
	// Fit panics on fewer than two strictly increasing knots and
	// otherwise always returns nil.
	_ = pl.Fit(xs, ys)

	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = pl.Predict(x)
	}
	return out
}

// resampleQuadratic evaluates a piecewise quadratic through the knots
// at every grid point. Each knot segment is covered by the parabola
// through it and its two following knots, shifted back near the end of
// the series. Fewer than three knots fall back to linear.
func resampleQuadratic(xs, ys, grid []float64) []float64 {
	if len(xs) < 3 {
		return resampleLinear(xs, ys, grid)
	}
	out := make([]float64, len(grid))
	k := 0
	for i, x := range grid {
		for k < len(xs)-3 && x > xs[k+1] {
			k++
		}
		out[i] = lagrange3(xs[k:k+3], ys[k:k+3], x)
	}
	return out
}

// lagrange3 evaluates the parabola through three knots at x.
func lagrange3(xs, ys []float64, x float64) float64 {
	l0 := (x - xs[1]) * (x - xs[2]) / ((xs[0] - xs[1]) * (xs[0] - xs[2]))
	l1 := (x - xs[0]) * (x - xs[2]) / ((xs[1] - xs[0]) * (xs[1] - xs[2]))
	l2 := (x - xs[0]) * (x - xs[1]) / ((xs[2] - xs[0]) * (xs[2] - xs[1]))
	return ys[0]*l0 + ys[1]*l1 + ys[2]*l2
}
