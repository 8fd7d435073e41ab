package diagram

import (
	"math"
	"testing"
)

func TestSortKnotsOrdersAndDedupes(t *testing.T) {
	xs, ys := sortKnots([]float64{2, 0, 2, 1}, []float64{20, 0, 99, 10})

	wantX := []float64{0, 1, 2}
	wantY := []float64{0, 10, 20}
	if len(xs) != len(wantX) {
		t.Fatalf("got %d knots, want %d", len(xs), len(wantX))
	}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("knot %d = (%v,%v), want (%v,%v)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}

func TestLinspace(t *testing.T) {
	pts := linspace(0, 10, 5)
	want := []float64{0, 2.5, 5, 7.5, 10}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("linspace[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestResampleLinear(t *testing.T) {
	xs := []float64{0, 2, 4}
	ys := []float64{0, 10, 0}

	got := resampleLinear(xs, ys, []float64{0, 1, 2, 3, 4})
	want := []float64{0, 5, 10, 5, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("resampled[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleQuadraticReproducesParabola(t *testing.T) {
	// A three-point interpolation is exact on any parabola.
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	grid := linspace(0, 4, 17)
	got := resampleQuadratic(xs, ys, grid)
	for i, x := range grid {
		if math.Abs(got[i]-f(x)) > 1e-9 {
			t.Errorf("at x=%v: got %v, want %v", x, got[i], f(x))
		}
	}
}

func TestResampleQuadraticFallsBackToLinear(t *testing.T) {
	got := resampleQuadratic([]float64{0, 2}, []float64{0, 10}, []float64{1})
	if math.Abs(got[0]-5) > 1e-12 {
		t.Errorf("two-knot resample at 1 = %v, want 5", got[0])
	}
}
