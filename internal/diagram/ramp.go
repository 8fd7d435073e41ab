package diagram

import (
	"fmt"
	"image/color"
)

// Band is one stop of a piecewise color ramp. A band covers normalized
// values from the previous band's Upper (0 for the first) up to its own
// Upper, blending Tint into Mix by a percentage that varies linearly
// across the band.
type Band struct {
	Upper  float64
	Format string // xcolor expression with one %d percentage verb
	Base   int    // blend percentage at the band's lower bound
	Slope  float64
	Tint   color.RGBA
	Mix    color.RGBA
}

// Ramp maps normalized values in [0,1] to colors. Bands must be sorted
// by ascending Upper, with the last band closing the interval at 1.
type Ramp []Band

var (
	blue   = color.RGBA{B: 255, A: 255}
	cyan   = color.RGBA{G: 255, B: 255, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	orange = color.RGBA{R: 255, G: 128, A: 255}
	red    = color.RGBA{R: 255, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// shearRamp runs cold to hot, blue for the most negative values through
// cyan, green, yellow and orange to red for the most positive.
var shearRamp = Ramp{
	{Upper: 0.2, Format: "blue!%d", Base: 100, Slope: -500, Tint: blue, Mix: white},
	{Upper: 0.4, Format: "cyan!%d!blue", Base: 0, Slope: 500, Tint: cyan, Mix: blue},
	{Upper: 0.5, Format: "green!%d!cyan", Base: 0, Slope: 1000, Tint: green, Mix: cyan},
	{Upper: 0.6, Format: "yellow!%d!green", Base: 0, Slope: 1000, Tint: yellow, Mix: green},
	{Upper: 0.8, Format: "orange!%d!yellow", Base: 0, Slope: 500, Tint: orange, Mix: yellow},
	{Upper: 1.0, Format: "red!%d!orange", Base: 100, Slope: -250, Tint: red, Mix: orange},
}

// momentRamp keeps deep blue for the most negative moments and warms
// toward red near zero, with a wide cyan-to-yellow middle.
var momentRamp = Ramp{
	{Upper: 0.2, Format: "blue!%d", Base: 100, Slope: -500, Tint: blue, Mix: white},
	{Upper: 0.4, Format: "cyan!%d!blue", Base: 0, Slope: 500, Tint: cyan, Mix: blue},
	{Upper: 0.7, Format: "yellow!%d!cyan", Base: 0, Slope: 333, Tint: yellow, Mix: cyan},
	{Upper: 1.0, Format: "red!%d!yellow", Base: 0, Slope: 333, Tint: red, Mix: yellow},
}

// locate returns the band covering norm along with the band's lower
// bound. Values at or above the last upper boundary fall into the
// final band.
func (r Ramp) locate(norm float64) (Band, float64) {
	lower := 0.0
	for _, b := range r[:len(r)-1] {
		if norm < b.Upper {
			return b, lower
		}
		lower = b.Upper
	}
	return r[len(r)-1], lower
}

// percent computes the blend percentage for norm within the band,
// truncated toward zero and clamped to [0,100].
func (b Band) percent(norm, lower float64) int {
	p := b.Base + int(b.Slope*(norm-lower))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Color returns the xcolor expression for a normalized value, suitable
// for pgfplots fill options. norm is clamped to [0,1] before the band
// lookup and the blend computation.
func (r Ramp) Color(norm float64) string {
	norm = clamp01(norm)
	b, lower := r.locate(norm)
	return fmt.Sprintf(b.Format, b.percent(norm, lower))
}

// RGBA resolves the same blend to a concrete color for image export.
func (r Ramp) RGBA(norm float64) color.RGBA {
	norm = clamp01(norm)
	b, lower := r.locate(norm)
	p := uint32(b.percent(norm, lower))
	mix := func(tint, rest uint8) uint8 {
		return uint8((uint32(tint)*p + uint32(rest)*(100-p)) / 100)
	}
	return color.RGBA{
		R: mix(b.Tint.R, b.Mix.R),
		G: mix(b.Tint.G, b.Mix.G),
		B: mix(b.Tint.B, b.Mix.B),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
