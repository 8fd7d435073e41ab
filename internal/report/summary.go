package report

import (
	"math"

	"github.com/alexiusacademia/gobfr/internal/table"
)

// Summary holds the key results reported at the end of the document.
type Summary struct {
	MaxShear   float64 // largest absolute shear force, kN
	MaxMoment  float64 // largest absolute bending moment, kN·m
	LoadPoints int
	Span       float64 // largest position, m
}

// Summarize computes the headline statistics from the resolved series.
func Summarize(s table.Series) Summary {
	return Summary{
		MaxShear:   maxAbs(s.Shears),
		MaxMoment:  maxAbs(s.Moments),
		LoadPoints: len(s.Positions),
		Span:       maxOf(s.Positions),
	}
}

func maxAbs(vals []float64) float64 {
	var m float64
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
