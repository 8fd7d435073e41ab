package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	previewWidth  = 72
	previewHeight = 16
)

// Preview renders the series as a terminal chart. The series is
// resampled onto a uniform grid first so unevenly spaced positions
// read at their true proportions.
func Preview(spec Spec, positions, values []float64) string {
	vals := values
	if spec.Invert {
		vals = invert(values)
	}
	if len(vals) == 0 {
		return ""
	}

	data := vals
	xs, ys := sortKnots(positions, vals)
	if len(xs) >= 2 {
		grid := linspace(xs[0], xs[len(xs)-1], previewWidth)
		if spec.Quadratic {
			data = resampleQuadratic(xs, ys, grid)
		} else {
			data = resampleLinear(xs, ys, grid)
		}
	}

	chart := asciigraph.Plot(data,
		asciigraph.Height(previewHeight),
		asciigraph.Caption(spec.Caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(chart)
	sb.WriteString("\n")
	if len(xs) >= 2 {
		fmt.Fprintf(&sb, "\n  %s along the beam from %.2f m to %.2f m\n",
			spec.YLabelText, xs[0], xs[len(xs)-1])
	}
	return sb.String()
}

// SummaryBox frames a title and result lines in a box for terminal
// output.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
