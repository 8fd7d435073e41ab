package table

// Rule identifies how a series was located in the table.
type Rule int

const (
	// RuleNamed means the primary column name matched.
	RuleNamed Rule = iota
	// RuleAltNamed means the alternate spelling matched.
	RuleAltNamed
	// RuleIndexed means the series fell back to a positional column.
	RuleIndexed
	// RuleZeroFilled means no column was available and the series is
	// a zero-filled sequence of the table's row count.
	RuleZeroFilled
)

// String returns a short human-readable description of the rule.
func (r Rule) String() string {
	switch r {
	case RuleNamed:
		return "matched by name"
	case RuleAltNamed:
		return "matched by alternate name"
	case RuleIndexed:
		return "positional fallback"
	case RuleZeroFilled:
		return "zero-filled"
	}
	return "unknown"
}

// SeriesResolution records how one series was located.
type SeriesResolution struct {
	Column string // matched column label, empty for a zero fill
	Index  int    // matched column index, -1 for a zero fill
	Rule   Rule
}

// Fallback reports whether the series was not found under any of its
// expected names.
func (sr SeriesResolution) Fallback() bool {
	return sr.Rule == RuleIndexed || sr.Rule == RuleZeroFilled
}

// Resolution reports how each of the three series was located, so
// callers can surface silent substitutions instead of hiding them.
type Resolution struct {
	Position SeriesResolution
	Shear    SeriesResolution
	Moment   SeriesResolution
}

// Series holds the three aligned series extracted from a force table.
// All three have the table's row count.
type Series struct {
	Positions []float64
	Shears    []float64
	Moments   []float64
}

// Resolve extracts the position, shear force and bending moment series
// from the table. Columns are located by name first ("x" or "Position";
// "Shear force" or "Shear Force"; "Bending Moment" or "Bending moment"),
// then by position (columns 0, 1, 2), and finally substituted with
// zero-filled series. Resolve never fails; the returned Resolution says
// which rule matched for each series.
func Resolve(t *Table) (Series, Resolution) {
	res := Resolution{
		Position: locate(t, "x", "Position", 0),
		Shear:    locate(t, "Shear force", "Shear Force", 1),
		Moment:   locate(t, "Bending Moment", "Bending moment", 2),
	}
	return Series{
		Positions: seriesFor(t, res.Position),
		Shears:    seriesFor(t, res.Shear),
		Moments:   seriesFor(t, res.Moment),
	}, res
}

func locate(t *Table, name, alt string, index int) SeriesResolution {
	if i := t.ColumnIndex(name); i >= 0 {
		return SeriesResolution{Column: name, Index: i, Rule: RuleNamed}
	}
	if i := t.ColumnIndex(alt); i >= 0 {
		return SeriesResolution{Column: alt, Index: i, Rule: RuleAltNamed}
	}
	if index < len(t.Columns) {
		return SeriesResolution{Column: t.Columns[index], Index: index, Rule: RuleIndexed}
	}
	return SeriesResolution{Index: -1, Rule: RuleZeroFilled}
}

func seriesFor(t *Table, sr SeriesResolution) []float64 {
	if sr.Rule == RuleZeroFilled {
		return make([]float64, len(t.Rows))
	}
	return t.NumericColumn(sr.Index)
}
