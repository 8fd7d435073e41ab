package table

import "testing"

func num(v float64) Cell {
	return Cell{Text: "", Value: v, Numeric: true}
}

func text(s string) Cell {
	return Cell{Text: s}
}

func buildTable(columns []string, values [][]float64) *Table {
	t := &Table{Columns: columns}
	for _, row := range values {
		cells := make([]Cell, len(columns))
		for i := range cells {
			cells[i] = num(row[i])
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func TestResolveNamedColumns(t *testing.T) {
	tbl := buildTable(
		[]string{"x", "Shear force", "Bending Moment"},
		[][]float64{{0, 10, 0}, {2, -5, 15}, {4, 0, 0}},
	)

	s, res := Resolve(tbl)

	wantPos := []float64{0, 2, 4}
	wantShear := []float64{10, -5, 0}
	wantMoment := []float64{0, 15, 0}
	checkSeries(t, "positions", s.Positions, wantPos)
	checkSeries(t, "shears", s.Shears, wantShear)
	checkSeries(t, "moments", s.Moments, wantMoment)

	if res.Position.Rule != RuleNamed || res.Position.Column != "x" {
		t.Errorf("position resolution = %+v, want named match on %q", res.Position, "x")
	}
	if res.Shear.Rule != RuleNamed || res.Shear.Column != "Shear force" {
		t.Errorf("shear resolution = %+v, want named match on %q", res.Shear, "Shear force")
	}
	if res.Moment.Rule != RuleNamed || res.Moment.Column != "Bending Moment" {
		t.Errorf("moment resolution = %+v, want named match on %q", res.Moment, "Bending Moment")
	}
}

func TestResolveAlternateNames(t *testing.T) {
	tbl := buildTable(
		[]string{"Position", "Shear Force", "Bending moment"},
		[][]float64{{0, 1, 2}, {1, 3, 4}},
	)

	s, res := Resolve(tbl)

	checkSeries(t, "positions", s.Positions, []float64{0, 1})
	checkSeries(t, "shears", s.Shears, []float64{1, 3})
	checkSeries(t, "moments", s.Moments, []float64{2, 4})

	if res.Position.Rule != RuleAltNamed {
		t.Errorf("position rule = %v, want alternate name", res.Position.Rule)
	}
	if res.Shear.Rule != RuleAltNamed {
		t.Errorf("shear rule = %v, want alternate name", res.Shear.Rule)
	}
	if res.Moment.Rule != RuleAltNamed {
		t.Errorf("moment rule = %v, want alternate name", res.Moment.Rule)
	}
}

func TestResolvePositionalFallback(t *testing.T) {
	tbl := buildTable(
		[]string{"a", "b", "c", "d"},
		[][]float64{{0, 10, 100, 7}, {1, 20, 200, 7}, {2, 30, 300, 7}},
	)

	s, res := Resolve(tbl)

	checkSeries(t, "positions", s.Positions, []float64{0, 1, 2})
	checkSeries(t, "shears", s.Shears, []float64{10, 20, 30})
	checkSeries(t, "moments", s.Moments, []float64{100, 200, 300})

	for i, sr := range []SeriesResolution{res.Position, res.Shear, res.Moment} {
		if sr.Rule != RuleIndexed {
			t.Errorf("series %d rule = %v, want positional fallback", i, sr.Rule)
		}
		if sr.Index != i {
			t.Errorf("series %d index = %d, want %d", i, sr.Index, i)
		}
		if !sr.Fallback() {
			t.Errorf("series %d should report a fallback", i)
		}
	}
}

func TestResolveSingleColumnZeroFills(t *testing.T) {
	tbl := buildTable([]string{"span"}, [][]float64{{0}, {1.5}, {3}})

	s, res := Resolve(tbl)

	checkSeries(t, "positions", s.Positions, []float64{0, 1.5, 3})
	checkSeries(t, "shears", s.Shears, []float64{0, 0, 0})
	checkSeries(t, "moments", s.Moments, []float64{0, 0, 0})

	if len(s.Shears) != len(s.Positions) || len(s.Moments) != len(s.Positions) {
		t.Fatalf("zero-filled series must match position length %d, got %d and %d",
			len(s.Positions), len(s.Shears), len(s.Moments))
	}
	if res.Shear.Rule != RuleZeroFilled || res.Moment.Rule != RuleZeroFilled {
		t.Errorf("shear rule = %v, moment rule = %v, want zero-filled", res.Shear.Rule, res.Moment.Rule)
	}
	if res.Shear.Index != -1 {
		t.Errorf("zero-filled resolution index = %d, want -1", res.Shear.Index)
	}
}

func TestResolveTextCellsContributeZero(t *testing.T) {
	tbl := &Table{
		Columns: []string{"x", "Shear force", "Bending Moment"},
		Rows: [][]Cell{
			{num(0), num(5), text("n/a")},
			{num(2), text("?"), num(12)},
		},
	}

	s, _ := Resolve(tbl)

	checkSeries(t, "shears", s.Shears, []float64{5, 0})
	checkSeries(t, "moments", s.Moments, []float64{0, 12})
}

func checkSeries(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s length = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}
