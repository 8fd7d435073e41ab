// Package table holds the in-memory force table read from a spreadsheet
// and the rules for locating its position, shear force and bending
// moment series.
package table

// Cell is a single table value. Numeric cells carry both the parsed
// value and the original text; textual cells carry the text only.
type Cell struct {
	Text    string
	Value   float64
	Numeric bool
}

// Table is an ordered grid of labeled columns. Every row holds exactly
// len(Columns) cells, aligned by index.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// ColumnIndex returns the index of the column with the given label,
// or -1 when no column carries it. Matching is case-sensitive.
func (t *Table) ColumnIndex(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// NumericColumn returns the values of column i in row order.
// Non-numeric cells contribute zero.
func (t *Table) NumericColumn(i int) []float64 {
	vals := make([]float64, len(t.Rows))
	if i < 0 || i >= len(t.Columns) {
		return vals
	}
	for r, row := range t.Rows {
		if row[i].Numeric {
			vals[r] = row[i].Value
		}
	}
	return vals
}
