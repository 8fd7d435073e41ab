package xlsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a single-sheet workbook with the given cells into
// dir and returns its path.
func writeWorkbook(t *testing.T, dir string, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, val := range cells {
		if err := f.SetCellValue("Sheet1", ref, val); err != nil {
			t.Fatalf("SetCellValue(%s): %v", ref, err)
		}
	}
	path := filepath.Join(dir, "forces.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestLoadReadsHeadersAndCells(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string]interface{}{
		"A1": "x", "B1": "Shear force", "C1": "Bending Moment",
		"A2": 0, "B2": 10, "C2": 0,
		"A3": 2, "B3": -5, "C3": 15,
		"A4": 4, "B4": 0, "C4": 0,
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantCols := []string{"x", "Shear force", "Bending Moment"}
	if len(tbl.Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", tbl.Columns, wantCols)
	}
	for i, c := range wantCols {
		if tbl.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, tbl.Columns[i], c)
		}
	}
	if tbl.NumRows() != 3 {
		t.Fatalf("rows = %d, want 3", tbl.NumRows())
	}

	shears := tbl.NumericColumn(1)
	want := []float64{10, -5, 0}
	for i := range want {
		if shears[i] != want[i] {
			t.Errorf("shear[%d] = %v, want %v", i, shears[i], want[i])
		}
	}
}

func TestLoadKeepsTextCells(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string]interface{}{
		"A1": "x", "B1": "Comment",
		"A2": 1.5, "B2": "support",
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cell := tbl.Rows[0][1]
	if cell.Numeric {
		t.Errorf("comment cell should not be numeric: %+v", cell)
	}
	if cell.Text != "support" {
		t.Errorf("comment cell text = %q, want %q", cell.Text, "support")
	}
	if !tbl.Rows[0][0].Numeric || tbl.Rows[0][0].Value != 1.5 {
		t.Errorf("position cell = %+v, want numeric 1.5", tbl.Rows[0][0])
	}
}

func TestLoadPadsShortRows(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string]interface{}{
		"A1": "x", "B1": "Shear force", "C1": "Bending Moment",
		"A2": 0, "B2": 3,
		"A3": 1,
	})

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for r, row := range tbl.Rows {
		if len(row) != len(tbl.Columns) {
			t.Errorf("row %d has %d cells, want %d", r, len(row), len(tbl.Columns))
		}
	}
	if tbl.Rows[1][2].Numeric || tbl.Rows[1][2].Text != "" {
		t.Errorf("padded cell = %+v, want empty", tbl.Rows[1][2])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

func TestLoadHeaderOnlySheet(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string]interface{}{
		"A1": "x", "B1": "Shear force",
	})

	_, err := Load(path)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed for header-only sheet", err)
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input   string
		numeric bool
		value   float64
	}{
		{"123", true, 123},
		{"-7.25", true, -7.25},
		{" 4.0 ", true, 4},
		{"support", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		cell := parseCell(tt.input)
		if cell.Numeric != tt.numeric || cell.Value != tt.value {
			t.Errorf("parseCell(%q) = %+v, want numeric=%v value=%v",
				tt.input, cell, tt.numeric, tt.value)
		}
	}
}
