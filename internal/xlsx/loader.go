// Package xlsx loads beam force tables from Excel workbooks.
package xlsx

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobfr/internal/table"
)

// ErrNotFound indicates the workbook path does not exist.
var ErrNotFound = errors.New("workbook not found")

// ErrMalformed indicates the workbook exists but holds no usable table.
var ErrMalformed = errors.New("malformed workbook")

// Load reads the first sheet of the workbook at path into a force table.
// The first row supplies the column labels and every later row becomes a
// data row, padded or truncated to the header width. Cells that parse as
// numbers keep their numeric value; everything else is stored as text.
func Load(path string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no header row", ErrMalformed, sheets[0])
	}
	if len(rows) == 1 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", ErrMalformed, sheets[0])
	}

	t := &table.Table{Columns: make([]string, len(rows[0]))}
	copy(t.Columns, rows[0])

	for _, raw := range rows[1:] {
		cells := make([]table.Cell, len(t.Columns))
		for i := range cells {
			if i < len(raw) {
				cells[i] = parseCell(raw[i])
			}
		}
		t.Rows = append(t.Rows, cells)
	}

	return t, nil
}

// parseCell classifies a raw cell string as numeric or textual.
func parseCell(raw string) table.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return table.Cell{}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return table.Cell{Text: s, Value: v, Numeric: true}
	}
	return table.Cell{Text: s}
}
