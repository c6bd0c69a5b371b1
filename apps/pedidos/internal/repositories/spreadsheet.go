package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetSource reads deadline rows from the first sheet of an
// .xlsx workbook maintained by demand planning. The header row names
// the columns; PROVEEDOR and USER are optional and fall back to the
// catalog defaults.
type SpreadsheetSource struct {
	path string
}

func NewSpreadsheetSource(path string) *SpreadsheetSource {
	return &SpreadsheetSource{path: path}
}

type columnIndexes struct {
	provider int
	country  int
	brand    int
	tenant   int
	deadline int
}

func (s *SpreadsheetSource) Rows() ([]RawRow, error) {
	workbook, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("open %s: %w", s.path, err)}
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, &LoadError{Err: errors.New("workbook has no sheets")}
	}

	cells, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(cells) == 0 {
		return nil, &LoadError{Err: errors.New("workbook is empty")}
	}

	cols, err := mapColumns(cells[0])
	if err != nil {
		return nil, &LoadError{Row: 1, Err: err}
	}

	rows := make([]RawRow, 0, len(cells)-1)
	for i, cell := range cells[1:] {
		rows = append(rows, RawRow{
			// Physical sheet row: the header occupies row 1.
			Row:      i + 2,
			Provider: cellValue(cell, cols.provider, DefaultProvider),
			Tenant:   cellValue(cell, cols.tenant, DefaultTenant),
			Brand:    cellValue(cell, cols.brand, ""),
			Country:  cellValue(cell, cols.country, ""),
			Date:     strings.TrimSpace(cellValue(cell, cols.deadline, "")),
		})
	}

	return rows, nil
}

func mapColumns(header []string) (columnIndexes, error) {
	cols := columnIndexes{
		provider: -1,
		country:  -1,
		brand:    -1,
		tenant:   -1,
		deadline: -1,
	}

	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(name))
		switch {
		case name == "PROVEEDOR":
			cols.provider = i
		case name == "PAIS":
			cols.country = i
		case name == "MARCA":
			cols.brand = i
		case name == "USER":
			cols.tenant = i
		case strings.Contains(name, "DEADLINE"):
			cols.deadline = i
		}
	}

	if cols.country == -1 || cols.brand == -1 {
		return cols, errors.New("missing PAIS or MARCA column")
	}
	if cols.deadline == -1 {
		return cols, errors.New("missing deadline column")
	}

	return cols, nil
}

func cellValue(row []string, idx int, fallback string) string {
	// GetRows trims trailing empty cells, so a valid index can still be
	// past the end of a short row.
	if idx < 0 || idx >= len(row) || row[idx] == "" {
		return fallback
	}
	return row[idx]
}
