package repositories_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"pedidos.sainthonore.com/apps/pedidos/internal/repositories"
)

func writeWorkbook(t *testing.T, header []any, rows [][]any) string {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	require.Nil(t, workbook.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.Nil(t, err)
		require.Nil(t, workbook.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "pedidos.xlsx")
	require.Nil(t, workbook.SaveAs(path))

	return path
}

func TestSpreadsheetSource(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"PROVEEDOR", "MARCA", "PAIS", "USER", "DEADLINE PEDIDO"},
		[][]any{
			{"Proveedor2", "DIOR", "CHILE", "brand2", "06-jun-25"},
			{"Proveedor2", "LFB", "CHILE", "brand2", ""},
		},
	)

	rows, err := repositories.NewSpreadsheetSource(path).Rows()

	assert.Nil(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Proveedor2", rows[0].Provider)
	assert.Equal(t, "DIOR", rows[0].Brand)
	assert.Equal(t, "CHILE", rows[0].Country)
	assert.Equal(t, "brand2", rows[0].Tenant)
	assert.Equal(t, "06-jun-25", rows[0].Date)
	assert.Equal(t, "", rows[1].Date)
}

func TestSpreadsheetSourceOptionalColumns(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"MARCA", "PAIS", "DEADLINE"},
		[][]any{
			{"CHANEL", "COLOMBIA", "30-ene-25"},
		},
	)

	rows, err := repositories.NewSpreadsheetSource(path).Rows()

	assert.Nil(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, repositories.DefaultProvider, rows[0].Provider)
	assert.Equal(t, repositories.DefaultTenant, rows[0].Tenant)
}

func TestSpreadsheetSourceMissingColumns(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"MARCA", "PAIS"},
		[][]any{
			{"CHANEL", "COLOMBIA"},
		},
	)

	_, err := repositories.NewSpreadsheetSource(path).Rows()

	var loadErr *repositories.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Row)
}

func TestSpreadsheetSourceRowNumbersArePhysical(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"MARCA", "PAIS", "DEADLINE"},
		[][]any{
			{"CHANEL", "COLOMBIA", "30-ene-25"},
			{"DIOR", "CHILE", "31-abr-25"},
		},
	)

	source := repositories.NewSpreadsheetSource(path)

	rows, err := source.Rows()
	assert.Nil(t, err)
	assert.Equal(t, 2, rows[0].Row)
	assert.Equal(t, 3, rows[1].Row)

	// The load error names the sheet row a planner sees in Excel, with
	// the header on row 1.
	_, err = repositories.New(source).Catalog.Load(context.Background())

	var loadErr *repositories.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 3, loadErr.Row)
}

func TestSpreadsheetSourceMissingFile(t *testing.T) {
	_, err := repositories.NewSpreadsheetSource("does-not-exist.xlsx").Rows()

	var loadErr *repositories.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestSpreadsheetSourceEndToEnd(t *testing.T) {
	path := writeWorkbook(t,
		[]any{"PROVEEDOR", "MARCA", "PAIS", "USER", "DEADLINE PEDIDO"},
		[][]any{
			{"Proveedor1", "CHANEL", "COLOMBIA", "brand1", "30-ene-25"},
			{"Proveedor1", "CLARINS", "COLOMBIA", "brand1", ""},
		},
	)

	source := repositories.NewSpreadsheetSource(path)
	events, err := repositories.New(source).Catalog.Load(context.Background())

	assert.Nil(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "CHANEL", events[0].Brand)
	assert.Equal(t, "2025-01-30", events[0].Date.Format("2006-01-02"))
}
