package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX_SheetsAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	wb := Workbook{Sheets: []Sheet{
		{Name: "Items", Headers: []string{"Nombre", "Costo"}, Rows: [][]any{{"Excavación", 4260.0}, {"Cerco", 1800.5}}},
		{Name: "Resumen", Headers: []string{"Unidad", "%"}, Rows: [][]any{{"1 – Juan", 75.0}}},
	}}
	require.NoError(t, WriteXLSX(wb, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Items", "Resumen"}, f.GetSheetList())

	rows, err := f.GetRows("Items")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Nombre", "Costo"}, rows[0])
	assert.Equal(t, "Excavación", rows[1][0])
	assert.Equal(t, "1800.5", rows[2][1])
}

func TestWriteXLSX_Empty(t *testing.T) {
	err := WriteXLSX(Workbook{}, filepath.Join(t.TempDir(), "x.xlsx"))
	assert.Error(t, err)
}
