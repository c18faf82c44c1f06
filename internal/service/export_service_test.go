package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/atajados/internal/schedule"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_WritesAllSheets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, it := seed(t, env)
	require.NoError(t, env.progress.Record(ctx, testutil.NewTestRecord(u.ID, it.ID, 50,
		testutil.WithInterval(testutil.Date("2024-01-01"), testutil.Date("2024-01-04")))))

	svc := NewExportService(env.unitRepo, env.reports, schedule.DefaultHoursPerDay)
	path := filepath.Join(t.TempDir(), "avance.xlsx")
	require.NoError(t, svc.Export(ctx, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Items", "Atajados", "Resumen", "Cronograma"}, f.GetSheetList())

	rows, err := f.GetRows("Cronograma")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Excavación", rows[1][0])
	assert.Equal(t, "3", rows[1][4])
	assert.Equal(t, "24", rows[1][5])
}
