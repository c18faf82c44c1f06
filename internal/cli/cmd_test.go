package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/atajados/internal/config"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/service"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	itemRepo := repository.NewSQLiteItemRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	recordRepo := repository.NewSQLiteProgressRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	photoRepo := repository.NewSQLitePhotoRepo(database)
	uow := testutil.NewTestUoW(database)

	reg := prometheus.NewRegistry()
	metrics, err := service.NewMetricsObserver(reg)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.DBPath = ":memory:"
	cfg.PhotoDir = t.TempDir()
	cfg.GanttWidth = 20

	reports := service.NewReportService(itemRepo, unitRepo, recordRepo, milestoneRepo, photoRepo, metrics)
	return &App{
		Items:      service.NewItemService(itemRepo, metrics),
		Units:      service.NewUnitService(unitRepo, metrics),
		Progress:   service.NewProgressService(recordRepo, uow, metrics),
		Milestones: service.NewMilestoneService(milestoneRepo, metrics),
		Photos:     service.NewPhotoService(photoRepo, unitRepo, cfg.PhotoDir, metrics),
		Reports:    reports,
		Import:     service.NewImportService(uow, metrics),
		Export:     service.NewExportService(unitRepo, reports, cfg.HoursPerDay, metrics),
		Config:     cfg,
		ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
		Logger:     zerolog.Nop(),
		Metrics:    reg,
		// Never interactive: no TUI, no forms.
		IsInteractive: func() bool { return false },
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs a cobra command and captures stdout/stderr with styling
// stripped.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func mustExec(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, out)
	return out
}

// seedProject creates one active item, one manual item and two units.
func seedProject(t *testing.T, app *App) {
	t.Helper()
	mustExec(t, app, "item", "add", "--name", "Excavación", "--unit", "m3", "--qty", "10", "--price", "100", "--active")
	mustExec(t, app, "item", "add", "--name", "Geomembrana", "--unit", "m2", "--qty", "5", "--price", "200")
	mustExec(t, app, "unit", "add", "--number", "1", "--beneficiary", "Ana Quispe", "--location", "Tarata")
	mustExec(t, app, "unit", "add", "--number", "2", "--beneficiary", "Luis Mamani", "--status", "En ejecución")
}

// --- Root ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "progress")
}

func TestRootCmd_MetricsFlag(t *testing.T) {
	app := testApp(t)
	out := mustExec(t, app, "item", "add", "--name", "Cerco", "--qty", "1", "--price", "1", "--metrics")
	assert.Contains(t, out, "atajados_use_case_calls_total")
	assert.Contains(t, out, "use_case=item-create")
}

// --- Items ---

func TestItemCmd_AddListShow(t *testing.T) {
	app := testApp(t)
	out := mustExec(t, app, "item", "add", "--name", "Excavación", "--unit", "m3", "--qty", "10,5", "--price", "100")
	assert.Contains(t, out, "Created item #1 Excavación")

	out = mustExec(t, app, "item", "list")
	assert.Contains(t, out, "Excavación")
	assert.Contains(t, out, "1,050.00")

	out = mustExec(t, app, "item", "show", "1")
	assert.Contains(t, out, "10.5 m3")
	assert.Contains(t, out, "manual")
}

func TestItemCmd_RequiredFlags(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "item", "add", "--name", "Cerco")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestItemCmd_RejectsNonNumericQuantity(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "item", "add", "--name", "Cerco", "--qty", "mucho", "--price", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")

	items, err := app.Items.List(t.Context(), repository.ItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemCmd_ListFilters(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	out := mustExec(t, app, "item", "list", "--active")
	assert.Contains(t, out, "Excavación")
	assert.NotContains(t, out, "Geomembrana")

	out = mustExec(t, app, "item", "list", "--search", "membr")
	assert.Contains(t, out, "Geomembrana")
	assert.NotContains(t, out, "Excavación")
}

func TestItemCmd_ActivateAndSetProgress(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	ctx := t.Context()

	mustExec(t, app, "item", "deactivate", "1")
	it, err := app.Items.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, it.Active)

	out := mustExec(t, app, "item", "set-progress", "2", "40%")
	assert.Contains(t, out, "40.0%")
	it, err = app.Items.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 40.0, it.Progress)

	_, err = executeCmd(t, app, "item", "set-progress", "2", "140")
	assert.ErrorIs(t, err, domain.ErrValidation)

	mustExec(t, app, "item", "activate", "2")
	it, err = app.Items.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, it.Active)
}

func TestItemCmd_UpdateKeepsActiveFlag(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	mustExec(t, app, "item", "update", "1", "--price", "120,5")
	it, err := app.Items.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 120.5, it.UnitPrice)
	assert.Equal(t, 10.0, it.Quantity)
	assert.True(t, it.Active)
}

func TestItemCmd_NotFoundAndBadID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "item", "show", "99")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, app, "item", "rm", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid ID "abc"`)
}

// --- Units ---

func TestUnitCmd_AddListUpdate(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	out := mustExec(t, app, "unit", "list")
	assert.Contains(t, out, "Ana Quispe")
	assert.Contains(t, out, "Pendiente")
	assert.Contains(t, out, "En ejecución")

	mustExec(t, app, "unit", "update", "1", "--status", "ejecutado", "--start", "2024-03-01", "--end", "2024-03-20")
	u, err := app.Units.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.UnitExecuted, u.Status)
	assert.Equal(t, "2024-03-20", domain.FormatDate(u.EndDate))
	assert.Equal(t, "Tarata", u.Location)
}

func TestUnitCmd_RejectsUnknownStatus(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "unit", "add", "--number", "3", "--beneficiary", "X", "--status", "terminado")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestUnitCmd_RejectsEndBeforeStart(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "unit", "add", "--number", "3", "--beneficiary", "X",
		"--start", "2024-03-10", "--end", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUnitCmd_ShowDetail(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "50", "--date", "2024-03-05")

	out := mustExec(t, app, "unit", "show", "1")
	assert.Contains(t, out, "1 – Ana Quispe")
	assert.Contains(t, out, "Excavación")
	assert.Contains(t, out, "2024-03-05")
	assert.NotContains(t, out, "Geomembrana")
}

// --- Progress ---

func TestProgressCmd_RecordUpsertsAndLists(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	out := mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "30", "--date", "2024-03-01")
	assert.Contains(t, out, "Recorded 30.0% for item #1 on unit #1 (2024-03-01)")
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "75,5", "--date", "2024-03-08")

	records, err := app.Progress.ListByUnit(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 75.5, records[0].Percent)

	out = mustExec(t, app, "progress", "list", "--unit", "1")
	assert.Contains(t, out, "#1 Excavación")
	assert.Contains(t, out, "75.5%")
}

func TestProgressCmd_RecordNeedsFlagsWhenNotInteractive(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "progress", "record")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag "unit" not set`)
}

func TestProgressCmd_RecordValidation(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	_, err := executeCmd(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "120")
	require.Error(t, err)

	_, err = executeCmd(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "10", "--start", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = executeCmd(t, app, "progress", "record", "--unit", "9", "--item", "1", "--percent", "10")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	records, err := app.Progress.List(t.Context(), repository.ProgressFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProgressCmd_UpdateAndRemove(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "30", "--date", "2024-03-01")

	mustExec(t, app, "progress", "update", "1", "--percent", "60", "--start", "2024-03-01", "--end", "2024-03-04")
	rec, err := app.Progress.GetByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 60.0, rec.Percent)
	assert.True(t, rec.HasInterval())

	mustExec(t, app, "progress", "rm", "1")
	_, err = app.Progress.GetByID(t.Context(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- Reports ---

func TestStatusCmd(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "50")
	mustExec(t, app, "item", "set-progress", "2", "100")

	out := mustExec(t, app, "status")
	// (1000*0.5 + 1000*1) / 2000
	assert.Contains(t, out, " 75%")
	assert.Contains(t, out, "budget: 2,000.00")
	assert.Contains(t, out, "executed: 1,500.00")
}

func TestSummaryCmd_OrdersByLastRecord(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "20", "--date", "2024-03-01")
	mustExec(t, app, "progress", "record", "--unit", "2", "--item", "1", "--percent", "80", "--date", "2024-03-09")

	out := mustExec(t, app, "summary")
	luis := regexp.MustCompile(`2 – Luis Mamani`).FindStringIndex(out)
	ana := regexp.MustCompile(`1 – Ana Quispe`).FindStringIndex(out)
	require.NotNil(t, luis)
	require.NotNil(t, ana)
	assert.Less(t, luis[0], ana[0])
	assert.Contains(t, out, " 80%")
}

func TestItemBreakdownCmd(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "40")

	out := mustExec(t, app, "item", "breakdown")
	assert.Contains(t, out, "Excavación")
	assert.Contains(t, out, "400.00")
	assert.Contains(t, out, "manual")
}

func TestScheduleCmd(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	mustExec(t, app, "milestone", "add", "--name", "Entrega final", "--date", "2024-03-20")
	mustExec(t, app, "progress", "record", "--unit", "1", "--item", "1", "--percent", "40",
		"--start", "2024-03-01", "--end", "2024-03-04")
	mustExec(t, app, "progress", "record", "--unit", "2", "--item", "1", "--percent", "10",
		"--start", "2024-03-03", "--end", "2024-03-06")

	out := mustExec(t, app, "schedule")
	assert.Contains(t, out, "Excavación")
	assert.Contains(t, out, "Entrega final")
	// Item span 2024-03-01 → 2024-03-06: 5 days, 40 hours.
	assert.Regexp(t, `Excavación\s+40\s+2024-03-01\s+2024-03-06\s+5`, out)
	assert.Contains(t, out, "window: 2024-02-29 → 2024-03-21")
}

func TestScheduleCmd_Empty(t *testing.T) {
	app := testApp(t)
	out := mustExec(t, app, "schedule")
	assert.Contains(t, out, "No scheduled tasks.")
}

// --- Milestones ---

func TestMilestoneCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "milestone", "add", "--name", "Inicio", "--date", "03/01/2024")
	require.Error(t, err)

	mustExec(t, app, "milestone", "add", "--name", "Inicio", "--date", "2024-03-01", "--notes", "Orden de proceder")
	mustExec(t, app, "milestone", "update", "1", "--date", "2024-03-02")

	out := mustExec(t, app, "milestone", "list")
	assert.Contains(t, out, "Inicio")
	assert.Contains(t, out, "2024-03-02")
	assert.Contains(t, out, "Orden de proceder")

	mustExec(t, app, "milestone", "rm", "1")
	out = mustExec(t, app, "milestone", "list")
	assert.Contains(t, out, "No milestones found.")
}

// --- Photos ---

func TestPhotoCmd(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)

	src := filepath.Join(t.TempDir(), "Frente.JPG")
	require.NoError(t, os.WriteFile(src, []byte("jpeg"), 0o644))

	out := mustExec(t, app, "photo", "add", "1", src)
	assert.Contains(t, out, "Attached photo #1 Frente.JPG to unit #1")

	out = mustExec(t, app, "photo", "list", "1")
	assert.Contains(t, out, "Frente.JPG")
	assert.Contains(t, out, app.Config.PhotoDir)

	mustExec(t, app, "photo", "rm", "1")
	out = mustExec(t, app, "photo", "list", "1")
	assert.Contains(t, out, "No photos attached.")
}

// --- Import / export ---

func TestImportCmd_Items(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "boq.csv")
	require.NoError(t, os.WriteFile(path, []byte("DESCRIPCIÓN;UNIDAD;CANT.;P.U.\nExcavación;m3;120;35,5\nCerco;ml;80;22\n"), 0o644))

	out := mustExec(t, app, "import", "items", path)
	assert.Contains(t, out, "imported 2 items")

	out = mustExec(t, app, "item", "list")
	assert.Contains(t, out, "Cerco")
}

func TestImportCmd_RejectsInvalidFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "units.csv")
	require.NoError(t, os.WriteFile(path, []byte("number,beneficiario\n1,Ana\nx,Luis\n"), 0o644))

	_, err := executeCmd(t, app, "import", "units", path)
	require.Error(t, err)

	units, err := app.Units.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestExportCmd(t *testing.T) {
	app := testApp(t)
	seedProject(t, app)
	path := filepath.Join(t.TempDir(), "avance.xlsx")

	out := mustExec(t, app, "export", path)
	assert.Contains(t, out, "Exported workbook to")
	_, err := os.Stat(path)
	require.NoError(t, err)
}

// --- Config ---

func TestConfigCmd_InitAndShow(t *testing.T) {
	app := testApp(t)

	out := mustExec(t, app, "config", "show")
	assert.Contains(t, out, "hours_per_day: 8")

	mustExec(t, app, "config", "init")
	loaded, err := config.LoadWith(app.ConfigPath, nil)
	require.NoError(t, err)
	assert.Equal(t, app.Config.PhotoDir, loaded.PhotoDir)
	assert.Equal(t, 20, loaded.GanttWidth)

	_, err = executeCmd(t, app, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
