package service

import (
	"testing"

	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/jmoiron/sqlx"
)

type testEnv struct {
	db         *sqlx.DB
	itemRepo   *repository.SQLiteItemRepo
	unitRepo   *repository.SQLiteUnitRepo
	recordRepo *repository.SQLiteProgressRepo
	items      ItemService
	units      UnitService
	progress   ProgressService
	milestones MilestoneService
	reports    ReportService
}

func newTestEnv(t *testing.T, observers ...UseCaseObserver) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	itemRepo := repository.NewSQLiteItemRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	recordRepo := repository.NewSQLiteProgressRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	photoRepo := repository.NewSQLitePhotoRepo(database)
	uow := testutil.NewTestUoW(database)

	return &testEnv{
		db:         database,
		itemRepo:   itemRepo,
		unitRepo:   unitRepo,
		recordRepo: recordRepo,
		items:      NewItemService(itemRepo, observers...),
		units:      NewUnitService(unitRepo, observers...),
		progress:   NewProgressService(recordRepo, uow, observers...),
		milestones: NewMilestoneService(milestoneRepo, observers...),
		reports:    NewReportService(itemRepo, unitRepo, recordRepo, milestoneRepo, photoRepo, observers...),
	}
}
