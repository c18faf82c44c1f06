package service

import (
	"context"
	"iter"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/progress"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/schedule"
)

type ItemService interface {
	Create(ctx context.Context, it *domain.CostItem) error
	GetByID(ctx context.Context, id int64) (*domain.CostItem, error)
	List(ctx context.Context, f repository.ItemFilter) ([]*domain.CostItem, error)
	Update(ctx context.Context, it *domain.CostItem) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetProgress(ctx context.Context, id int64, pct float64) error
	Delete(ctx context.Context, id int64) error
}

type UnitService interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id int64) error
}

type ProgressService interface {
	// Record validates rec and stores it as the current record for its
	// (unit, item), replacing any previous one.
	Record(ctx context.Context, rec *domain.ProgressRecord) error
	GetByID(ctx context.Context, id int64) (*domain.ProgressRecord, error)
	List(ctx context.Context, f repository.ProgressFilter) ([]*domain.ProgressRecord, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.ProgressRecord, error)
	Update(ctx context.Context, rec *domain.ProgressRecord) error
	Delete(ctx context.Context, id int64) error
}

type MilestoneService interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	List(ctx context.Context) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
}

type PhotoService interface {
	Attach(ctx context.Context, unitID int64, srcPath string) (*domain.UnitPhoto, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.UnitPhoto, error)
	Remove(ctx context.Context, id int64) error
}

type ReportService interface {
	ProjectProgress(ctx context.Context) (float64, error)
	UnitProgress(ctx context.Context, unitID int64) (float64, error)
	ItemBreakdown(ctx context.Context) ([]progress.ItemLine, error)
	UnitDetail(ctx context.Context, unitID int64) (*contract.UnitDetail, error)
	UnitSummaries(ctx context.Context) ([]contract.UnitSummary, error)
	Dashboard(ctx context.Context) (*contract.DashboardView, error)
	BuildSchedule(ctx context.Context) (iter.Seq[schedule.Task], error)
	Schedule(ctx context.Context) (*contract.ScheduleView, error)
}

type ImportService interface {
	ImportItems(ctx context.Context, path string) (*contract.ImportResult, error)
	ImportUnits(ctx context.Context, path string) (*contract.ImportResult, error)
}

type ExportService interface {
	Export(ctx context.Context, path string) error
}
