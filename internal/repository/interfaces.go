package repository

import (
	"context"

	"github.com/alexanderramin/atajados/internal/domain"
)

// ItemFilter narrows item listings. A nil Active lists all items; Search
// matches a case-insensitive substring of the name.
type ItemFilter struct {
	Active *bool
	Search string
}

// ProgressFilter narrows record listings. Zero IDs are ignored.
type ProgressFilter struct {
	UnitID int64
	ItemID int64
}

type ItemRepo interface {
	Create(ctx context.Context, it *domain.CostItem) error
	GetByID(ctx context.Context, id int64) (*domain.CostItem, error)
	List(ctx context.Context, f ItemFilter) ([]*domain.CostItem, error)
	Update(ctx context.Context, it *domain.CostItem) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetProgress(ctx context.Context, id int64, pct float64) error
	Delete(ctx context.Context, id int64) error
}

type UnitRepo interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[domain.UnitStatus]int, error)
}

type ProgressRepo interface {
	Upsert(ctx context.Context, r *domain.ProgressRecord) error
	GetByID(ctx context.Context, id int64) (*domain.ProgressRecord, error)
	GetCurrent(ctx context.Context, unitID, itemID int64) (*domain.ProgressRecord, error)
	List(ctx context.Context, f ProgressFilter) ([]*domain.ProgressRecord, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.ProgressRecord, error)
	Update(ctx context.Context, r *domain.ProgressRecord) error
	Delete(ctx context.Context, id int64) error
}

type MilestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) error
	GetByID(ctx context.Context, id int64) (*domain.Milestone, error)
	List(ctx context.Context) ([]*domain.Milestone, error)
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id int64) error
}

type PhotoRepo interface {
	Create(ctx context.Context, p *domain.UnitPhoto) error
	GetByID(ctx context.Context, id int64) (*domain.UnitPhoto, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.UnitPhoto, error)
	Delete(ctx context.Context, id int64) error
}
