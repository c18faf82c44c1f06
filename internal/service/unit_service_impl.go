package service

import (
	"context"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
)

type unitService struct {
	units    repository.UnitRepo
	observer UseCaseObserver
}

func NewUnitService(units repository.UnitRepo, observers ...UseCaseObserver) UnitService {
	return &unitService{units: units, observer: useCaseObserverOrNoop(observers)}
}

func (s *unitService) Create(ctx context.Context, u *domain.Unit) (err error) {
	defer observe(ctx, s.observer, "unit-create", time.Now().UTC(), map[string]any{"number": u.Number}, &err)

	if u.Status == "" {
		u.Status = domain.UnitPending
	}
	if err = u.Validate(); err != nil {
		return err
	}
	return s.units.Create(ctx, u)
}

func (s *unitService) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	return s.units.GetByID(ctx, id)
}

func (s *unitService) List(ctx context.Context) ([]*domain.Unit, error) {
	return s.units.List(ctx)
}

func (s *unitService) Update(ctx context.Context, u *domain.Unit) (err error) {
	defer observe(ctx, s.observer, "unit-update", time.Now().UTC(), map[string]any{"unit_id": u.ID}, &err)

	if err = u.Validate(); err != nil {
		return err
	}
	return s.units.Update(ctx, u)
}

func (s *unitService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "unit-delete", time.Now().UTC(), map[string]any{"unit_id": id}, &err)

	return s.units.Delete(ctx, id)
}
