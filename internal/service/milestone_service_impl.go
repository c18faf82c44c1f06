package service

import (
	"context"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
)

type milestoneService struct {
	milestones repository.MilestoneRepo
	observer   UseCaseObserver
}

func NewMilestoneService(milestones repository.MilestoneRepo, observers ...UseCaseObserver) MilestoneService {
	return &milestoneService{milestones: milestones, observer: useCaseObserverOrNoop(observers)}
}

func (s *milestoneService) Create(ctx context.Context, m *domain.Milestone) (err error) {
	defer observe(ctx, s.observer, "milestone-create", time.Now().UTC(), map[string]any{"name": m.Name}, &err)

	if err = m.Validate(); err != nil {
		return err
	}
	return s.milestones.Create(ctx, m)
}

func (s *milestoneService) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	return s.milestones.GetByID(ctx, id)
}

func (s *milestoneService) List(ctx context.Context) ([]*domain.Milestone, error) {
	return s.milestones.List(ctx)
}

func (s *milestoneService) Update(ctx context.Context, m *domain.Milestone) (err error) {
	defer observe(ctx, s.observer, "milestone-update", time.Now().UTC(), map[string]any{"milestone_id": m.ID}, &err)

	if err = m.Validate(); err != nil {
		return err
	}
	return s.milestones.Update(ctx, m)
}

func (s *milestoneService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "milestone-delete", time.Now().UTC(), map[string]any{"milestone_id": id}, &err)

	return s.milestones.Delete(ctx, id)
}
