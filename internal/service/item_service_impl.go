package service

import (
	"context"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
)

type itemService struct {
	items    repository.ItemRepo
	observer UseCaseObserver
}

func NewItemService(items repository.ItemRepo, observers ...UseCaseObserver) ItemService {
	return &itemService{items: items, observer: useCaseObserverOrNoop(observers)}
}

func (s *itemService) Create(ctx context.Context, it *domain.CostItem) (err error) {
	defer observe(ctx, s.observer, "item-create", time.Now().UTC(), map[string]any{"name": it.Name}, &err)

	if err = it.Validate(); err != nil {
		return err
	}
	return s.items.Create(ctx, it)
}

func (s *itemService) GetByID(ctx context.Context, id int64) (*domain.CostItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context, f repository.ItemFilter) ([]*domain.CostItem, error) {
	return s.items.List(ctx, f)
}

func (s *itemService) Update(ctx context.Context, it *domain.CostItem) (err error) {
	defer observe(ctx, s.observer, "item-update", time.Now().UTC(), map[string]any{"item_id": it.ID}, &err)

	if err = it.Validate(); err != nil {
		return err
	}
	return s.items.Update(ctx, it)
}

// SetActive is the only way an item switches between per-unit tracking
// and manual progress.
func (s *itemService) SetActive(ctx context.Context, id int64, active bool) (err error) {
	defer observe(ctx, s.observer, "item-set-active", time.Now().UTC(),
		map[string]any{"item_id": id, "active": active}, &err)

	return s.items.SetActive(ctx, id, active)
}

func (s *itemService) SetProgress(ctx context.Context, id int64, pct float64) (err error) {
	defer observe(ctx, s.observer, "item-set-progress", time.Now().UTC(),
		map[string]any{"item_id": id, "percent": pct}, &err)

	if err = domain.ValidatePercent(pct); err != nil {
		return err
	}
	return s.items.SetProgress(ctx, id, pct)
}

func (s *itemService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "item-delete", time.Now().UTC(), map[string]any{"item_id": id}, &err)

	return s.items.Delete(ctx, id)
}
