package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
)

type progressService struct {
	records  repository.ProgressRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProgressService(records repository.ProgressRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgressService {
	return &progressService{records: records, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Record(ctx context.Context, rec *domain.ProgressRecord) (err error) {
	fields := map[string]any{"unit_id": rec.UnitID, "item_id": rec.ItemID, "percent": rec.Percent}
	defer observe(ctx, s.observer, "progress-record", time.Now().UTC(), fields, &err)

	if rec.RecordedOn.IsZero() {
		rec.RecordedOn = domain.Today()
	}
	if err = rec.Validate(); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteUnitRepo(tx).GetByID(ctx, rec.UnitID); err != nil {
			return err
		}
		if _, err := repository.NewSQLiteItemRepo(tx).GetByID(ctx, rec.ItemID); err != nil {
			return err
		}
		return repository.NewSQLiteProgressRepo(tx).Upsert(ctx, rec)
	})
	if err != nil {
		return fmt.Errorf("recording progress: %w", err)
	}
	fields["record_id"] = rec.ID
	return nil
}

func (s *progressService) GetByID(ctx context.Context, id int64) (*domain.ProgressRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *progressService) List(ctx context.Context, f repository.ProgressFilter) ([]*domain.ProgressRecord, error) {
	return s.records.List(ctx, f)
}

func (s *progressService) ListByUnit(ctx context.Context, unitID int64) ([]*domain.ProgressRecord, error) {
	return s.records.ListByUnit(ctx, unitID)
}

func (s *progressService) Update(ctx context.Context, rec *domain.ProgressRecord) (err error) {
	defer observe(ctx, s.observer, "progress-update", time.Now().UTC(), map[string]any{"record_id": rec.ID}, &err)

	if err = rec.Validate(); err != nil {
		return err
	}
	return s.records.Update(ctx, rec)
}

func (s *progressService) Delete(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "progress-delete", time.Now().UTC(), map[string]any{"record_id": id}, &err)

	return s.records.Delete(ctx, id)
}
