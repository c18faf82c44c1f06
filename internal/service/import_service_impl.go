package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/importer"
	"github.com/alexanderramin/atajados/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService writes every imported row inside one transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportItems(ctx context.Context, path string) (res *contract.ImportResult, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "import-items", time.Now().UTC(), fields, &err)

	tbl, err := importer.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	items, err := importer.ParseItems(tbl)
	if err != nil {
		return nil, fmt.Errorf("import validation failed:\n%w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteItemRepo(tx)
		for _, it := range items {
			if err := repo.Create(ctx, it); err != nil {
				return fmt.Errorf("creating item %q: %w", it.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["created"] = len(items)
	return &contract.ImportResult{Kind: "items", Source: path, Created: len(items)}, nil
}

func (s *importService) ImportUnits(ctx context.Context, path string) (res *contract.ImportResult, err error) {
	fields := map[string]any{"path": path}
	defer observe(ctx, s.observer, "import-units", time.Now().UTC(), fields, &err)

	tbl, err := importer.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	units, err := importer.ParseUnits(tbl)
	if err != nil {
		return nil, fmt.Errorf("import validation failed:\n%w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteUnitRepo(tx)
		for _, u := range units {
			if err := repo.Create(ctx, u); err != nil {
				return fmt.Errorf("creating unit %d: %w", u.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["created"] = len(units)
	return &contract.ImportResult{Kind: "units", Source: path, Created: len(units)}, nil
}
