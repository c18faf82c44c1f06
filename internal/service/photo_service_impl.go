package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/google/uuid"
)

type photoService struct {
	photos   repository.PhotoRepo
	units    repository.UnitRepo
	dir      string
	observer UseCaseObserver
}

// NewPhotoService stores attached files under dir/<unit id>/.
func NewPhotoService(photos repository.PhotoRepo, units repository.UnitRepo, dir string, observers ...UseCaseObserver) PhotoService {
	return &photoService{photos: photos, units: units, dir: dir, observer: useCaseObserverOrNoop(observers)}
}

func (s *photoService) Attach(ctx context.Context, unitID int64, srcPath string) (photo *domain.UnitPhoto, err error) {
	defer observe(ctx, s.observer, "photo-attach", time.Now().UTC(),
		map[string]any{"unit_id": unitID, "source": filepath.Base(srcPath)}, &err)

	if _, err = s.units.GetByID(ctx, unitID); err != nil {
		return nil, err
	}

	unitDir := filepath.Join(s.dir, strconv.FormatInt(unitID, 10))
	if err = os.MkdirAll(unitDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating photo directory: %w", err)
	}
	dst := filepath.Join(unitDir, uuid.NewString()+strings.ToLower(filepath.Ext(srcPath)))
	if err = copyFile(srcPath, dst); err != nil {
		return nil, err
	}

	photo = &domain.UnitPhoto{UnitID: unitID, Path: dst, OriginalName: filepath.Base(srcPath)}
	if err = s.photos.Create(ctx, photo); err != nil {
		_ = os.Remove(dst)
		return nil, err
	}
	return photo, nil
}

func (s *photoService) ListByUnit(ctx context.Context, unitID int64) ([]*domain.UnitPhoto, error) {
	return s.photos.ListByUnit(ctx, unitID)
}

func (s *photoService) Remove(ctx context.Context, id int64) (err error) {
	defer observe(ctx, s.observer, "photo-remove", time.Now().UTC(), map[string]any{"photo_id": id}, &err)

	var photo *domain.UnitPhoto
	if photo, err = s.photos.GetByID(ctx, id); err != nil {
		return err
	}
	if err = s.photos.Delete(ctx, id); err != nil {
		return err
	}
	if rmErr := os.Remove(photo.Path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return fmt.Errorf("removing photo file: %w", rmErr)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening photo: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating photo copy: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying photo: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing photo copy: %w", err)
	}
	return nil
}
