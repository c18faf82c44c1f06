package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/domain"
)

type SQLitePhotoRepo struct {
	db db.DBTX
}

func NewSQLitePhotoRepo(db db.DBTX) *SQLitePhotoRepo {
	return &SQLitePhotoRepo{db: db}
}

type photoRow struct {
	ID           int64  `db:"id"`
	UnitID       int64  `db:"unit_id"`
	Path         string `db:"path"`
	OriginalName string `db:"original_name"`
	AddedAt      string `db:"added_at"`
}

func (r photoRow) toDomain() *domain.UnitPhoto {
	added, _ := time.Parse(time.RFC3339, r.AddedAt)
	return &domain.UnitPhoto{
		ID:           r.ID,
		UnitID:       r.UnitID,
		Path:         r.Path,
		OriginalName: r.OriginalName,
		AddedAt:      added,
	}
}

func (r *SQLitePhotoRepo) Create(ctx context.Context, p *domain.UnitPhoto) error {
	if p.AddedAt.IsZero() {
		p.AddedAt = time.Now().UTC().Truncate(time.Second)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO unit_photos (unit_id, path, original_name, added_at) VALUES (?, ?, ?, ?)`,
		p.UnitID, p.Path, p.OriginalName, p.AddedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting unit photo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading unit photo id: %w", err)
	}
	p.ID = id
	return nil
}

func (r *SQLitePhotoRepo) GetByID(ctx context.Context, id int64) (*domain.UnitPhoto, error) {
	var row photoRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, unit_id, path, original_name, added_at FROM unit_photos WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unit photo %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading unit photo: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLitePhotoRepo) ListByUnit(ctx context.Context, unitID int64) ([]*domain.UnitPhoto, error) {
	var rows []photoRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, unit_id, path, original_name, added_at FROM unit_photos WHERE unit_id = ? ORDER BY id`, unitID)
	if err != nil {
		return nil, fmt.Errorf("listing unit photos: %w", err)
	}
	out := make([]*domain.UnitPhoto, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SQLitePhotoRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM unit_photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting unit photo: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("unit photo %d", id))
}
