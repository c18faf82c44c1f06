package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/domain"
)

// SQLiteProgressRepo stores at most one current record per (unit, item).
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(db db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: db}
}

type progressRow struct {
	ID            int64          `db:"id"`
	UnitID        int64          `db:"unit_id"`
	ItemID        int64          `db:"item_id"`
	RecordedOn    string         `db:"recorded_on"`
	Percent       float64        `db:"percent"`
	IntervalStart sql.NullString `db:"interval_start"`
	IntervalEnd   sql.NullString `db:"interval_end"`
}

func (r progressRow) toDomain() *domain.ProgressRecord {
	return &domain.ProgressRecord{
		ID:            r.ID,
		UnitID:        r.UnitID,
		ItemID:        r.ItemID,
		RecordedOn:    parseDate(r.RecordedOn),
		Percent:       r.Percent,
		IntervalStart: parseNullableDate(r.IntervalStart),
		IntervalEnd:   parseNullableDate(r.IntervalEnd),
	}
}

const progressColumns = `id, unit_id, item_id, recorded_on, percent, interval_start, interval_end`

// Upsert inserts the record or replaces the existing one for the same
// (unit, item), and sets r.ID to the stored row's id.
func (r *SQLiteProgressRepo) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	query := `INSERT INTO progress_records (unit_id, item_id, recorded_on, percent, interval_start, interval_end)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(unit_id, item_id) DO UPDATE SET
			recorded_on = excluded.recorded_on,
			percent = excluded.percent,
			interval_start = excluded.interval_start,
			interval_end = excluded.interval_end
		RETURNING id`
	err := r.db.QueryRowxContext(ctx, query,
		rec.UnitID, rec.ItemID, rec.RecordedOn.Format(domain.DateLayout), rec.Percent,
		nullableDate(rec.IntervalStart), nullableDate(rec.IntervalEnd),
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("upserting progress record: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) GetByID(ctx context.Context, id int64) (*domain.ProgressRecord, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row, `SELECT `+progressColumns+` FROM progress_records WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress record %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading progress record: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLiteProgressRepo) GetCurrent(ctx context.Context, unitID, itemID int64) (*domain.ProgressRecord, error) {
	var row progressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT `+progressColumns+` FROM progress_records WHERE unit_id = ? AND item_id = ?`, unitID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress record for unit %d item %d: %w", unitID, itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading progress record: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLiteProgressRepo) List(ctx context.Context, f ProgressFilter) ([]*domain.ProgressRecord, error) {
	var (
		where []string
		args  []any
	)
	if f.UnitID != 0 {
		where = append(where, "unit_id = ?")
		args = append(args, f.UnitID)
	}
	if f.ItemID != 0 {
		where = append(where, "item_id = ?")
		args = append(args, f.ItemID)
	}
	query := `SELECT ` + progressColumns + ` FROM progress_records`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	var rows []progressRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("listing progress records: %w", err)
	}
	records := make([]*domain.ProgressRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}
	return records, nil
}

func (r *SQLiteProgressRepo) ListByUnit(ctx context.Context, unitID int64) ([]*domain.ProgressRecord, error) {
	return r.List(ctx, ProgressFilter{UnitID: unitID})
}

func (r *SQLiteProgressRepo) Update(ctx context.Context, rec *domain.ProgressRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE progress_records SET recorded_on = ?, percent = ?, interval_start = ?, interval_end = ?
		WHERE id = ?`,
		rec.RecordedOn.Format(domain.DateLayout), rec.Percent,
		nullableDate(rec.IntervalStart), nullableDate(rec.IntervalEnd), rec.ID)
	if err != nil {
		return fmt.Errorf("updating progress record: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("progress record %d", rec.ID))
}

func (r *SQLiteProgressRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM progress_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting progress record: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("progress record %d", id))
}
