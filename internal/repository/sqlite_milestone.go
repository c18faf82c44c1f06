package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/domain"
)

type SQLiteMilestoneRepo struct {
	db db.DBTX
}

func NewSQLiteMilestoneRepo(db db.DBTX) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: db}
}

type milestoneRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Date  string `db:"date"`
	Notes string `db:"notes"`
}

// toDomain leaves Date zero when the stored text is malformed.
func (r milestoneRow) toDomain() *domain.Milestone {
	return &domain.Milestone{ID: r.ID, Name: r.Name, Date: parseDate(r.Date), Notes: r.Notes}
}

func (r *SQLiteMilestoneRepo) Create(ctx context.Context, m *domain.Milestone) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO milestones (name, date, notes) VALUES (?, ?, ?)`,
		m.Name, m.Date.Format(domain.DateLayout), m.Notes)
	if err != nil {
		return fmt.Errorf("inserting milestone: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading milestone id: %w", err)
	}
	m.ID = id
	return nil
}

func (r *SQLiteMilestoneRepo) GetByID(ctx context.Context, id int64) (*domain.Milestone, error) {
	var row milestoneRow
	err := r.db.GetContext(ctx, &row, `SELECT id, name, date, notes FROM milestones WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("milestone %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading milestone: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]*domain.Milestone, error) {
	var rows []milestoneRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, date, notes FROM milestones ORDER BY id`); err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}
	out := make([]*domain.Milestone, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SQLiteMilestoneRepo) Update(ctx context.Context, m *domain.Milestone) error {
	res, err := r.db.ExecContext(ctx, `UPDATE milestones SET name = ?, date = ?, notes = ? WHERE id = ?`,
		m.Name, m.Date.Format(domain.DateLayout), m.Notes, m.ID)
	if err != nil {
		return fmt.Errorf("updating milestone: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("milestone %d", m.ID))
}

func (r *SQLiteMilestoneRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("milestone %d", id))
}
