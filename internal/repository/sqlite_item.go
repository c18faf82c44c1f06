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

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

func NewSQLiteItemRepo(db db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

type itemRow struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Unit      string  `db:"unit"`
	Quantity  float64 `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	Active    int     `db:"active"`
	Progress  float64 `db:"progress"`
}

func (r itemRow) toDomain() *domain.CostItem {
	return &domain.CostItem{
		ID:            r.ID,
		Name:          r.Name,
		UnitOfMeasure: r.Unit,
		Quantity:      r.Quantity,
		UnitPrice:     r.UnitPrice,
		Active:        r.Active != 0,
		Progress:      r.Progress,
	}
}

const itemColumns = `id, name, unit, quantity, unit_price, active, progress`

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.CostItem) error {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO items (name, unit, quantity, unit_price, active, progress)
		VALUES (:name, :unit, :quantity, :unit_price, :active, :progress)`,
		itemRow{
			Name:      it.Name,
			Unit:      it.UnitOfMeasure,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Active:    boolToInt(it.Active),
			Progress:  it.Progress,
		})
	if err != nil {
		return fmt.Errorf("inserting cost item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading cost item id: %w", err)
	}
	it.ID = id
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id int64) (*domain.CostItem, error) {
	var row itemRow
	err := r.db.GetContext(ctx, &row, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cost item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading cost item: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLiteItemRepo) List(ctx context.Context, f ItemFilter) ([]*domain.CostItem, error) {
	var (
		where []string
		args  []any
	)
	if f.Active != nil {
		where = append(where, "active = ?")
		args = append(args, boolToInt(*f.Active))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		where = append(where, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	query := `SELECT ` + itemColumns + ` FROM items`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("listing cost items: %w", err)
	}
	items := make([]*domain.CostItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.CostItem) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET name = ?, unit = ?, quantity = ?, unit_price = ?, active = ?, progress = ?
		WHERE id = ?`,
		it.Name, it.UnitOfMeasure, it.Quantity, it.UnitPrice, boolToInt(it.Active), it.Progress, it.ID)
	if err != nil {
		return fmt.Errorf("updating cost item: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("cost item %d", it.ID))
}

func (r *SQLiteItemRepo) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("setting cost item active flag: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("cost item %d", id))
}

func (r *SQLiteItemRepo) SetProgress(ctx context.Context, id int64, pct float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET progress = ? WHERE id = ?`, pct, id)
	if err != nil {
		return fmt.Errorf("setting cost item progress: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("cost item %d", id))
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting cost item: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("cost item %d", id))
}
