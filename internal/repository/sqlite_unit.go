package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/domain"
)

type SQLiteUnitRepo struct {
	db db.DBTX
}

func NewSQLiteUnitRepo(db db.DBTX) *SQLiteUnitRepo {
	return &SQLiteUnitRepo{db: db}
}

type unitRow struct {
	ID              int64          `db:"id"`
	Number          int            `db:"number"`
	Location        string         `db:"location"`
	BeneficiaryName string         `db:"beneficiary_name"`
	NationalID      string         `db:"national_id"`
	CoordE          float64        `db:"coord_e"`
	CoordN          float64        `db:"coord_n"`
	StartDate       sql.NullString `db:"start_date"`
	EndDate         sql.NullString `db:"end_date"`
	Status          string         `db:"status"`
	Observations    string         `db:"observations"`
}

func (r unitRow) toDomain() *domain.Unit {
	return &domain.Unit{
		ID:              r.ID,
		Number:          r.Number,
		Location:        r.Location,
		BeneficiaryName: r.BeneficiaryName,
		NationalID:      r.NationalID,
		CoordE:          r.CoordE,
		CoordN:          r.CoordN,
		StartDate:       parseNullableDate(r.StartDate),
		EndDate:         parseNullableDate(r.EndDate),
		Status:          domain.UnitStatus(r.Status),
		Observations:    r.Observations,
	}
}

const unitColumns = `id, number, location, beneficiary_name, national_id, coord_e, coord_n,
	start_date, end_date, status, observations`

func (r *SQLiteUnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	if u.Status == "" {
		u.Status = domain.UnitPending
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO units (number, location, beneficiary_name, national_id, coord_e, coord_n,
			start_date, end_date, status, observations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Number, u.Location, u.BeneficiaryName, u.NationalID, u.CoordE, u.CoordN,
		nullableDate(u.StartDate), nullableDate(u.EndDate), string(u.Status), u.Observations)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading unit id: %w", err)
	}
	u.ID = id
	return nil
}

func (r *SQLiteUnitRepo) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	var row unitRow
	err := r.db.GetContext(ctx, &row, `SELECT `+unitColumns+` FROM units WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unit %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading unit: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SQLiteUnitRepo) List(ctx context.Context) ([]*domain.Unit, error) {
	var rows []unitRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+unitColumns+` FROM units ORDER BY number, id`); err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	units := make([]*domain.Unit, 0, len(rows))
	for _, row := range rows {
		units = append(units, row.toDomain())
	}
	return units, nil
}

func (r *SQLiteUnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE units SET number = ?, location = ?, beneficiary_name = ?, national_id = ?,
			coord_e = ?, coord_n = ?, start_date = ?, end_date = ?, status = ?, observations = ?
		WHERE id = ?`,
		u.Number, u.Location, u.BeneficiaryName, u.NationalID, u.CoordE, u.CoordN,
		nullableDate(u.StartDate), nullableDate(u.EndDate), string(u.Status), u.Observations, u.ID)
	if err != nil {
		return fmt.Errorf("updating unit: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("unit %d", u.ID))
}

func (r *SQLiteUnitRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("unit %d", id))
}

func (r *SQLiteUnitRepo) CountByStatus(ctx context.Context) (map[domain.UnitStatus]int, error) {
	var rows []struct {
		Status string `db:"status"`
		N      int    `db:"n"`
	}
	if err := r.db.SelectContext(ctx, &rows, `SELECT status, COUNT(*) AS n FROM units GROUP BY status`); err != nil {
		return nil, fmt.Errorf("counting units by status: %w", err)
	}
	counts := make(map[domain.UnitStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.UnitStatus(row.Status)] = row.N
	}
	return counts, nil
}
