package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/testutil"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUnitAndItem(t *testing.T, db *sqlx.DB) (*domain.Unit, *domain.CostItem) {
	t.Helper()
	ctx := context.Background()
	u := testutil.NewTestUnit("Ana Quispe")
	require.NoError(t, NewSQLiteUnitRepo(db).Create(ctx, u))
	it := testutil.NewTestItem("Excavación")
	require.NoError(t, NewSQLiteItemRepo(db).Create(ctx, it))
	return u, it
}

func TestProgressRepo_UpsertKeepsSingleRow(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	u, it := seedUnitAndItem(t, db)

	first := testutil.NewTestRecord(u.ID, it.ID, 25, testutil.WithRecordedOn(testutil.Date("2024-01-10")))
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotZero(t, first.ID)

	second := testutil.NewTestRecord(u.ID, it.ID, 75,
		testutil.WithRecordedOn(testutil.Date("2024-02-10")),
		testutil.WithInterval(testutil.Date("2024-01-05"), testutil.Date("2024-02-09")))
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID, "upsert must reuse the existing row")

	records, err := repo.List(ctx, ProgressFilter{UnitID: u.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 75.0, records[0].Percent)
	assert.True(t, testutil.Date("2024-02-10").Equal(records[0].RecordedOn))
	require.True(t, records[0].HasInterval())
	assert.True(t, testutil.Date("2024-02-09").Equal(*records[0].IntervalEnd))
}

func TestProgressRepo_GetCurrent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	u, it := seedUnitAndItem(t, db)

	_, err := repo.GetCurrent(ctx, u.ID, it.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestRecord(u.ID, it.ID, 50)))
	rec, err := repo.GetCurrent(ctx, u.ID, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, rec.Percent)
	assert.False(t, rec.HasInterval())
}

func TestProgressRepo_UpdateDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	u, it := seedUnitAndItem(t, db)

	rec := testutil.NewTestRecord(u.ID, it.ID, 10)
	require.NoError(t, repo.Upsert(ctx, rec))

	rec.Percent = 100
	require.NoError(t, repo.Update(ctx, rec))
	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Percent)

	require.NoError(t, repo.Delete(ctx, rec.ID))
	assert.ErrorIs(t, repo.Delete(ctx, rec.ID), ErrNotFound)
	rec.ID = 999
	assert.ErrorIs(t, repo.Update(ctx, rec), ErrNotFound)
}

func TestProgressRepo_MalformedDatesLoadAsNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	u, it := seedUnitAndItem(t, db)

	_, err := db.Exec(`INSERT INTO progress_records (unit_id, item_id, recorded_on, percent, interval_start, interval_end)
		VALUES (?, ?, '2024-01-01', 30, 'not-a-date', '2024-01-20')`, u.ID, it.ID)
	require.NoError(t, err)

	records, err := repo.ListByUnit(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].IntervalStart)
	require.NotNil(t, records[0].IntervalEnd)
	assert.False(t, records[0].HasInterval())
}

func TestProgressRepo_CascadeOnUnitDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProgressRepo(db)
	ctx := context.Background()
	u, it := seedUnitAndItem(t, db)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestRecord(u.ID, it.ID, 10)))
	require.NoError(t, NewSQLiteUnitRepo(db).Delete(ctx, u.ID))

	records, err := repo.List(ctx, ProgressFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}
