package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	before, err := SchemaVersion(db)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	after, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, uint(4), after)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"items", "units", "progress_records", "milestones", "unit_photos"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_progress_unit",
		"idx_progress_item",
		"idx_progress_unit_item",
		"idx_units_number",
		"idx_unit_photos_unit",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ItemsProgressDefaultsToZero(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO items (name, unit, quantity, unit_price, active) VALUES ('Excavación', 'm3', 10, 5, 0)`)
	require.NoError(t, err)

	var progress float64
	require.NoError(t, db.Get(&progress, `SELECT progress FROM items WHERE name = 'Excavación'`))
	assert.Equal(t, 0.0, progress)
}

func TestMigrate_ProgressUniquePerUnitItem(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO items (id, name) VALUES (1, 'a')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO units (id, number) VALUES (1, 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO progress_records (unit_id, item_id, recorded_on, percent) VALUES (1, 1, '2024-01-01', 10)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO progress_records (unit_id, item_id, recorded_on, percent) VALUES (1, 1, '2024-01-02', 20)`)
	require.Error(t, err, "second row for the same unit/item must violate the unique index")
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO progress_records (unit_id, item_id, recorded_on, percent) VALUES (99, 99, '2024-01-01', 10)`)
	require.Error(t, err)
}
