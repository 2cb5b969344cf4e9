package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.InitSchema()
	require.NoError(t, err, "failed to init schema")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestInitSchema verifies that all tables are created
func TestInitSchema(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"projects",
		"checklist_items",
		"runs",
		"run_items",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestInitSchemaIdempotent verifies repeated schema creation is safe
func TestInitSchemaIdempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.InitSchema())
	require.NoError(t, db.InitSchema())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestRunItemsConstraints verifies the outcome CHECK and composite key
func TestRunItemsConstraints(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, name, created_at) VALUES ('p1', 'Test', '2026-01-02T10:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO checklist_items (id, project_id, title, position) VALUES ('i1', 'p1', 'Check', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO runs (id, project_id, name, started_at) VALUES ('r1', 'p1', 'Run', '2026-01-02T10:00:00Z')`)
	require.NoError(t, err)

	// Invalid outcome rejected by the CHECK constraint
	_, err = db.Exec(`INSERT INTO run_items (run_id, checklist_item_id, outcome, recorded_at)
		VALUES ('r1', 'i1', 'MAYBE', '2026-01-02T10:00:00Z')`)
	require.Error(t, err, "should reject outcome outside PASS/FAIL/SKIP")

	// Second row for the same (run, item) pair rejected by the primary key
	_, err = db.Exec(`INSERT INTO run_items (run_id, checklist_item_id, outcome, recorded_at)
		VALUES ('r1', 'i1', 'PASS', '2026-01-02T10:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO run_items (run_id, checklist_item_id, outcome, recorded_at)
		VALUES ('r1', 'i1', 'FAIL', '2026-01-02T10:00:01Z')`)
	require.Error(t, err, "should reject a second outcome row for the same pair")
	require.True(t, isUniqueViolation(err))
}
