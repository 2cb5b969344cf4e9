package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/repository"
)

func testProject(id, name string) *project.Project {
	return &project.Project{
		ID:        id,
		Name:      name,
		Client:    "ACME",
		Site:      "Plant 3",
		Notes:     "first campaign",
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := testProject("p1", "Line A")
	require.NoError(t, repo.Create(ctx, proj))

	got, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, proj, got)
}

func TestProjectRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListCounts(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := testProject("p1", "Line A")
	require.NoError(t, repo.Create(ctx, proj))

	_, err := db.Exec(`INSERT INTO checklist_items (id, project_id, title, position) VALUES ('i1', 'p1', 'Check 1', 1), ('i2', 'p1', 'Check 2', 2)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO runs (id, project_id, name, started_at) VALUES ('r1', 'p1', 'Run 1', '2026-01-02T11:00:00Z')`)
	require.NoError(t, err)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "Line A", summaries[0].Name)
	require.Equal(t, 2, summaries[0].ItemCount)
	require.Equal(t, 1, summaries[0].RunCount)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testProject("p1", "Line A")))
	_, err := db.Exec(`INSERT INTO checklist_items (id, project_id, title, position) VALUES ('i1', 'p1', 'Check 1', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO runs (id, project_id, name, started_at) VALUES ('r1', 'p1', 'Run 1', '2026-01-02T11:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO run_items (run_id, checklist_item_id, outcome, recorded_at) VALUES ('r1', 'i1', 'PASS', '2026-01-02T11:05:00Z')`)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "p1"))

	for _, table := range []string{"projects", "checklist_items", "runs", "run_items"} {
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		require.Zero(t, count, "table %s not emptied by cascade", table)
	}
}

func TestProjectRepository_DeleteNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
