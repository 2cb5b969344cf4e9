package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/repository"
)

func seedProject(t *testing.T, db *DB, id string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO projects (id, name, created_at) VALUES (?, ?, '2026-01-02T10:00:00Z')`, id, "Project "+id)
	require.NoError(t, err)
}

func TestChecklistRepository_ReplaceAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)
	ctx := context.Background()
	seedProject(t, db, "p1")

	items := []checklist.Item{
		{ID: "i1", ProjectID: "p1", Title: "Power on", Category: "electrical", Expected: "LED lit", Position: 1},
		{ID: "i2", ProjectID: "p1", Title: "Run self test", Position: 2},
	}
	require.NoError(t, repo.Replace(ctx, "p1", items))

	got, err := repo.List(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestChecklistRepository_ReplaceDiscardsPrior(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)
	ctx := context.Background()
	seedProject(t, db, "p1")

	first := []checklist.Item{
		{ID: "a1", ProjectID: "p1", Title: "Old check", Position: 1},
	}
	require.NoError(t, repo.Replace(ctx, "p1", first))

	second := []checklist.Item{
		{ID: "b1", ProjectID: "p1", Title: "New check 1", Position: 1},
		{ID: "b2", ProjectID: "p1", Title: "New check 2", Position: 2},
	}
	require.NoError(t, repo.Replace(ctx, "p1", second))

	got, err := repo.List(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestChecklistRepository_ReplaceMissingProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)

	err := repo.Replace(context.Background(), "missing", []checklist.Item{
		{ID: "i1", ProjectID: "missing", Title: "Check", Position: 1},
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChecklistRepository_ReplaceAtomicOnFailure(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)
	ctx := context.Background()
	seedProject(t, db, "p1")

	prior := []checklist.Item{
		{ID: "a1", ProjectID: "p1", Title: "Keep me", Position: 1},
	}
	require.NoError(t, repo.Replace(ctx, "p1", prior))

	// Duplicate IDs make the bulk insert fail partway; the prior
	// checklist must survive untouched.
	bad := []checklist.Item{
		{ID: "b1", ProjectID: "p1", Title: "New 1", Position: 1},
		{ID: "b1", ProjectID: "p1", Title: "New 2", Position: 2},
	}
	require.Error(t, repo.Replace(ctx, "p1", bad))

	got, err := repo.List(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, prior, got)
}

func TestChecklistRepository_ListScopedToProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)
	ctx := context.Background()
	seedProject(t, db, "p1")
	seedProject(t, db, "p2")

	require.NoError(t, repo.Replace(ctx, "p1", []checklist.Item{
		{ID: "i1", ProjectID: "p1", Title: "Only p1", Position: 1},
	}))
	require.NoError(t, repo.Replace(ctx, "p2", []checklist.Item{
		{ID: "i2", ProjectID: "p2", Title: "Only p2", Position: 1},
	}))

	got, err := repo.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Only p1", got[0].Title)
}

func TestChecklistRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewChecklistRepository(db)
	seedProject(t, db, "p1")

	got, err := repo.List(context.Background(), "p1")
	require.NoError(t, err)
	require.Empty(t, got)
}
