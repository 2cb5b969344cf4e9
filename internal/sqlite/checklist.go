package sqlite

import (
	"context"
	"fmt"

	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/repository"
)

// ChecklistRepository implements checklist.Repository for SQLite
type ChecklistRepository struct {
	db *DB
}

// NewChecklistRepository creates a new ChecklistRepository
func NewChecklistRepository(db *DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// Replace swaps the project's checklist for the given items in one
// transaction. A failure rolls back to the prior checklist.
func (r *ChecklistRepository) Replace(ctx context.Context, projectID string, items []checklist.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE id = ?`, projectID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check project: %w", err)
	}
	if exists == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_items WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to clear checklist: %w", err)
	}

	insert := `
		INSERT INTO checklist_items (id, project_id, title, category, expected, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, item := range items {
		_, err := tx.ExecContext(ctx, insert,
			item.ID,
			projectID,
			item.Title,
			item.Category,
			item.Expected,
			item.Position,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrForeignKeyViolation
			}
			return fmt.Errorf("failed to insert checklist item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List returns a project's checklist ordered by position, insertion order
// as tiebreak.
func (r *ChecklistRepository) List(ctx context.Context, projectID string) ([]checklist.Item, error) {
	query := `
		SELECT id, project_id, title, category, expected, position
		FROM checklist_items
		WHERE project_id = ?
		ORDER BY position ASC, rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist: %w", err)
	}
	defer rows.Close()

	var items []checklist.Item
	for rows.Next() {
		var item checklist.Item
		err := rows.Scan(
			&item.ID,
			&item.ProjectID,
			&item.Title,
			&item.Category,
			&item.Expected,
			&item.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist rows: %w", err)
	}

	return items, nil
}
