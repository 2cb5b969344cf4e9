package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, name, client, site, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		proj.Name,
		proj.Client,
		proj.Site,
		proj.Notes,
		formatTime(proj.CreatedAt),
	)

	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := `
		SELECT id, name, client, site, notes, created_at
		FROM projects
		WHERE id = ?
	`

	var proj project.Project
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proj.ID,
		&proj.Name,
		&proj.Client,
		&proj.Site,
		&proj.Notes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if proj.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	return &proj, nil
}

// List returns all projects with summary counts, newest first
func (r *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.client,
			p.site,
			p.created_at,
			COUNT(DISTINCT ci.id) AS item_count,
			COUNT(DISTINCT ru.id) AS run_count
		FROM projects p
		LEFT JOIN checklist_items ci ON ci.project_id = p.id
		LEFT JOIN runs ru ON ru.project_id = p.id
		GROUP BY p.id, p.name, p.client, p.site, p.created_at
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		var createdAt string
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Client,
			&summary.Site,
			&createdAt,
			&summary.ItemCount,
			&summary.RunCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		if summary.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// Delete removes a project. Checklist items, runs and outcomes cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
