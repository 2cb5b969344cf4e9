package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lbruni/collaudo/internal/domain/run"
	"github.com/lbruni/collaudo/internal/repository"
)

// RunRepository implements run.Repository for SQLite
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create creates a new run
func (r *RunRepository) Create(ctx context.Context, rn *run.Run) error {
	query := `
		INSERT INTO runs (id, project_id, name, operator, started_at, closed_at)
		VALUES (?, ?, ?, ?, ?, NULL)
	`

	_, err := r.db.ExecContext(ctx, query,
		rn.ID,
		rn.ProjectID,
		rn.Name,
		rn.Operator,
		formatTime(rn.StartedAt),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// Get retrieves a run by ID
func (r *RunRepository) Get(ctx context.Context, id string) (*run.Run, error) {
	query := `
		SELECT id, project_id, name, operator, started_at, closed_at
		FROM runs
		WHERE id = ?
	`

	var rn run.Run
	var startedAt string
	var closedAt sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rn.ID,
		&rn.ProjectID,
		&rn.Name,
		&rn.Operator,
		&startedAt,
		&closedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if rn.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, err
	}
	if closedAt.Valid {
		t, err := parseTime(closedAt.String)
		if err != nil {
			return nil, err
		}
		rn.ClosedAt = &t
	}

	return &rn, nil
}

// List returns a project's runs, most recently started first
func (r *RunRepository) List(ctx context.Context, projectID string) ([]run.Run, error) {
	query := `
		SELECT id, project_id, name, operator, started_at, closed_at
		FROM runs
		WHERE project_id = ?
		ORDER BY started_at DESC, rowid DESC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []run.Run
	for rows.Next() {
		var rn run.Run
		var startedAt string
		var closedAt sql.NullString
		err := rows.Scan(&rn.ID, &rn.ProjectID, &rn.Name, &rn.Operator, &startedAt, &closedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if rn.StartedAt, err = parseTime(startedAt); err != nil {
			return nil, err
		}
		if closedAt.Valid {
			t, err := parseTime(closedAt.String)
			if err != nil {
				return nil, err
			}
			rn.ClosedAt = &t
		}
		runs = append(runs, rn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Close stamps the run's close time, overwriting any previous one
func (r *RunRepository) Close(ctx context.Context, id string, closedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE runs SET closed_at = ? WHERE id = ?`,
		formatTime(closedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to close run: %w", err)
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

// SetOutcome upserts the outcome for a (run, checklist item) pair:
// insert if absent, otherwise overwrite outcome, note and timestamp.
func (r *RunRepository) SetOutcome(ctx context.Context, runID, itemID string, res run.Result) error {
	query := `
		INSERT INTO run_items (run_id, checklist_item_id, outcome, note, recorded_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, runID, itemID, string(res.Outcome), res.Note, formatTime(res.Timestamp))
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			updateQuery := `
				UPDATE run_items
				SET outcome = ?, note = ?, recorded_at = ?
				WHERE run_id = ? AND checklist_item_id = ?
			`
			if _, updateErr := r.db.ExecContext(ctx, updateQuery, string(res.Outcome), res.Note, formatTime(res.Timestamp), runID, itemID); updateErr != nil {
				return fmt.Errorf("failed to overwrite outcome: %w", updateErr)
			}
			return nil
		}
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

// Progress returns the latest outcome per checklist item for a run.
// Items with no recorded outcome are absent from the map.
func (r *RunRepository) Progress(ctx context.Context, runID string) (map[string]run.Result, error) {
	query := `
		SELECT checklist_item_id, outcome, note, recorded_at
		FROM run_items
		WHERE run_id = ?
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]run.Result)
	for rows.Next() {
		var itemID, outcome, note, recordedAt string
		if err := rows.Scan(&itemID, &outcome, &note, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		ts, err := parseTime(recordedAt)
		if err != nil {
			return nil, err
		}
		progress[itemID] = run.Result{
			Outcome:   run.Outcome(outcome),
			Note:      note,
			Timestamp: ts,
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outcomes: %w", err)
	}

	return progress, nil
}
