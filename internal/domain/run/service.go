package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lbruni/collaudo/internal/repository"
)

// Service handles run operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new run service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines run creation inputs.
type CreateRequest struct {
	ProjectID string
	Name      string
	Operator  string
}

// Create starts a new run for a project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Run, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.ProjectID == "" {
		return nil, ErrInvalidInput
	}

	r := &Run{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      name,
		Operator:  strings.TrimSpace(req.Operator),
		StartedAt: now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("creating run: %w", err)
	}

	return r, nil
}

// Get fetches a run by ID.
func (s *Service) Get(ctx context.Context, id string) (*Run, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return r, nil
}

// List returns a project's runs, most recently started first.
func (s *Service) List(ctx context.Context, projectID string) ([]Run, error) {
	runs, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}

// Close stamps the run's close time. Closing an already-closed run
// overwrites the previous close time rather than erroring.
func (s *Service) Close(ctx context.Context, id string) error {
	if err := s.repo.Close(ctx, id, now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRunNotFound
		}
		return fmt.Errorf("closing run: %w", err)
	}
	return nil
}

// SetOutcome records the verdict for one checklist item within a run.
// A second call for the same (run, item) pair overwrites outcome, note
// and timestamp in place; there is never more than one row per pair.
// Closed runs still accept outcomes.
func (s *Service) SetOutcome(ctx context.Context, runID, itemID, outcome, note string) (*Result, error) {
	parsed, err := ParseOutcome(outcome)
	if err != nil {
		return nil, err
	}

	res := Result{
		Outcome:   parsed,
		Note:      strings.TrimSpace(note),
		Timestamp: now(),
	}

	if err := s.repo.SetOutcome(ctx, runID, itemID, res); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) || errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("recording outcome: %w", err)
	}

	return &res, nil
}

// Progress returns the latest outcome per checklist item for a run.
// Items never executed in this run are absent from the map.
func (s *Service) Progress(ctx context.Context, runID string) (map[string]Result, error) {
	progress, err := s.repo.Progress(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("loading run progress: %w", err)
	}
	return progress, nil
}

// now returns the recording clock: UTC, second precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
