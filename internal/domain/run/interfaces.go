package run

import (
	"context"
	"time"
)

// Repository provides persistence for runs and their outcomes.
type Repository interface {
	Create(ctx context.Context, r *Run) error
	Get(ctx context.Context, id string) (*Run, error)
	List(ctx context.Context, projectID string) ([]Run, error)
	Close(ctx context.Context, id string, closedAt time.Time) error
	SetOutcome(ctx context.Context, runID, itemID string, res Result) error
	Progress(ctx context.Context, runID string) (map[string]Result, error)
}
