package checklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lbruni/collaudo/internal/repository"
)

// Service handles checklist operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new checklist service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Replace discards the project's current checklist and installs the given
// entries as the new one. Entries with a blank title are dropped; surviving
// entries are numbered 1..K in input order. Returns the number of items
// inserted. The swap is atomic: on failure the prior checklist is untouched.
func (s *Service) Replace(ctx context.Context, projectID string, entries []Entry) (int, error) {
	items := make([]Item, 0, len(entries))
	position := 1
	for _, e := range entries {
		title := strings.TrimSpace(e.Title)
		if title == "" {
			continue
		}
		items = append(items, Item{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Title:     title,
			Category:  strings.TrimSpace(e.Category),
			Expected:  strings.TrimSpace(e.Expected),
			Position:  position,
		})
		position++
	}

	if err := s.repo.Replace(ctx, projectID, items); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKeyViolation) {
			return 0, ErrProjectNotFound
		}
		return 0, fmt.Errorf("replacing checklist: %w", err)
	}

	return len(items), nil
}

// List returns the project's checklist in position order.
func (s *Service) List(ctx context.Context, projectID string) ([]Item, error) {
	items, err := s.repo.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing checklist: %w", err)
	}
	return items, nil
}
