package checklist

import "context"

// Repository provides persistence for checklist items.
type Repository interface {
	Replace(ctx context.Context, projectID string, items []Item) error
	List(ctx context.Context, projectID string) ([]Item, error)
}
