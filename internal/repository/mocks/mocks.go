package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/domain/run"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ChecklistRepository is a mock for checklist.Repository.
type ChecklistRepository struct {
	mock.Mock
}

func (m *ChecklistRepository) Replace(ctx context.Context, projectID string, items []checklist.Item) error {
	args := m.Called(ctx, projectID, items)
	return args.Error(0)
}

func (m *ChecklistRepository) List(ctx context.Context, projectID string) ([]checklist.Item, error) {
	args := m.Called(ctx, projectID)
	if items, ok := args.Get(0).([]checklist.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// RunRepository is a mock for run.Repository.
type RunRepository struct {
	mock.Mock
}

func (m *RunRepository) Create(ctx context.Context, r *run.Run) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *RunRepository) Get(ctx context.Context, id string) (*run.Run, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*run.Run); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RunRepository) List(ctx context.Context, projectID string) ([]run.Run, error) {
	args := m.Called(ctx, projectID)
	if runs, ok := args.Get(0).([]run.Run); ok {
		return runs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RunRepository) Close(ctx context.Context, id string, closedAt time.Time) error {
	args := m.Called(ctx, id, closedAt)
	return args.Error(0)
}

func (m *RunRepository) SetOutcome(ctx context.Context, runID, itemID string, res run.Result) error {
	args := m.Called(ctx, runID, itemID, res)
	return args.Error(0)
}

func (m *RunRepository) Progress(ctx context.Context, runID string) (map[string]run.Result, error) {
	args := m.Called(ctx, runID)
	if progress, ok := args.Get(0).(map[string]run.Result); ok {
		return progress, args.Error(1)
	}
	return nil, args.Error(1)
}
