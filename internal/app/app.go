// Package app wires the store, repositories and services together.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lbruni/collaudo/internal/config"
	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/domain/run"
	"github.com/lbruni/collaudo/internal/sqlite"
)

// App holds the assembled services and the underlying store handle.
// The caller owns the handle: acquire with New, release with Close.
type App struct {
	Config config.Config
	Logger *slog.Logger

	Projects  *project.Service
	Checklist *checklist.Service
	Runs      *run.Service

	db *sqlite.DB
}

// New opens the store at cfg.DB.Path, initializes the schema and builds
// the services.
func New(cfg config.Config) (*App, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.InitSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	projectRepo := sqlite.NewProjectRepository(db)
	checklistRepo := sqlite.NewChecklistRepository(db)
	runRepo := sqlite.NewRunRepository(db)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Projects:  project.NewService(projectRepo, logger),
		Checklist: checklist.NewService(checklistRepo, logger),
		Runs:      run.NewService(runRepo, logger),
		db:        db,
	}, nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file::memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
