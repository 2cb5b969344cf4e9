package sqlite

import (
	"github.com/lbruni/collaudo/internal/domain/checklist"
	"github.com/lbruni/collaudo/internal/domain/project"
	"github.com/lbruni/collaudo/internal/domain/run"
)

// The repositories must keep satisfying the interfaces the domain
// services consume.
var (
	_ project.Repository   = (*ProjectRepository)(nil)
	_ checklist.Repository = (*ChecklistRepository)(nil)
	_ run.Repository       = (*RunRepository)(nil)
)
