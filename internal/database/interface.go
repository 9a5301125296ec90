package database

import (
	"context"

	"github.com/akyairhashvil/sprintflow/internal/engine"
	"github.com/akyairhashvil/sprintflow/internal/models"
)

// SprintRepository defines sprint-related database operations.
type SprintRepository interface {
	SprintByID(ctx context.Context, id int64) (models.Sprint, error)
	SprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error)
	AllSprints(ctx context.Context) ([]models.Sprint, error)
}

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	TaskByID(ctx context.Context, id int64) (models.Task, error)
	TasksBySprint(ctx context.Context, sprintID int64) ([]models.Task, error)
	TasksByProject(ctx context.Context, projectID int64) ([]models.Task, error)
}

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	EnsureProject(ctx context.Context, name string) (int64, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	ProjectByID(ctx context.Context, id int64) (models.Project, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	SprintRepository
	TaskRepository
	ProjectRepository
	Commit(ctx context.Context, batch *models.Batch) error
}

var (
	_ Repository   = (*Database)(nil)
	_ engine.Store = (*Database)(nil)
)
