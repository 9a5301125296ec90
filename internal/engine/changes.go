package engine

import (
	"time"

	"github.com/akyairhashvil/sprintflow/internal/models"
)

// SprintChange describes a sprint create or update. Nil fields are left
// untouched; ID 0 means create, which requires Name and StartDate.
type SprintChange struct {
	ID          int64
	Name        *string
	ProjectID   *int64
	StartDate   *time.Time
	EndDate     *time.Time
	StateMode   *models.StateMode
	ManualState *models.SprintState
}

// TaskChange describes a task create or update. Nil fields are left
// untouched; ID 0 means create, which requires Name and ProjectID.
// ClearSprint detaches the task from its sprint and takes precedence over
// SprintID.
type TaskChange struct {
	ID          int64
	Name        *string
	ProjectID   *int64
	SprintID    *int64
	ClearSprint bool
	Deadline    *time.Time
}

// SweepResult reports the outcome of re-evaluating one sprint. Err is set
// when the transition was skipped (rule conflict) or its commit failed.
type SweepResult struct {
	SprintID int64
	OldState models.SprintState
	NewState models.SprintState
	Err      error
}
