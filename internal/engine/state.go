package engine

import (
	"time"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// ComputeState derives a sprint's state from today's date and its window.
// Pure: never touches the dates it is given.
func ComputeState(today, start, end time.Time) models.SprintState {
	switch {
	case util.DateBefore(today, start):
		return models.StatePlanned
	case util.DateAfter(today, end):
		return models.StateDone
	default:
		return models.StateActive
	}
}
