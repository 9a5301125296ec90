package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprintflow/internal/config"
	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// ApplySprint validates a sprint create or update and commits it together
// with any deadline propagation it implies. On rejection nothing is
// persisted and the first violated rule is returned.
func (e *Engine) ApplySprint(ctx context.Context, change SprintChange) (models.Sprint, error) {
	var cur models.Sprint
	var unlock func()
	isNew := change.ID == 0
	if isNew {
		if change.Name == nil || strings.TrimSpace(*change.Name) == "" {
			return models.Sprint{}, ruleErr("sprint-change", 0, 0, fmt.Errorf("%w: name is required", ErrInvalidChange))
		}
		if change.StartDate == nil {
			return models.Sprint{}, ruleErr("sprint-change", 0, 0, fmt.Errorf("%w: start date is required", ErrInvalidChange))
		}
		cur = models.Sprint{
			StateMode:        models.ModeAuto,
			ManualState:      models.StatePlanned,
			State:            models.StatePlanned,
			EndDateIsDefault: true,
		}
		unlock = e.lockProjects(projectKey(change.ProjectID))
	} else {
		var err error
		cur, unlock, err = e.lockSprint(ctx, change.ID, change.ProjectID)
		if err != nil {
			return models.Sprint{}, err
		}
	}
	defer unlock()

	next := cur
	if change.Name != nil {
		name := strings.TrimSpace(*change.Name)
		if name == "" {
			return models.Sprint{}, ruleErr("sprint-change", change.ID, 0, fmt.Errorf("%w: name is required", ErrInvalidChange))
		}
		next.Name = name
	}

	projectChanged := false
	if change.ProjectID != nil && !sameProject(cur.ProjectID, change.ProjectID) {
		id := *change.ProjectID
		next.ProjectID = &id
		projectChanged = !isNew
	}

	// Dates. A start edit drags the end date along while the end is still
	// the computed default; an explicit end date pins or un-pins depending
	// on whether it equals the default for the resulting start.
	if change.StartDate != nil {
		next.StartDate = util.Date(*change.StartDate)
		if change.EndDate == nil && (cur.EndDateIsDefault || cur.EndDate.IsZero()) {
			next.EndDate = e.defaultEnd(next.StartDate)
			next.EndDateIsDefault = true
		}
	}
	if change.EndDate != nil {
		next.EndDate = util.Date(*change.EndDate)
		next.EndDateIsDefault = util.SameDate(next.EndDate, e.defaultEnd(next.StartDate))
	}

	// State mode. A manual state in the change implies manual mode, same as
	// the override buttons; switching back to auto recomputes immediately.
	if change.StateMode != nil {
		if !change.StateMode.Valid() {
			return models.Sprint{}, ruleErr("sprint-change", change.ID, 0, fmt.Errorf("%w: unknown state mode %q", ErrInvalidChange, *change.StateMode))
		}
		next.StateMode = *change.StateMode
	}
	if change.ManualState != nil {
		if !change.ManualState.Valid() {
			return models.Sprint{}, ruleErr("sprint-change", change.ID, 0, fmt.Errorf("%w: unknown state %q", ErrInvalidChange, *change.ManualState))
		}
		next.ManualState = *change.ManualState
		if change.StateMode == nil {
			next.StateMode = models.ModeManual
		}
	}

	today := e.today()
	if next.StateMode == models.ModeManual {
		next.State = next.ManualState
	} else {
		next.State = ComputeState(today, next.StartDate, next.EndDate)
	}

	if err := e.checkSpan(next); err != nil {
		return models.Sprint{}, err
	}
	if next.ProjectID != nil {
		siblings, err := e.store.SprintsByProject(ctx, *next.ProjectID)
		if err != nil {
			return models.Sprint{}, err
		}
		if err := checkOverlap(siblings, next); err != nil {
			return models.Sprint{}, err
		}
		if err := checkSingleActive(siblings, next); err != nil {
			return models.Sprint{}, err
		}
	}
	if err := checkPastState(today, next); err != nil {
		return models.Sprint{}, err
	}

	var tasks []models.Task
	if !isNew {
		var err error
		tasks, err = e.store.TasksBySprint(ctx, cur.ID)
		if err != nil {
			return models.Sprint{}, err
		}
	}
	if projectChanged {
		if err := checkProjectLock(cur, len(tasks)); err != nil {
			return models.Sprint{}, err
		}
	}
	if err := checkProjectRequired(next); err != nil {
		return models.Sprint{}, err
	}

	endChanged := !isNew && !util.SameDate(cur.EndDate, next.EndDate)
	datesChanged := endChanged || !util.SameDate(cur.StartDate, next.StartDate)
	if datesChanged {
		if err := checkPinnedDeadlines(next, tasks); err != nil {
			return models.Sprint{}, err
		}
	}

	batch := models.Batch{Sprints: []models.Sprint{next}}
	if endChanged {
		// Auto-managed deadlines follow the new end date; pinned ones were
		// just validated and stay untouched.
		for _, t := range tasks {
			if t.DeadlineManual {
				continue
			}
			t.Deadline = util.Ptr(next.EndDate)
			batch.Tasks = append(batch.Tasks, t)
		}
	}
	if err := e.store.Commit(ctx, &batch); err != nil {
		return models.Sprint{}, err
	}
	return batch.Sprints[0], nil
}

// DeleteSprint removes a sprint. With tasks still attached the configured
// policy decides: restrict rejects, detach clears their sprint reference in
// the same transaction.
func (e *Engine) DeleteSprint(ctx context.Context, id int64) error {
	_, unlock, err := e.lockSprint(ctx, id, nil)
	if err != nil {
		return err
	}
	defer unlock()

	tasks, err := e.store.TasksBySprint(ctx, id)
	if err != nil {
		return err
	}
	batch := models.Batch{DeleteSprints: []int64{id}}
	if len(tasks) > 0 {
		if e.policy.OnDelete == config.DeleteRestrict {
			return ruleErr("delete", id, 0, ErrSprintHasTasks)
		}
		for _, t := range tasks {
			batch.DetachTasks = append(batch.DetachTasks, t.ID)
		}
	}
	return e.store.Commit(ctx, &batch)
}

func sameProject(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
