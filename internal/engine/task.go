package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// ApplyTask validates a task create or update and commits it. Sprint
// assignment snaps the deadline to the sprint end date unless the change
// carries an explicit deadline; moving between sprints always discards a
// pinned deadline, since same-project sprints cannot overlap and no value
// from the old window is known to fit the new one.
func (e *Engine) ApplyTask(ctx context.Context, change TaskChange) (models.Task, error) {
	var cur models.Task
	var unlock func()
	isNew := change.ID == 0
	if isNew {
		if change.Name == nil || strings.TrimSpace(*change.Name) == "" {
			return models.Task{}, ruleErr("task-change", 0, 0, fmt.Errorf("%w: name is required", ErrInvalidChange))
		}
		if change.ProjectID == nil {
			return models.Task{}, ruleErr("task-change", 0, 0, fmt.Errorf("%w: project is required", ErrInvalidChange))
		}
		unlock = e.lockProjects(*change.ProjectID)
	} else {
		var err error
		cur, unlock, err = e.lockTask(ctx, change.ID, change.ProjectID)
		if err != nil {
			return models.Task{}, err
		}
	}
	defer unlock()

	next := cur
	if change.Name != nil {
		name := strings.TrimSpace(*change.Name)
		if name == "" {
			return models.Task{}, ruleErr("task-change", 0, change.ID, fmt.Errorf("%w: name is required", ErrInvalidChange))
		}
		next.Name = name
	}

	projectChanged := false
	if change.ProjectID != nil && (isNew || *change.ProjectID != cur.ProjectID) {
		next.ProjectID = *change.ProjectID
		projectChanged = !isNew
	}

	// Sprint reference. ClearSprint wins over SprintID.
	refChanged := false
	switch {
	case change.ClearSprint:
		refChanged = cur.SprintID != nil
		next.SprintID = nil
	case change.SprintID != nil:
		refChanged = cur.SprintID == nil || *cur.SprintID != *change.SprintID
		id := *change.SprintID
		next.SprintID = &id
	}

	// Changing the project while a sprint stays assigned is rejected; the
	// sprint has to be cleared first (or in the same change).
	if projectChanged && cur.SprintID != nil && !change.ClearSprint {
		return models.Task{}, ruleErr("project-change", *cur.SprintID, cur.ID, ErrProjectMismatch)
	}

	var sprint *models.Sprint
	if next.SprintID != nil {
		s, err := e.store.SprintByID(ctx, *next.SprintID)
		if err != nil {
			return models.Task{}, err
		}
		if s.ProjectID == nil {
			return models.Task{}, ruleErr("sprint-assign", s.ID, change.ID, ErrSprintProjectUndefined)
		}
		if *s.ProjectID != next.ProjectID {
			return models.Task{}, ruleErr("sprint-assign", s.ID, change.ID, ErrProjectMismatch)
		}
		sprint = &s
	}

	// Deadline sync. Detaching keeps the deadline and its pin flag.
	if refChanged && sprint != nil {
		if change.Deadline != nil {
			d := util.Date(*change.Deadline)
			next.Deadline = &d
			next.DeadlineManual = !util.SameDate(d, sprint.EndDate)
		} else {
			next.Deadline = util.Ptr(sprint.EndDate)
			next.DeadlineManual = false
		}
	} else if change.Deadline != nil {
		d := util.Date(*change.Deadline)
		next.Deadline = &d
		if sprint != nil {
			// Editing back to the sprint end date un-pins the task.
			next.DeadlineManual = !util.SameDate(d, sprint.EndDate)
		}
	}

	if sprint != nil {
		if err := checkDeadlineWithin(*sprint, next); err != nil {
			return models.Task{}, err
		}
	}

	batch := models.Batch{Tasks: []models.Task{next}}
	if err := e.store.Commit(ctx, &batch); err != nil {
		return models.Task{}, err
	}
	return batch.Tasks[0], nil
}

// DeleteTask removes a task. Tasks are deleted independently of their
// sprint.
func (e *Engine) DeleteTask(ctx context.Context, id int64) error {
	_, unlock, err := e.lockTask(ctx, id, nil)
	if err != nil {
		return err
	}
	defer unlock()
	return e.store.Commit(ctx, &models.Batch{DeleteTasks: []int64{id}})
}
