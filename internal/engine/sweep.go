package engine

import (
	"context"
	"time"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// Resweep re-derives the state of every auto-mode sprint as of the given
// date and commits the ones that changed. Manual-mode sprints and sprints
// already Done are left alone. A transition into Active that would collide
// with another Active sprint of the same project is skipped and reported as
// a per-sprint conflict; one sprint's failure never aborts the rest.
func (e *Engine) Resweep(ctx context.Context, today time.Time) ([]SweepResult, error) {
	today = util.Date(today)
	sprints, err := e.store.AllSprints(ctx)
	if err != nil {
		return nil, err
	}

	var results []SweepResult
	for _, s := range sprints {
		if s.StateMode != models.ModeAuto || s.State == models.StateDone {
			continue
		}
		if ComputeState(today, s.StartDate, s.EndDate) == s.State {
			continue
		}
		if res, swept := e.sweepOne(ctx, today, s.ID); swept {
			results = append(results, res)
		}
	}
	return results, nil
}

// sweepOne re-evaluates a single sprint inside its project's exclusive
// section. The row from AllSprints may be stale by the time the lock is
// held, so the sprint is re-loaded and re-checked before anything is
// written; an edit that landed in between is preserved, not overwritten.
func (e *Engine) sweepOne(ctx context.Context, today time.Time, id int64) (SweepResult, bool) {
	s, unlock, err := e.lockSprint(ctx, id, nil)
	if err != nil {
		return SweepResult{SprintID: id, Err: err}, true
	}
	defer unlock()

	if s.StateMode != models.ModeAuto || s.State == models.StateDone {
		return SweepResult{}, false
	}
	newState := ComputeState(today, s.StartDate, s.EndDate)
	if newState == s.State {
		return SweepResult{}, false
	}

	res := SweepResult{SprintID: id, OldState: s.State, NewState: newState}
	if newState == models.StateActive && s.ProjectID != nil {
		siblings, err := e.store.SprintsByProject(ctx, *s.ProjectID)
		if err != nil {
			res.Err = err
			return res, true
		}
		if other := otherActive(siblings, s.ID); other != 0 {
			res.Err = ruleErr("sweep", other, 0, ErrMultipleActive)
			return res, true
		}
	}

	s.State = newState
	if err := e.store.Commit(ctx, &models.Batch{Sprints: []models.Sprint{s}}); err != nil {
		res.Err = err
	}
	return res, true
}
