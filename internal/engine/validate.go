package engine

import (
	"time"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// The checks below are the pre-commit gate. They only accept or reject;
// propagation (state recompute, deadline sync) happens in the apply paths
// once the whole change has passed.

// checkSpan enforces end after start and the inclusive day-count cap.
func (e *Engine) checkSpan(s models.Sprint) error {
	if !util.DateAfter(s.EndDate, s.StartDate) {
		return ruleErr("span", s.ID, 0, ErrInvalidChange)
	}
	days := util.DaysBetween(s.StartDate, s.EndDate) + 1
	if days > e.policy.MaxSprintDays {
		return ruleErr("span", s.ID, 0, ErrSpanTooLong)
	}
	return nil
}

// checkOverlap rejects the sprint if its window intersects any sibling of
// the same project.
func checkOverlap(siblings []models.Sprint, s models.Sprint) error {
	for _, other := range siblings {
		if other.ID == s.ID {
			continue
		}
		if !util.DateAfter(s.StartDate, other.EndDate) && !util.DateBefore(s.EndDate, other.StartDate) {
			return ruleErr("overlap", other.ID, 0, ErrOverlap)
		}
	}
	return nil
}

// checkSingleActive rejects an Active state while a sibling is Active.
func checkSingleActive(siblings []models.Sprint, s models.Sprint) error {
	if s.State != models.StateActive {
		return nil
	}
	if other := otherActive(siblings, s.ID); other != 0 {
		return ruleErr("single-active", other, 0, ErrMultipleActive)
	}
	return nil
}

func otherActive(siblings []models.Sprint, selfID int64) int64 {
	for _, other := range siblings {
		if other.ID != selfID && other.State == models.StateActive {
			return other.ID
		}
	}
	return 0
}

// checkPastState rejects Planned/Active on a sprint that already ended.
// Auto mode can only derive Done for a past window, so in practice this
// fires on manual values.
func checkPastState(today time.Time, s models.Sprint) error {
	if !util.DateBefore(s.EndDate, today) {
		return nil
	}
	if s.State == models.StatePlanned || s.State == models.StateActive {
		return ruleErr("past-state", s.ID, 0, ErrPastState)
	}
	return nil
}

// checkProjectLock enforces project immutability: once tasks reference the
// sprint, and independently once the sprint advanced past Planned.
func checkProjectLock(cur models.Sprint, taskCount int) error {
	if taskCount > 0 {
		return ruleErr("project-lock", cur.ID, 0, ErrProjectLocked)
	}
	if cur.State == models.StateActive || cur.State == models.StateDone {
		return ruleErr("project-lock", cur.ID, 0, ErrProjectLocked)
	}
	return nil
}

// checkProjectRequired rejects leaving the project unset once the sprint is
// anything but Planned.
func checkProjectRequired(s models.Sprint) error {
	if s.ProjectID == nil && s.State != models.StatePlanned {
		return ruleErr("project-required", s.ID, 0, ErrSprintProjectUndefined)
	}
	return nil
}

// checkPinnedDeadlines verifies every pinned task deadline still fits the
// sprint window. Tasks without a deadline are skipped; the assignment path
// guarantees they do not occur for sprint-bound tasks.
func checkPinnedDeadlines(s models.Sprint, tasks []models.Task) error {
	for _, t := range tasks {
		if !t.DeadlineManual || t.Deadline == nil {
			continue
		}
		if util.DateBefore(*t.Deadline, s.StartDate) || util.DateAfter(*t.Deadline, s.EndDate) {
			return ruleErr("deadline-bounds", s.ID, t.ID, ErrDeadlineOutOfBounds)
		}
	}
	return nil
}

// checkDeadlineWithin verifies a single task deadline against its sprint.
func checkDeadlineWithin(s models.Sprint, t models.Task) error {
	if t.Deadline == nil {
		return ruleErr("deadline-bounds", s.ID, t.ID, ErrDeadlineOutOfBounds)
	}
	if util.DateBefore(*t.Deadline, s.StartDate) || util.DateAfter(*t.Deadline, s.EndDate) {
		return ruleErr("deadline-bounds", s.ID, t.ID, ErrDeadlineOutOfBounds)
	}
	return nil
}
