package engine

import (
	"errors"
	"fmt"
)

// Rule violation sentinels. Every rejected change wraps exactly one of these
// so callers can dispatch with errors.Is.
var (
	ErrSpanTooLong            = errors.New("sprint span exceeds the maximum length")
	ErrOverlap                = errors.New("sprint dates overlap another sprint of the project")
	ErrMultipleActive         = errors.New("project already has an active sprint")
	ErrPastState              = errors.New("a past sprint cannot be planned or active")
	ErrProjectLocked          = errors.New("sprint project can no longer be changed")
	ErrSprintProjectUndefined = errors.New("sprint has no project assigned")
	ErrDeadlineOutOfBounds    = errors.New("task deadline falls outside the sprint window")
	ErrProjectMismatch        = errors.New("task project does not match sprint project")
	ErrSprintHasTasks         = errors.New("sprint still has tasks assigned")
	ErrInvalidChange          = errors.New("invalid change")
)

// RuleError identifies which check rejected a change and the records
// involved. SprintID and TaskID are zero when not applicable.
type RuleError struct {
	Check    string
	SprintID int64
	TaskID   int64
	Err      error
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.SprintID > 0 && e.TaskID > 0:
		return fmt.Sprintf("%s: sprint %d, task %d: %v", e.Check, e.SprintID, e.TaskID, e.Err)
	case e.SprintID > 0:
		return fmt.Sprintf("%s: sprint %d: %v", e.Check, e.SprintID, e.Err)
	case e.TaskID > 0:
		return fmt.Sprintf("%s: task %d: %v", e.Check, e.TaskID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Check, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }

func ruleErr(check string, sprintID, taskID int64, err error) error {
	if err == nil {
		return nil
	}
	return &RuleError{Check: check, SprintID: sprintID, TaskID: taskID, Err: err}
}
