package models

import "time"

// SprintState enumerates the lifecycle states of a sprint.
type SprintState string

const (
	StatePlanned SprintState = "planned"
	StateActive  SprintState = "active"
	StateDone    SprintState = "done"
)

// Valid reports whether s is one of the known states.
func (s SprintState) Valid() bool {
	switch s {
	case StatePlanned, StateActive, StateDone:
		return true
	}
	return false
}

// StateMode selects between date-derived and user-forced sprint state.
type StateMode string

const (
	ModeAuto   StateMode = "auto"
	ModeManual StateMode = "manual"
)

// Valid reports whether m is one of the known modes.
func (m StateMode) Valid() bool {
	return m == ModeAuto || m == ModeManual
}

// Project is the owning container for sprints and tasks.
type Project struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// Sprint is a dated iteration within a single project.
//
// EndDateIsDefault tracks intent, not value: it stays true while the end date
// was computed as StartDate + the default length and never overridden, so
// later start-date edits keep shifting the end date along. Setting the end
// date to anything else pins it; setting it back to the default value
// un-pins it.
type Sprint struct {
	ID               int64
	Name             string
	ProjectID        *int64 // nil until the sprint is attached to a project
	StartDate        time.Time
	EndDate          time.Time
	EndDateIsDefault bool
	StateMode        StateMode
	ManualState      SprintState // authoritative only while StateMode is manual
	State            SprintState // stored derived state
	CreatedAt        time.Time
}

// Task is a single work item, optionally grouped under a sprint.
//
// DeadlineManual mirrors EndDateIsDefault in reverse: false means the
// deadline follows the sprint's end date, true means the user pinned it.
type Task struct {
	ID             int64
	Name           string
	ProjectID      int64
	SprintID       *int64 // nil means backlog
	Deadline       *time.Time
	DeadlineManual bool
	CreatedAt      time.Time
}

// InSprint reports whether the task is assigned to a sprint.
func (t Task) InSprint() bool {
	return t.SprintID != nil
}
