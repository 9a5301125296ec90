// Package testutil provides fluent builders for test fixtures.
package testutil

import (
	"time"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// SprintBuilder provides a fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

// NewSprint returns a builder seeded with a two-week auto sprint.
func NewSprint(start string) *SprintBuilder {
	s, err := util.ParseDate(start)
	if err != nil {
		panic("testutil: bad start date " + start)
	}
	return &SprintBuilder{
		sprint: models.Sprint{
			Name:             "Test Sprint",
			StartDate:        s,
			EndDate:          util.AddDays(s, 14),
			EndDateIsDefault: true,
			StateMode:        models.ModeAuto,
			ManualState:      models.StatePlanned,
			State:            models.StatePlanned,
			CreatedAt:        time.Now(),
		},
	}
}

func (b *SprintBuilder) WithID(id int64) *SprintBuilder {
	b.sprint.ID = id
	return b
}

func (b *SprintBuilder) WithName(name string) *SprintBuilder {
	b.sprint.Name = name
	return b
}

func (b *SprintBuilder) WithProject(id int64) *SprintBuilder {
	b.sprint.ProjectID = &id
	return b
}

// WithEnd pins the end date explicitly.
func (b *SprintBuilder) WithEnd(end string) *SprintBuilder {
	e, err := util.ParseDate(end)
	if err != nil {
		panic("testutil: bad end date " + end)
	}
	b.sprint.EndDate = e
	b.sprint.EndDateIsDefault = util.SameDate(e, util.AddDays(b.sprint.StartDate, 14))
	return b
}

func (b *SprintBuilder) WithState(state models.SprintState) *SprintBuilder {
	b.sprint.State = state
	return b
}

func (b *SprintBuilder) Manual(state models.SprintState) *SprintBuilder {
	b.sprint.StateMode = models.ModeManual
	b.sprint.ManualState = state
	b.sprint.State = state
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(project int64) *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			Name:      "Test Task",
			ProjectID: project,
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id int64) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) InSprint(sprintID int64) *TaskBuilder {
	b.task.SprintID = &sprintID
	return b
}

// WithDeadline sets an auto-managed deadline.
func (b *TaskBuilder) WithDeadline(date string) *TaskBuilder {
	d, err := util.ParseDate(date)
	if err != nil {
		panic("testutil: bad deadline " + date)
	}
	b.task.Deadline = &d
	return b
}

// Pinned marks the deadline as user-set.
func (b *TaskBuilder) Pinned() *TaskBuilder {
	b.task.DeadlineManual = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
