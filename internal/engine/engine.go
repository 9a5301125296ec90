// Package engine enforces the sprint/task rule set: state derivation,
// constraint validation, and deadline propagation. Every mutation goes
// through ApplySprint/ApplyTask, which validate the whole change against the
// store before committing it atomically. Nothing in this package persists a
// partially checked change.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/sprintflow/internal/config"
	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

// Store is the narrow persistence surface the engine depends on. The sqlite
// layer implements it; tests substitute a mock.
//
//go:generate mockgen -source=engine.go -destination=mock_store_test.go -package=engine
type Store interface {
	SprintByID(ctx context.Context, id int64) (models.Sprint, error)
	SprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error)
	AllSprints(ctx context.Context) ([]models.Sprint, error)
	TaskByID(ctx context.Context, id int64) (models.Task, error)
	TasksBySprint(ctx context.Context, sprintID int64) ([]models.Task, error)
	Commit(ctx context.Context, batch *models.Batch) error
}

// Engine validates and applies sprint/task changes.
type Engine struct {
	store  Store
	policy config.Policy

	// Now is the clock source; tests pin it. Only the civil date matters.
	Now func() time.Time

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New builds an engine over the given store.
func New(store Store, policy config.Policy) *Engine {
	return &Engine{
		store:  store,
		policy: policy,
		Now:    time.Now,
		locks:  make(map[int64]*sync.Mutex),
	}
}

func (e *Engine) today() time.Time {
	return util.Date(e.Now())
}

func (e *Engine) defaultEnd(start time.Time) time.Time {
	return util.AddDays(start, e.policy.DefaultSprintDays)
}

// projectKey maps an optional project id onto a lock key. Sprints not yet
// attached to a project share key 0.
func projectKey(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func (e *Engine) projectLock(key int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[key]
	if !ok {
		l = &sync.Mutex{}
		e.locks[key] = l
	}
	return l
}

// lockSprint loads the sprint, takes the exclusive sections for its project
// and the optional target project, and re-reads the row under the lock so
// every check runs against the current state. If the project moved between
// the read and the lock, the lock is retaken with the new key.
func (e *Engine) lockSprint(ctx context.Context, id int64, target *int64) (models.Sprint, func(), error) {
	cur, err := e.store.SprintByID(ctx, id)
	if err != nil {
		return models.Sprint{}, nil, err
	}
	for {
		keys := []int64{projectKey(cur.ProjectID)}
		if target != nil {
			keys = append(keys, *target)
		}
		unlock := e.lockProjects(keys...)
		fresh, err := e.store.SprintByID(ctx, id)
		if err != nil {
			unlock()
			return models.Sprint{}, nil, err
		}
		if projectKey(fresh.ProjectID) == projectKey(cur.ProjectID) {
			return fresh, unlock, nil
		}
		unlock()
		cur = fresh
	}
}

// lockTask is lockSprint for tasks.
func (e *Engine) lockTask(ctx context.Context, id int64, target *int64) (models.Task, func(), error) {
	cur, err := e.store.TaskByID(ctx, id)
	if err != nil {
		return models.Task{}, nil, err
	}
	for {
		keys := []int64{cur.ProjectID}
		if target != nil {
			keys = append(keys, *target)
		}
		unlock := e.lockProjects(keys...)
		fresh, err := e.store.TaskByID(ctx, id)
		if err != nil {
			unlock()
			return models.Task{}, nil, err
		}
		if fresh.ProjectID == cur.ProjectID {
			return fresh, unlock, nil
		}
		unlock()
		cur = fresh
	}
}

// lockProjects holds the exclusive sections for the given project keys for
// the duration of a check-then-commit sequence. Keys are deduplicated and
// locked in ascending order so concurrent cross-project moves cannot
// deadlock.
func (e *Engine) lockProjects(keys ...int64) func() {
	uniq := make([]int64, 0, len(keys))
	for _, k := range keys {
		dup := false
		for _, u := range uniq {
			if u == k {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, k)
		}
	}
	for i := 0; i < len(uniq); i++ {
		for j := i + 1; j < len(uniq); j++ {
			if uniq[j] < uniq[i] {
				uniq[i], uniq[j] = uniq[j], uniq[i]
			}
		}
	}

	held := make([]*sync.Mutex, 0, len(uniq))
	for _, k := range uniq {
		l := e.projectLock(k)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
