package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akyairhashvil/sprintflow/internal/config"
	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/testutil"
	"github.com/akyairhashvil/sprintflow/internal/util"
	"github.com/golang/mock/gomock"
)

func TestResweepCommitsStateChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	ctx := context.Background()
	today, _ := util.ParseDate("2024-01-02")

	planned := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).Build()
	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{planned}, nil)
	store.EXPECT().SprintByID(gomock.Any(), int64(1)).Return(planned, nil).Times(2)
	store.EXPECT().SprintsByProject(gomock.Any(), int64(5)).Return([]models.Sprint{planned}, nil)
	store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *models.Batch) error {
			if len(batch.Sprints) != 1 || batch.Sprints[0].ID != 1 {
				t.Fatalf("unexpected batch: %+v", batch)
			}
			if batch.Sprints[0].State != models.StateActive {
				t.Fatalf("expected active, got %q", batch.Sprints[0].State)
			}
			return nil
		})

	results, err := e.Resweep(ctx, today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	r := results[0]
	if r.SprintID != 1 || r.OldState != models.StatePlanned || r.NewState != models.StateActive || r.Err != nil {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestResweepSkipsManualAndDoneSprints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-06-01")
	manual := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).Manual(models.StatePlanned).Build()
	done := testutil.NewSprint("2024-02-01").WithID(2).WithProject(5).WithState(models.StateDone).Build()
	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{manual, done}, nil)

	results, err := e.Resweep(context.Background(), today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestResweepReportsActiveConflictAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-01-02")

	// Sprint 1's window now makes it Active, but sprint 9 was forced Active
	// by hand. Sprint 2 in another project transitions cleanly.
	contested := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).Build()
	forced := testutil.NewSprint("2024-02-01").WithID(9).WithProject(5).Manual(models.StateActive).Build()
	other := testutil.NewSprint("2024-01-01").WithID(2).WithProject(6).Build()

	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{contested, other}, nil)
	store.EXPECT().SprintByID(gomock.Any(), int64(1)).Return(contested, nil).Times(2)
	store.EXPECT().SprintByID(gomock.Any(), int64(2)).Return(other, nil).Times(2)
	store.EXPECT().SprintsByProject(gomock.Any(), int64(5)).Return([]models.Sprint{contested, forced}, nil)
	store.EXPECT().SprintsByProject(gomock.Any(), int64(6)).Return([]models.Sprint{other}, nil)
	store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *models.Batch) error {
			if batch.Sprints[0].ID != 2 {
				t.Fatalf("only sprint 2 should commit, got %d", batch.Sprints[0].ID)
			}
			return nil
		})

	results, err := e.Resweep(context.Background(), today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if !errors.Is(results[0].Err, ErrMultipleActive) {
		t.Fatalf("expected conflict on sprint 1, got %v", results[0].Err)
	}
	if results[1].Err != nil {
		t.Fatalf("sprint 2 should have committed: %v", results[1].Err)
	}
}

func TestResweepCommitFailureIsPerSprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-02-01")
	s1 := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).WithState(models.StateActive).Build()
	s2 := testutil.NewSprint("2024-01-01").WithID(2).WithProject(6).WithState(models.StateActive).Build()
	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{s1, s2}, nil)
	store.EXPECT().SprintByID(gomock.Any(), int64(1)).Return(s1, nil).Times(2)
	store.EXPECT().SprintByID(gomock.Any(), int64(2)).Return(s2, nil).Times(2)
	gomock.InOrder(
		store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full")),
		store.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil),
	)

	results, err := e.Resweep(context.Background(), today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected two results, got %d", len(results))
	}
	if results[0].Err == nil || results[1].Err != nil {
		t.Fatalf("expected first to fail and second to commit: %+v", results)
	}
}

func TestResweepCommitsRowLoadedUnderLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-01-02")

	// The sprint is renamed between the sweep's listing and its per-sprint
	// lock. The commit must carry the renamed row, not the stale listing.
	stale := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).Build()
	fresh := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).WithName("Renamed").Build()

	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{stale}, nil)
	store.EXPECT().SprintByID(gomock.Any(), int64(1)).Return(fresh, nil).Times(2)
	store.EXPECT().SprintsByProject(gomock.Any(), int64(5)).Return([]models.Sprint{fresh}, nil)
	store.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch *models.Batch) error {
			if batch.Sprints[0].Name != "Renamed" {
				t.Fatalf("stale row committed: %+v", batch.Sprints[0])
			}
			if batch.Sprints[0].State != models.StateActive {
				t.Fatalf("expected active, got %q", batch.Sprints[0].State)
			}
			return nil
		})

	results, err := e.Resweep(context.Background(), today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
}

func TestResweepSkipsSprintsChangedSinceListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-01-02")

	// Both sprints look sweepable in the listing, but by the time each lock
	// is held one was already activated and the other was pinned manual.
	staleA := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).Build()
	staleB := testutil.NewSprint("2024-01-01").WithID(2).WithProject(6).Build()
	freshA := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).WithState(models.StateActive).Build()
	freshB := testutil.NewSprint("2024-01-01").WithID(2).WithProject(6).Manual(models.StatePlanned).Build()

	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{staleA, staleB}, nil)
	store.EXPECT().SprintByID(gomock.Any(), int64(1)).Return(freshA, nil).Times(2)
	store.EXPECT().SprintByID(gomock.Any(), int64(2)).Return(freshB, nil).Times(2)

	results, err := e.Resweep(context.Background(), today)
	if err != nil {
		t.Fatalf("Resweep failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestResweepNoChangesIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := NewMockStore(ctrl)
	e := New(store, config.DefaultPolicy())

	today, _ := util.ParseDate("2024-01-08")
	active := testutil.NewSprint("2024-01-01").WithID(1).WithProject(5).WithState(models.StateActive).Build()
	store.EXPECT().AllSprints(gomock.Any()).Return([]models.Sprint{active}, nil).Times(2)

	for i := 0; i < 2; i++ {
		results, err := e.Resweep(context.Background(), today)
		if err != nil {
			t.Fatalf("Resweep run %d failed: %v", i+1, err)
		}
		if len(results) != 0 {
			t.Fatalf("run %d: expected no changes, got %+v", i+1, results)
		}
	}
}
