package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/sprintflow/internal/models"
)

// Commit applies a batch atomically. Inserted sprints and tasks get their
// generated ids written back into the batch on success. On any failure the
// transaction rolls back and the batch's id fields are left as they were for
// records that already existed.
func (d *Database) Commit(ctx context.Context, batch *models.Batch) error {
	if batch == nil || batch.Empty() {
		return nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for i := range batch.Sprints {
			if err := txUpsertSprint(ctx, tx, &batch.Sprints[i]); err != nil {
				return wrapSprintErr("commit", batch.Sprints[i].ID, err)
			}
		}
		for i := range batch.Tasks {
			if err := txUpsertTask(ctx, tx, &batch.Tasks[i]); err != nil {
				return wrapTaskErr("commit", batch.Tasks[i].ID, err)
			}
		}
		for _, id := range batch.DetachTasks {
			if _, err := tx.ExecContext(ctx, "UPDATE tasks SET sprint_id = NULL WHERE id = ?", id); err != nil {
				return wrapTaskErr("detach", id, err)
			}
		}
		for _, id := range batch.DeleteTasks {
			if _, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
				return wrapTaskErr("delete", id, err)
			}
		}
		for _, id := range batch.DeleteSprints {
			if _, err := tx.ExecContext(ctx, "DELETE FROM sprints WHERE id = ?", id); err != nil {
				return wrapSprintErr("delete", id, err)
			}
		}
		return nil
	})
}
