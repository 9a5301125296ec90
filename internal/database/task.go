package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

const taskColumns = "id, name, project_id, sprint_id, deadline, deadline_manual, created_at"

func scanTask(row sprintScanner) (models.Task, error) {
	var t models.Task
	var sprintID sql.NullInt64
	var deadline sql.NullString
	var manual int
	err := row.Scan(&t.ID, &t.Name, &t.ProjectID, &sprintID, &deadline, &manual, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	t.SprintID = int64Ptr(sprintID)
	t.DeadlineManual = util.IntToBool(manual)
	if t.Deadline, err = datePtr(deadline); err != nil {
		return t, err
	}
	return t, nil
}

// TaskByID fetches a single task.
func (d *Database) TaskByID(ctx context.Context, id int64) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	t, err := scanTask(row)
	if err != nil {
		return t, wrapTaskErr("get", id, notFound(err))
	}
	return t, nil
}

// TasksBySprint lists all tasks referencing a sprint.
func (d *Database) TasksBySprint(ctx context.Context, sprintID int64) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE sprint_id = ? ORDER BY id ASC", sprintID)
	if err != nil {
		return nil, wrapTaskErr("list", 0, err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// TasksByProject lists every task of a project, backlog included.
func (d *Database) TasksByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE project_id = ? ORDER BY id ASC", projectID)
	if err != nil {
		return nil, wrapTaskErr("list", 0, err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]models.Task, error) {
	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, wrapTaskErr("scan", 0, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapTaskErr("scan", 0, err)
	}
	return tasks, nil
}

func txUpsertTask(ctx context.Context, tx *sql.Tx, t *models.Task) error {
	if t.ID == 0 {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (name, project_id, sprint_id, deadline, deadline_manual)
			VALUES (?, ?, ?, ?, ?)`,
			t.Name, t.ProjectID, nullableInt64(t.SprintID),
			nullableDate(t.Deadline), util.BoolToInt(t.DeadlineManual))
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		t.ID = id
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, project_id = ?, sprint_id = ?, deadline = ?, deadline_manual = ?
		WHERE id = ?`,
		t.Name, t.ProjectID, nullableInt64(t.SprintID),
		nullableDate(t.Deadline), util.BoolToInt(t.DeadlineManual), t.ID)
	return err
}
