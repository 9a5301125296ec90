package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/sprintflow/internal/models"
	"github.com/akyairhashvil/sprintflow/internal/util"
)

const sprintColumns = "id, name, project_id, start_date, end_date, end_date_is_default, state_mode, manual_state, state, created_at"

type sprintScanner interface {
	Scan(dest ...any) error
}

func scanSprint(row sprintScanner) (models.Sprint, error) {
	var s models.Sprint
	var projectID sql.NullInt64
	var startDate, endDate string
	var isDefault int
	err := row.Scan(&s.ID, &s.Name, &projectID, &startDate, &endDate,
		&isDefault, &s.StateMode, &s.ManualState, &s.State, &s.CreatedAt)
	if err != nil {
		return s, err
	}
	s.ProjectID = int64Ptr(projectID)
	s.EndDateIsDefault = util.IntToBool(isDefault)
	if s.StartDate, err = util.ParseDate(startDate); err != nil {
		return s, err
	}
	if s.EndDate, err = util.ParseDate(endDate); err != nil {
		return s, err
	}
	return s, nil
}

// SprintByID fetches a single sprint.
func (d *Database) SprintByID(ctx context.Context, id int64) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, "SELECT "+sprintColumns+" FROM sprints WHERE id = ?", id)
	s, err := scanSprint(row)
	if err != nil {
		return s, wrapSprintErr("get", id, notFound(err))
	}
	return s, nil
}

// SprintsByProject lists all sprints of a project, most recent end date
// first. Sprints not yet attached to any project are listed for projectID 0.
func (d *Database) SprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query := "SELECT " + sprintColumns + " FROM sprints WHERE project_id = ? ORDER BY end_date DESC, id DESC"
	args := []any{projectID}
	if projectID == 0 {
		query = "SELECT " + sprintColumns + " FROM sprints WHERE project_id IS NULL ORDER BY end_date DESC, id DESC"
		args = nil
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSprintErr("list", 0, err)
	}
	defer rows.Close()
	return collectSprints(rows)
}

// AllSprints lists every sprint in the store. Used by the periodic sweep.
func (d *Database) AllSprints(ctx context.Context) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT "+sprintColumns+" FROM sprints ORDER BY id ASC")
	if err != nil {
		return nil, wrapSprintErr("list all", 0, err)
	}
	defer rows.Close()
	return collectSprints(rows)
}

func collectSprints(rows *sql.Rows) ([]models.Sprint, error) {
	var sprints []models.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, wrapSprintErr("scan", 0, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSprintErr("scan", 0, err)
	}
	return sprints, nil
}

func txUpsertSprint(ctx context.Context, tx *sql.Tx, s *models.Sprint) error {
	if s.ID == 0 {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO sprints (name, project_id, start_date, end_date, end_date_is_default, state_mode, manual_state, state)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			s.Name, nullableInt64(s.ProjectID),
			util.FormatDate(s.StartDate), util.FormatDate(s.EndDate),
			util.BoolToInt(s.EndDateIsDefault), s.StateMode, s.ManualState, s.State)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		s.ID = id
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE sprints
		SET name = ?, project_id = ?, start_date = ?, end_date = ?,
		    end_date_is_default = ?, state_mode = ?, manual_state = ?, state = ?
		WHERE id = ?`,
		s.Name, nullableInt64(s.ProjectID),
		util.FormatDate(s.StartDate), util.FormatDate(s.EndDate),
		util.BoolToInt(s.EndDateIsDefault), s.StateMode, s.ManualState, s.State, s.ID)
	return err
}
