package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/sprintflow/internal/models"
)

// EnsureProject returns the id of the named project, creating it if needed.
func (d *Database) EnsureProject(ctx context.Context, name string) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var id int64
	err := d.DB.QueryRowContext(ctx, "SELECT id FROM projects WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, wrapProjectErr("ensure", 0, err)
	}

	res, err := d.DB.ExecContext(ctx, "INSERT INTO projects (name) VALUES (?)", name)
	if err != nil {
		return 0, wrapProjectErr("ensure", 0, err)
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, wrapProjectErr("ensure", 0, err)
	}
	return id, nil
}

// GetProjects lists all projects ordered by name.
func (d *Database) GetProjects(ctx context.Context) ([]models.Project, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, "SELECT id, name, created_at FROM projects ORDER BY name ASC")
	if err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, wrapProjectErr("list", 0, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	return projects, nil
}

// ProjectByID fetches a single project.
func (d *Database) ProjectByID(ctx context.Context, id int64) (models.Project, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var p models.Project
	err := d.DB.QueryRowContext(ctx, "SELECT id, name, created_at FROM projects WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		return p, wrapProjectErr("get", id, notFound(err))
	}
	return p, nil
}
