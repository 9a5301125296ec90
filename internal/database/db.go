// Package database is the sqlite persistence layer behind the rule engine.
// It only stores and loads records; every business rule lives in the engine
// package, which gates all writes before they reach Commit.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the sqlite connection.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			project_id INTEGER,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			end_date_is_default INTEGER NOT NULL DEFAULT 1,
			state_mode TEXT NOT NULL DEFAULT 'auto',
			manual_state TEXT NOT NULL DEFAULT 'planned',
			state TEXT NOT NULL DEFAULT 'planned',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			project_id INTEGER NOT NULL,
			sprint_id INTEGER,
			deadline TEXT,
			deadline_manual INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES projects(id),
			FOREIGN KEY(sprint_id) REFERENCES sprints(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sprints_project ON sprints(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_sprint ON tasks(sprint_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by older
// builds. Duplicate-column errors are expected and ignored.
func (d *Database) migrate(ctx context.Context) error {
	stmts := []string{
		"ALTER TABLE sprints ADD COLUMN end_date_is_default INTEGER NOT NULL DEFAULT 1",
		"ALTER TABLE sprints ADD COLUMN state_mode TEXT NOT NULL DEFAULT 'auto'",
		"ALTER TABLE sprints ADD COLUMN manual_state TEXT NOT NULL DEFAULT 'planned'",
		"ALTER TABLE tasks ADD COLUMN deadline_manual INTEGER NOT NULL DEFAULT 0",
	}
	for _, stmt := range stmts {
		_, _ = d.DB.ExecContext(ctx, stmt)
	}
	return nil
}
