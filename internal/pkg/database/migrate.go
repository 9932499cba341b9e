package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

// Scheme is one forward-only schema step, applied once and recorded in schema_migrations.
type Scheme struct {
	Index       int
	Description string
	Query       string
}

var schemes = []Scheme{
	{
		Index:       1,
		Description: "Create table: users",
		Query: `
		CREATE TABLE IF NOT EXISTS users (
			id              text PRIMARY KEY,
			email           text NOT NULL UNIQUE,
			password_hash   text,
			first_name      text NOT NULL DEFAULT '',
			last_name       text NOT NULL DEFAULT '',
			employee_number integer,
			group_name      text,
			role            text NOT NULL DEFAULT 'User',
			created_at      timestamptz NOT NULL DEFAULT now(),
			updated_at      timestamptz NOT NULL DEFAULT now()
		);`,
	},
	{
		Index:       2,
		Description: "Create table: jobs",
		Query: `
		CREATE TABLE IF NOT EXISTS jobs (
			id                      bigserial PRIMARY KEY,
			job_number              text NOT NULL,
			job_name                text NOT NULL DEFAULT '',
			job_number_and_job_name text NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_jobs_job_number ON jobs (job_number);`,
	},
	{
		Index:       3,
		Description: "Create tables: imported_jobs, created_jobs",
		Query: `
		CREATE TABLE IF NOT EXISTS imported_jobs (
			id                      bigserial PRIMARY KEY,
			job_number              text NOT NULL,
			job_name                text NOT NULL DEFAULT '',
			job_number_and_job_name text NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS created_jobs (
			id                      bigserial PRIMARY KEY,
			job_number              text NOT NULL,
			job_name                text NOT NULL DEFAULT '',
			job_number_and_job_name text NOT NULL DEFAULT ''
		);`,
	},
	{
		Index:       4,
		Description: "Create table: task_items",
		Query: `
		CREATE TABLE IF NOT EXISTS task_items (
			id               bigserial PRIMARY KEY,
			task_description text NOT NULL
		);`,
	},
	{
		Index:       5,
		Description: "Create table: day_entries",
		Query: `
		CREATE TABLE IF NOT EXISTS day_entries (
			id               bigserial PRIMARY KEY,
			app_user_id      text REFERENCES users(id) ON DELETE CASCADE,
			week_of          date,
			date             date,
			day_name         text,
			day_start_time   time,
			day_end_time     time,
			lunch_start_time time,
			lunch_end_time   time,
			day_duration     double precision,
			lunch_duration   double precision,
			work_duration    double precision,
			comment          text,
			status           text
		);
		CREATE INDEX IF NOT EXISTS idx_day_entries_user_week ON day_entries (app_user_id, week_of);`,
	},
	{
		Index:       6,
		Description: "Create table: task_entries",
		Query: `
		CREATE TABLE IF NOT EXISTS task_entries (
			id          bigserial PRIMARY KEY,
			app_user_id text REFERENCES users(id) ON DELETE CASCADE,
			week_of     date,
			date        date,
			day_name    text,
			job_id      bigint REFERENCES jobs(id) ON DELETE RESTRICT,
			task_name   text,
			start_time  time,
			end_time    time,
			duration    double precision,
			comment     text,
			status      text
		);
		CREATE INDEX IF NOT EXISTS idx_task_entries_user_week ON task_entries (app_user_id, week_of);
		CREATE INDEX IF NOT EXISTS idx_task_entries_job ON task_entries (job_id);`,
	},
	{
		Index:       7,
		Description: "Create table: leave_entries",
		Query: `
		CREATE TABLE IF NOT EXISTS leave_entries (
			id             bigserial PRIMARY KEY,
			app_user_id    text REFERENCES users(id) ON DELETE CASCADE,
			week_of        date,
			date           date,
			day_name       text,
			leave_type     text,
			leave_duration double precision,
			status         text
		);
		CREATE INDEX IF NOT EXISTS idx_leave_entries_user_week ON leave_entries (app_user_id, week_of);`,
	},
}

// Schemes returns the ordered migration list.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// Migrate applies every scheme not yet recorded in schema_migrations, each in its own transaction.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     integer PRIMARY KEY,
			description text NOT NULL,
			applied_at  timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan schema_migrations: %w", err)
		}
		applied[idx] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("rows iteration error: %w", err)
	}

	count := 0
	for _, s := range schemes {
		if applied[s.Index] {
			continue
		}
		err := pgx.BeginFunc(ctx, db.Pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, s.Query); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, description) VALUES ($1, $2)`, s.Index, s.Description)
			return err
		})
		if err != nil {
			return count, fmt.Errorf("migration %d (%s) failed: %w", s.Index, s.Description, err)
		}
		slog.Info("Migration applied", "index", s.Index, "description", s.Description)
		count++
	}
	return count, nil
}
