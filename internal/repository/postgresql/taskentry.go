package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskEntryRepositoryImpl struct {
	db *database.DB
}

func NewTaskEntryRepository(db *database.DB) taskentry.TaskEntryRepository {
	return &taskEntryRepositoryImpl{db: db}
}

const taskEntrySelect = `
	SELECT
		te.id, te.app_user_id, te.week_of, te.date, te.day_name, te.job_id, te.task_name,
		te.start_time, te.end_time, te.duration, te.comment, te.status,
		j.job_number, j.job_name, j.job_number_and_job_name
	FROM task_entries te
	LEFT JOIN jobs j ON j.id = te.job_id`

func scanTaskEntry(row pgx.Row) (taskentry.TaskEntry, error) {
	var (
		e                   taskentry.TaskEntry
		jobNumber, jobName  *string
		jobNumberAndJobName *string
	)
	err := row.Scan(
		&e.ID,
		&e.AppUserID,
		&e.WeekOf,
		&e.Date,
		&e.DayName,
		&e.JobID,
		&e.TaskName,
		&e.StartTime,
		&e.EndTime,
		&e.Duration,
		&e.Comment,
		&e.Status,
		&jobNumber,
		&jobName,
		&jobNumberAndJobName,
	)
	if err != nil {
		return e, err
	}
	if e.JobID != nil && jobNumber != nil {
		e.Job = &job.Job{ID: *e.JobID, JobNumber: *jobNumber}
		if jobName != nil {
			e.Job.JobName = *jobName
		}
		if jobNumberAndJobName != nil {
			e.Job.JobNumberAndJobName = *jobNumberAndJobName
		}
	}
	return e, nil
}

func (r *taskEntryRepositoryImpl) queryEntries(ctx context.Context, query string, args ...interface{}) ([]taskentry.TaskEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task entries: %w", err)
	}
	defer rows.Close()

	entries := make([]taskentry.TaskEntry, 0)
	for rows.Next() {
		e, err := scanTaskEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

// Create implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) Create(ctx context.Context, entry taskentry.TaskEntry) (taskentry.TaskEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO task_entries (
			app_user_id, week_of, date, day_name, job_id, task_name,
			start_time, end_time, duration, comment, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.JobID,
		entry.TaskName,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
		entry.Comment,
		entry.Status,
	).Scan(&entry.ID)
	if err != nil {
		return taskentry.TaskEntry{}, fmt.Errorf("failed to create task entry: %w", err)
	}
	return entry, nil
}

// GetByID implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (taskentry.TaskEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanTaskEntry(q.QueryRow(ctx, taskEntrySelect+` WHERE te.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return taskentry.TaskEntry{}, taskentry.ErrTaskEntryNotFound
		}
		return taskentry.TaskEntry{}, fmt.Errorf("failed to get task entry by id %d: %w", id, err)
	}
	return e, nil
}

// Update implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) Update(ctx context.Context, entry taskentry.TaskEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE task_entries SET
			app_user_id = $2, week_of = $3, date = $4, day_name = $5, job_id = $6, task_name = $7,
			start_time = $8, end_time = $9, duration = $10, comment = $11, status = $12
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.AppUserID,
		entry.WeekOf,
		entry.Date,
		entry.DayName,
		entry.JobID,
		entry.TaskName,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
		entry.Comment,
		entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update task entry %d: %w", entry.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return taskentry.ErrTaskEntryNotFound
	}
	return nil
}

// Delete implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM task_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return taskentry.ErrTaskEntryNotFound
	}
	return nil
}

// ListByUserAndWeek implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]taskentry.TaskEntry, error) {
	return r.queryEntries(ctx, taskEntrySelect+`
		WHERE te.app_user_id = $1 AND te.week_of = $2
		ORDER BY te.date, te.id`, userID, weekOf)
}

// GetLatestByUser implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) GetLatestByUser(ctx context.Context, userID string) (*taskentry.TaskEntry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanTaskEntry(q.QueryRow(ctx, taskEntrySelect+`
		WHERE te.app_user_id = $1
		ORDER BY te.date DESC NULLS LAST, te.id DESC
		LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest task entry: %w", err)
	}
	return &e, nil
}

// ListByUserInRange implements taskentry.TaskEntryRepository.
func (r *taskEntryRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]taskentry.TaskEntry, error) {
	return r.queryEntries(ctx, taskEntrySelect+`
		WHERE te.app_user_id = $1 AND te.date >= $2 AND te.date < $3
		ORDER BY te.date, te.id`, userID, from, to)
}
