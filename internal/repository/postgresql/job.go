package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `id, job_number, job_name, job_number_and_job_name`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(&j.ID, &j.JobNumber, &j.JobName, &j.JobNumberAndJobName)
	return j, err
}

func collectJobs(rows pgx.Rows) ([]job.Job, error) {
	defer rows.Close()

	jobs := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return jobs, nil
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (job_number, job_name, job_number_and_job_name)
		VALUES ($1, $2, $3)
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query, newJob.JobNumber, newJob.JobName, newJob.JobNumberAndJobName))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id int64) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	j, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job by id %d: %w", id, err)
	}
	return j, nil
}

// ExistsByNumber implements job.JobRepository.
func (r *jobRepositoryImpl) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE job_number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check job number: %w", err)
	}
	return exists, nil
}

// Update implements job.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE jobs
		SET job_number = $2, job_name = $3, job_number_and_job_name = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, j.ID, j.JobNumber, j.JobName, j.JobNumberAndJobName)
	if err != nil {
		return fmt.Errorf("failed to update job %d: %w", j.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ""
	args := make([]interface{}, 0, 3)
	if filter.SearchTerm != "" {
		// strpos matches the term literally, so % and _ are not wildcards.
		args = append(args, strings.ToLower(filter.SearchTerm))
		where = ` WHERE strpos(lower(job_number), $1) > 0 OR strpos(lower(job_name), $1) > 0`
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	args = append(args, filter.PageSize, filter.Offset())
	query := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY job_number, id LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ListAll implements job.JobRepository.
func (r *jobRepositoryImpl) ListAll(ctx context.Context) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY job_number, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return collectJobs(rows)
}

// HasTaskEntries implements job.JobRepository.
func (r *jobRepositoryImpl) HasTaskEntries(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM task_entries WHERE job_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check task entries for job %d: %w", id, err)
	}
	return exists, nil
}

// ListDetails implements job.JobRepository.
func (r *jobRepositoryImpl) ListDetails(ctx context.Context, jobNumber string) ([]job.Detail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.first_name, u.last_name, j.job_number, j.job_name, te.date, COALESCE(te.task_name, ''), te.duration
		FROM task_entries te
		JOIN jobs j ON j.id = te.job_id
		JOIN users u ON u.id = te.app_user_id
		WHERE j.job_number = $1
		ORDER BY u.last_name, u.first_name, u.id, te.date, te.id
	`

	rows, err := q.Query(ctx, query, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list job details: %w", err)
	}
	defer rows.Close()

	details := make([]job.Detail, 0)
	for rows.Next() {
		var d job.Detail
		if err := rows.Scan(&d.AppUserID, &d.FirstName, &d.LastName, &d.JobNumber, &d.JobName, &d.Date, &d.TaskName, &d.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan job detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return details, nil
}

// CreateStaged implements job.JobRepository.
func (r *jobRepositoryImpl) CreateStaged(ctx context.Context, staged job.StagedJob) (job.StagedJob, error) {
	q := GetQuerier(ctx, r.db)

	var table string
	switch staged.Source {
	case job.SourceImported, job.SourceCreated:
		table = string(staged.Source)
	default:
		return job.StagedJob{}, fmt.Errorf("unknown job source %q", staged.Source)
	}

	query := `INSERT INTO ` + table + ` (job_number, job_name, job_number_and_job_name) VALUES ($1, $2, $3) RETURNING id`
	if err := q.QueryRow(ctx, query, staged.JobNumber, staged.JobName, staged.JobNumberAndJobName).Scan(&staged.ID); err != nil {
		return job.StagedJob{}, fmt.Errorf("failed to stage job in %s: %w", table, err)
	}
	return staged, nil
}

// ListUnsynced implements job.JobRepository.
func (r *jobRepositoryImpl) ListUnsynced(ctx context.Context) ([]job.StagedJob, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.source, s.job_number, s.job_name, s.job_number_and_job_name
		FROM (
			SELECT id, 'imported_jobs' AS source, job_number, job_name, job_number_and_job_name FROM imported_jobs
			UNION ALL
			SELECT id, 'created_jobs' AS source, job_number, job_name, job_number_and_job_name FROM created_jobs
		) s
		WHERE NOT EXISTS (SELECT 1 FROM jobs j WHERE j.job_number = s.job_number)
		ORDER BY s.source DESC, s.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced jobs: %w", err)
	}
	defer rows.Close()

	staged := make([]job.StagedJob, 0)
	for rows.Next() {
		var s job.StagedJob
		var source string
		if err := rows.Scan(&s.ID, &source, &s.JobNumber, &s.JobName, &s.JobNumberAndJobName); err != nil {
			return nil, fmt.Errorf("failed to scan staged job: %w", err)
		}
		s.Source = job.Source(source)
		staged = append(staged, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return staged, nil
}
