package job

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

type JobServiceImpl struct {
	tx database.Transactor
	job.JobRepository
}

func NewJobService(tx database.Transactor, jobRepository job.JobRepository) job.JobService {
	return &JobServiceImpl{
		tx:            tx,
		JobRepository: jobRepository,
	}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.Job, error) {
	if err := req.Validate(); err != nil {
		return job.Job{}, err
	}

	exists, err := s.JobRepository.ExistsByNumber(ctx, req.JobModel.JobNumber)
	if err != nil {
		return job.Job{}, err
	}
	if exists {
		return job.Job{}, job.ErrJobNumberExists
	}

	newJob := job.New(req.JobModel.JobNumber, req.JobModel.JobName)

	var created job.Job
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.JobRepository.Create(txCtx, newJob)
		if err != nil {
			return err
		}
		_, err = s.JobRepository.CreateStaged(txCtx, job.StagedJob{
			Source:              job.SourceCreated,
			JobNumber:           newJob.JobNumber,
			JobName:             newJob.JobName,
			JobNumberAndJobName: newJob.JobNumberAndJobName,
		})
		return err
	})
	if err != nil {
		return job.Job{}, err
	}

	slog.Info("Job created", "job_id", created.ID, "job_number", created.JobNumber)
	return created, nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, id int64, req job.UpdateJobRequest) error {
	if id != req.ID {
		return job.ErrJobIDMismatch
	}

	existing, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	updated := job.New(strings.TrimSpace(req.JobNumber), strings.TrimSpace(req.JobName))
	updated.ID = existing.ID

	return s.JobRepository.Update(ctx, updated)
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.JobRepository.GetByID(ctx, id); err != nil {
		return err
	}

	referenced, err := s.JobRepository.HasTaskEntries(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return job.ErrJobHasTaskEntries
	}

	return s.JobRepository.Delete(ctx, id)
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, id int64) (job.Job, error) {
	return s.JobRepository.GetByID(ctx, id)
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context, filter job.JobFilter) (job.ListJobResponse, error) {
	filter.Normalize()

	jobs, total, err := s.JobRepository.List(ctx, filter)
	if err != nil {
		return job.ListJobResponse{}, err
	}

	return job.ListJobResponse{
		TotalJobs:  total,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
		Jobs:       jobs,
	}, nil
}

// ListAll implements job.JobService.
func (s *JobServiceImpl) ListAll(ctx context.Context) ([]job.Job, error) {
	return s.JobRepository.ListAll(ctx)
}

// Details implements job.JobService.
func (s *JobServiceImpl) Details(ctx context.Context, jobNumber string) ([]job.Detail, error) {
	return s.JobRepository.ListDetails(ctx, strings.TrimSpace(jobNumber))
}

// Sync implements job.JobService.
func (s *JobServiceImpl) Sync(ctx context.Context) (int, error) {
	var synced int
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		synced, err = s.syncStaged(txCtx)
		return err
	})
	if err != nil {
		return 0, err
	}
	return synced, nil
}

func (s *JobServiceImpl) syncStaged(ctx context.Context) (int, error) {
	staged, err := s.JobRepository.ListUnsynced(ctx)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(staged))
	synced := 0
	for _, st := range staged {
		if seen[st.JobNumber] {
			continue
		}
		seen[st.JobNumber] = true

		newJob := job.New(st.JobNumber, st.JobName)
		if st.JobNumberAndJobName != "" {
			newJob.JobNumberAndJobName = st.JobNumberAndJobName
		}
		if _, err := s.JobRepository.Create(ctx, newJob); err != nil {
			return 0, fmt.Errorf("failed to sync job %s from %s: %w", st.JobNumber, st.Source, err)
		}
		synced++
	}

	if synced > 0 {
		slog.Info("Job catalog synced", "count", synced)
	}
	return synced, nil
}

// Import implements job.JobService.
func (s *JobServiceImpl) Import(ctx context.Context, r io.Reader) (int, error) {
	if r == nil {
		return 0, job.ErrImportFileRequired
	}

	rows, err := parseJobCSV(r)
	if err != nil {
		return 0, err
	}

	imported := 0
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for _, row := range rows {
			if _, err := s.JobRepository.CreateStaged(txCtx, row); err != nil {
				return err
			}
			imported++
		}
		_, err := s.syncStaged(txCtx)
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Jobs imported", "count", imported)
	return imported, nil
}

// parseJobCSV reads "number,name" rows, skipping blank numbers and a leading header row.
func parseJobCSV(r io.Reader) ([]job.StagedJob, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := make([]job.StagedJob, 0)
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", job.ErrImportFileUnreadable, err)
		}

		isFirst := first
		first = false

		if len(record) == 0 {
			continue
		}
		number := strings.TrimSpace(strings.TrimPrefix(record[0], "\ufeff"))
		if number == "" {
			continue
		}
		if isFirst && isHeader(number) {
			continue
		}

		name := ""
		if len(record) > 1 {
			name = strings.TrimSpace(record[1])
		}
		rows = append(rows, job.StagedJob{
			Source:              job.SourceImported,
			JobNumber:           number,
			JobName:             name,
			JobNumberAndJobName: job.DisplayName(number, name),
		})
	}
	return rows, nil
}

func isHeader(cell string) bool {
	return strings.EqualFold(cell, "JobNumber") || strings.EqualFold(cell, "Job Number")
}
