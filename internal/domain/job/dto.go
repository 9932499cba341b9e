package job

import (
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 100
)

type JobInput struct {
	JobNumber string `json:"job_number"`
	JobName   string `json:"job_name"`
}

type CreateJobRequest struct {
	JobModel *JobInput `json:"job_model"`
}

func (r *CreateJobRequest) Validate() error {
	if r.JobModel == nil || validator.IsEmpty(r.JobModel.JobNumber) {
		return ErrJobFieldsRequired
	}
	r.JobModel.JobNumber = strings.TrimSpace(r.JobModel.JobNumber)
	r.JobModel.JobName = strings.TrimSpace(r.JobModel.JobName)
	return nil
}

type UpdateJobRequest struct {
	ID        int64  `json:"id"`
	JobNumber string `json:"job_number"`
	JobName   string `json:"job_name"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobNumber) {
		errs.Add("job_number", "job_number is required")
	}
	if len(r.JobNumber) > 100 {
		errs.Add("job_number", "job_number must not exceed 100 characters")
	}
	if len(r.JobName) > 255 {
		errs.Add("job_name", "job_name must not exceed 255 characters")
	}

	return errs.Err()
}

type JobFilter struct {
	SearchTerm string
	PageNumber int
	PageSize   int
}

// Normalize applies the default page and page size.
func (f *JobFilter) Normalize() {
	f.SearchTerm = strings.TrimSpace(f.SearchTerm)
	if f.PageNumber < 1 {
		f.PageNumber = DefaultPageNumber
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
}

func (f JobFilter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}

type ListJobResponse struct {
	TotalJobs  int64 `json:"total_jobs"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	Jobs       []Job `json:"jobs"`
}
