package job

import (
	"fmt"
	"time"
)

type Job struct {
	ID                  int64  `json:"id"`
	JobNumber           string `json:"job_number"`
	JobName             string `json:"job_name"`
	JobNumberAndJobName string `json:"job_number_and_job_name"`
}

// Source names a staging table that feeds the job catalog.
type Source string

const (
	SourceImported Source = "imported_jobs" // seeded from a CSV file
	SourceCreated  Source = "created_jobs"  // created through the dashboard
)

// StagedJob is a job row waiting in a staging table to be synced into the catalog.
type StagedJob struct {
	ID                  int64  `json:"id"`
	Source              Source `json:"source"`
	JobNumber           string `json:"job_number"`
	JobName             string `json:"job_name"`
	JobNumberAndJobName string `json:"job_number_and_job_name"`
}

// DisplayName builds the denormalized "number - name" label.
func DisplayName(number, name string) string {
	return fmt.Sprintf("%s - %s", number, name)
}

// New returns a Job with its display label filled in.
func New(number, name string) Job {
	return Job{
		JobNumber:           number,
		JobName:             name,
		JobNumberAndJobName: DisplayName(number, name),
	}
}

// Detail is one task entry logged against a job, with the owner's name.
type Detail struct {
	AppUserID string     `json:"app_user_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	JobNumber string     `json:"job_number"`
	JobName   string     `json:"job_name"`
	Date      *time.Time `json:"date"`
	TaskName  string     `json:"task_name"`
	Duration  *float64   `json:"duration"`
}
