package taskentry

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

// TaskEntry is a unit of work logged against a job for a date.
type TaskEntry struct {
	ID        int64               `json:"id"`
	AppUserID *string             `json:"app_user_id"`
	WeekOf    *time.Time          `json:"week_of"`
	Date      *time.Time          `json:"date"`
	DayName   *string             `json:"day_name"`
	JobID     *int64              `json:"job_id"`
	Job       *job.Job            `json:"job,omitempty"`
	TaskName  *string             `json:"task_name"`
	StartTime *timeutil.TimeOfDay `json:"start_time"`
	EndTime   *timeutil.TimeOfDay `json:"end_time"`
	Duration  *float64            `json:"duration"`
	Comment   *string             `json:"comment"`
	Status    *string             `json:"status"`
}

// Hours returns the logged duration or 0.
func (e *TaskEntry) Hours() float64 {
	if e.Duration == nil {
		return 0
	}
	return *e.Duration
}
