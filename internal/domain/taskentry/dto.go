package taskentry

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type TaskEntryInput struct {
	ID        int64               `json:"id"`
	AppUserID *string             `json:"app_user_id"`
	WeekOf    *string             `json:"week_of"`
	Date      *string             `json:"date"`
	DayName   *string             `json:"day_name"`
	JobID     *int64              `json:"job_id"`
	TaskName  *string             `json:"task_name"`
	StartTime *timeutil.TimeOfDay `json:"start_time"`
	EndTime   *timeutil.TimeOfDay `json:"end_time"`
	Duration  *float64            `json:"duration"`
	Comment   *string             `json:"comment"`
	Status    *string             `json:"status"`
}

type AddTaskEntryRequest struct {
	TaskEntry *TaskEntryInput `json:"task_entry"`
}

func (r *AddTaskEntryRequest) Validate() error {
	if r.TaskEntry == nil {
		return ErrTaskEntryRequired
	}

	var errs validator.ValidationErrors

	if !validator.IsValidOptionalDate(r.TaskEntry.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if !validator.IsValidOptionalDate(r.TaskEntry.WeekOf) {
		errs.Add("week_of", "week_of must be in YYYY-MM-DD format")
	}
	if r.TaskEntry.Duration != nil && *r.TaskEntry.Duration < 0 {
		errs.Add("duration", "duration must not be negative")
	}
	if r.TaskEntry.ID < 0 {
		errs.Add("id", "id must not be negative")
	}

	return errs.Err()
}
