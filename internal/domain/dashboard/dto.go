package dashboard

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type IndexRequest struct {
	WeekSelect *string `json:"week_select"`
	UserID     string  `json:"user_id"`
}

func (r *IndexRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidOptionalDate(r.WeekSelect) {
		errs.Add("WeekSelect", "WeekSelect must be in YYYY-MM-DD format")
	}

	return errs.Err()
}

// DayBreakdown summarizes one weekday of the selected week.
type DayBreakdown struct {
	Date       time.Time `json:"date"`
	DayName    string    `json:"day_name"`
	DayHours   float64   `json:"day_hours"`
	LunchHours float64   `json:"lunch_hours"`
	WorkHours  float64   `json:"work_hours"`
	TaskHours  float64   `json:"task_hours"`
	LeaveHours float64   `json:"leave_hours"`
}

// DashboardResponse is the weekly read model for one user.
type DashboardResponse struct {
	WeekOf        time.Time `json:"week_of"`
	IsPrevWeek    bool      `json:"is_prev_week"`
	IsCurrentWeek bool      `json:"is_current_week"`
	IsFutureWeek  bool      `json:"is_future_week"`

	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`

	DayEntries    []dayentry.DayEntry     `json:"day_entries"`
	TaskEntries   []taskentry.TaskEntry   `json:"task_entries"`
	LeaveEntries  []leaveentry.LeaveEntry `json:"leave_entries"`
	LastTaskEntry *taskentry.TaskEntry    `json:"last_task_entry"`

	Jobs  []job.Job           `json:"jobs"`
	Tasks []taskitem.TaskItem `json:"tasks"`

	// Admin only
	Groups []string            `json:"groups,omitempty"`
	Users  []user.UserResponse `json:"users,omitempty"`

	DayEntryTotalHours   float64 `json:"day_entry_total_hours"`
	TaskEntryTotalHours  float64 `json:"task_entry_total_hours"`
	LeaveEntryTotalHours float64 `json:"leave_entry_total_hours"`
	TotalHours           float64 `json:"total_hours"`

	Days                   []DayBreakdown `json:"days"`
	WeekTotalExcludingUPTO float64        `json:"week_total_excluding_upto"`
}
