package leaveentry

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type LeaveEntryInput struct {
	ID            int64    `json:"id"`
	AppUserID     *string  `json:"app_user_id"`
	WeekOf        *string  `json:"week_of"`
	Date          *string  `json:"date"`
	DayName       *string  `json:"day_name"`
	LeaveType     *string  `json:"leave_type"`
	LeaveDuration *float64 `json:"leave_duration"`
	Status        *string  `json:"status"`
}

type AddLeaveRequest struct {
	LeaveEntry *LeaveEntryInput `json:"leave_entry"`
}

func (r *AddLeaveRequest) Validate() error {
	if r.LeaveEntry == nil {
		return ErrLeaveEntryRequired
	}

	var errs validator.ValidationErrors

	if !validator.IsValidOptionalDate(r.LeaveEntry.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if !validator.IsValidOptionalDate(r.LeaveEntry.WeekOf) {
		errs.Add("week_of", "week_of must be in YYYY-MM-DD format")
	}
	if r.LeaveEntry.LeaveDuration != nil && *r.LeaveEntry.LeaveDuration < 0 {
		errs.Add("leave_duration", "leave_duration must not be negative")
	}
	if r.LeaveEntry.ID < 0 {
		errs.Add("id", "id must not be negative")
	}

	return errs.Err()
}
