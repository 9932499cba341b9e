package dayentry

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type DayEntryInput struct {
	ID             int64               `json:"id"`
	AppUserID      *string             `json:"app_user_id"`
	WeekOf         *string             `json:"week_of"`
	Date           *string             `json:"date"`
	DayName        *string             `json:"day_name"`
	DayStartTime   *timeutil.TimeOfDay `json:"day_start_time"`
	DayEndTime     *timeutil.TimeOfDay `json:"day_end_time"`
	LunchStartTime *timeutil.TimeOfDay `json:"lunch_start_time"`
	LunchEndTime   *timeutil.TimeOfDay `json:"lunch_end_time"`
	DayDuration    *float64            `json:"day_duration"`
	LunchDuration  *float64            `json:"lunch_duration"`
	WorkDuration   *float64            `json:"work_duration"`
	Comment        *string             `json:"comment"`
	Status         *string             `json:"status"`
}

type ClockInOutRequest struct {
	DayEntry *DayEntryInput `json:"day_entry"`
}

func (r *ClockInOutRequest) Validate() error {
	if r.DayEntry == nil {
		return ErrDayEntryRequired
	}

	var errs validator.ValidationErrors

	if !validator.IsValidOptionalDate(r.DayEntry.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}
	if !validator.IsValidOptionalDate(r.DayEntry.WeekOf) {
		errs.Add("week_of", "week_of must be in YYYY-MM-DD format")
	}
	if r.DayEntry.ID < 0 {
		errs.Add("id", "id must not be negative")
	}

	return errs.Err()
}

type DeleteByDateRequest struct {
	Date   string `json:"date"`
	UserID string `json:"user_id"`
}

func (r *DeleteByDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	}

	return errs.Err()
}
