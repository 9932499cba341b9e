package dayentry

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

// DayEntry is one user's clock-in/out record for a calendar date.
type DayEntry struct {
	ID             int64               `json:"id"`
	AppUserID      *string             `json:"app_user_id"`
	WeekOf         *time.Time          `json:"week_of"`
	Date           *time.Time          `json:"date"`
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

// IsOpen reports a started shift that has not been clocked out.
func (e *DayEntry) IsOpen() bool {
	return e.DayStartTime != nil && e.DayEndTime == nil
}

// ComputeDurations derives day, lunch and work hours from the recorded times.
// An end time earlier than the start time yields a negative day duration.
func (e *DayEntry) ComputeDurations() {
	if e.DayStartTime == nil || e.DayEndTime == nil {
		return
	}
	day := timeutil.HoursBetween(*e.DayStartTime, *e.DayEndTime)
	lunch := 0.0
	if e.LunchStartTime != nil && e.LunchEndTime != nil {
		lunch = timeutil.HoursBetween(*e.LunchStartTime, *e.LunchEndTime)
		e.LunchDuration = &lunch
	}
	work := day - lunch
	e.DayDuration = &day
	e.WorkDuration = &work
}

// WorkedHours is end-start when both are set, else the stored work duration, else 0.
func (e *DayEntry) WorkedHours() float64 {
	if e.DayStartTime != nil && e.DayEndTime != nil {
		return timeutil.HoursBetween(*e.DayStartTime, *e.DayEndTime)
	}
	if e.WorkDuration != nil {
		return *e.WorkDuration
	}
	return 0
}
