package leaveentry

import "time"

const (
	LeaveTypePTO      = "PTO"
	LeaveTypeSick     = "Sick"
	LeaveTypeVacation = "Vacation"
	LeaveTypePersonal = "Personal"
	LeaveTypeUPTO     = "UPTO" // unpaid time off, excluded from payable totals
)

type LeaveEntry struct {
	ID            int64      `json:"id"`
	AppUserID     *string    `json:"app_user_id"`
	WeekOf        *time.Time `json:"week_of"`
	Date          *time.Time `json:"date"`
	DayName       *string    `json:"day_name"`
	LeaveType     *string    `json:"leave_type"`
	LeaveDuration *float64   `json:"leave_duration"`
	Status        *string    `json:"status"`
}

func (e *LeaveEntry) Hours() float64 {
	if e.LeaveDuration == nil {
		return 0
	}
	return *e.LeaveDuration
}

func (e *LeaveEntry) Type() string {
	if e.LeaveType == nil {
		return ""
	}
	return *e.LeaveType
}

// IsUnpaid reports UPTO leave.
func (e *LeaveEntry) IsUnpaid() bool {
	return e.Type() == LeaveTypeUPTO
}
