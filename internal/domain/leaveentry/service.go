package leaveentry

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
)

type LeaveEntryService interface {
	Save(ctx context.Context, caller auth.Caller, req AddLeaveRequest) (LeaveEntry, error)
	Delete(ctx context.Context, id int64) error
}
