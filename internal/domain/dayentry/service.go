package dayentry

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
)

type DayEntryService interface {
	// ClockInOut inserts a new entry when the payload id is zero and overwrites the stored entry otherwise.
	ClockInOut(ctx context.Context, caller auth.Caller, req ClockInOutRequest) (DayEntry, error)
	Delete(ctx context.Context, id int64) error
	DeleteByDate(ctx context.Context, caller auth.Caller, req DeleteByDateRequest) (int64, error)
}
