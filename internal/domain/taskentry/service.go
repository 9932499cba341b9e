package taskentry

import (
	"context"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
)

type TaskEntryService interface {
	Save(ctx context.Context, caller auth.Caller, req AddTaskEntryRequest) (TaskEntry, error)
	Delete(ctx context.Context, id int64) error
}
