package leaveentry

import (
	"context"
	"time"
)

type LeaveEntryRepository interface {
	Create(ctx context.Context, entry LeaveEntry) (LeaveEntry, error)
	GetByID(ctx context.Context, id int64) (LeaveEntry, error)
	Update(ctx context.Context, entry LeaveEntry) error
	Delete(ctx context.Context, id int64) error
	ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]LeaveEntry, error)
	// ListByUserInRange returns entries with from <= date < to, ordered by date.
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]LeaveEntry, error)
}
