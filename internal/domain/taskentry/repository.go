package taskentry

import (
	"context"
	"time"
)

type TaskEntryRepository interface {
	Create(ctx context.Context, entry TaskEntry) (TaskEntry, error)
	GetByID(ctx context.Context, id int64) (TaskEntry, error)
	Update(ctx context.Context, entry TaskEntry) error
	Delete(ctx context.Context, id int64) error
	ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]TaskEntry, error)
	// GetLatestByUser returns nil when the user has no task entries.
	GetLatestByUser(ctx context.Context, userID string) (*TaskEntry, error)
	// ListByUserInRange returns entries with from <= date < to, ordered by date.
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]TaskEntry, error)
}
