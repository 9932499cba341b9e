package dayentry

import (
	"context"
	"time"
)

type DayEntryRepository interface {
	Create(ctx context.Context, entry DayEntry) (DayEntry, error)
	GetByID(ctx context.Context, id int64) (DayEntry, error)
	Update(ctx context.Context, entry DayEntry) error
	Delete(ctx context.Context, id int64) error
	DeleteByDateAndUser(ctx context.Context, date time.Time, userID string) (int64, error)
	ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]DayEntry, error)
}
