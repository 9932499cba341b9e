package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
)

type dayEntryRepositoryImpl struct {
	store *Store
}

func NewDayEntryRepository(store *Store) dayentry.DayEntryRepository {
	return &dayEntryRepositoryImpl{store: store}
}

func (r *dayEntryRepositoryImpl) Create(ctx context.Context, entry dayentry.DayEntry) (dayentry.DayEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.ID = r.store.nextID("day_entries")
	r.store.dayEntries[entry.ID] = entry
	return entry, nil
}

func (r *dayEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (dayentry.DayEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.dayEntries[id]
	if !ok {
		return dayentry.DayEntry{}, dayentry.ErrDayEntryNotFound
	}
	return e, nil
}

func (r *dayEntryRepositoryImpl) Update(ctx context.Context, entry dayentry.DayEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.dayEntries[entry.ID]; !ok {
		return dayentry.ErrDayEntryNotFound
	}
	r.store.dayEntries[entry.ID] = entry
	return nil
}

func (r *dayEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.dayEntries[id]; !ok {
		return dayentry.ErrDayEntryNotFound
	}
	delete(r.store.dayEntries, id)
	return nil
}

func (r *dayEntryRepositoryImpl) DeleteByDateAndUser(ctx context.Context, date time.Time, userID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for id, e := range r.store.dayEntries {
		if sameDay(e.Date, date) && ownedBy(e.AppUserID, userID) {
			delete(r.store.dayEntries, id)
			n++
		}
	}
	return n, nil
}

func (r *dayEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]dayentry.DayEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]dayentry.DayEntry, 0)
	for _, e := range r.store.dayEntries {
		if ownedBy(e.AppUserID, userID) && sameDay(e.WeekOf, weekOf) {
			entries = append(entries, e)
		}
	}
	sortByDate(entries, func(e dayentry.DayEntry) *time.Time { return e.Date }, func(e dayentry.DayEntry) int64 { return e.ID })
	return entries, nil
}
