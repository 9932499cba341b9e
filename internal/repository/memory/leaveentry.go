package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
)

type leaveEntryRepositoryImpl struct {
	store *Store
}

func NewLeaveEntryRepository(store *Store) leaveentry.LeaveEntryRepository {
	return &leaveEntryRepositoryImpl{store: store}
}

func (r *leaveEntryRepositoryImpl) Create(ctx context.Context, entry leaveentry.LeaveEntry) (leaveentry.LeaveEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.ID = r.store.nextID("leave_entries")
	r.store.leaveEntries[entry.ID] = entry
	return entry, nil
}

func (r *leaveEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (leaveentry.LeaveEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.leaveEntries[id]
	if !ok {
		return leaveentry.LeaveEntry{}, leaveentry.ErrLeaveEntryNotFound
	}
	return e, nil
}

func (r *leaveEntryRepositoryImpl) Update(ctx context.Context, entry leaveentry.LeaveEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leaveEntries[entry.ID]; !ok {
		return leaveentry.ErrLeaveEntryNotFound
	}
	r.store.leaveEntries[entry.ID] = entry
	return nil
}

func (r *leaveEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leaveEntries[id]; !ok {
		return leaveentry.ErrLeaveEntryNotFound
	}
	delete(r.store.leaveEntries, id)
	return nil
}

func (r *leaveEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]leaveentry.LeaveEntry, error) {
	return r.filter(func(e leaveentry.LeaveEntry) bool {
		return ownedBy(e.AppUserID, userID) && sameDay(e.WeekOf, weekOf)
	}), nil
}

func (r *leaveEntryRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]leaveentry.LeaveEntry, error) {
	return r.filter(func(e leaveentry.LeaveEntry) bool {
		return ownedBy(e.AppUserID, userID) && inRange(e.Date, from, to)
	}), nil
}

func (r *leaveEntryRepositoryImpl) filter(keep func(leaveentry.LeaveEntry) bool) []leaveentry.LeaveEntry {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]leaveentry.LeaveEntry, 0)
	for _, e := range r.store.leaveEntries {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	sortByDate(entries, func(e leaveentry.LeaveEntry) *time.Time { return e.Date }, func(e leaveentry.LeaveEntry) int64 { return e.ID })
	return entries
}
