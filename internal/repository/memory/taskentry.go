package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
)

type taskEntryRepositoryImpl struct {
	store *Store
}

func NewTaskEntryRepository(store *Store) taskentry.TaskEntryRepository {
	return &taskEntryRepositoryImpl{store: store}
}

// withJob attaches the referenced job; must be called with mu held.
func (r *taskEntryRepositoryImpl) withJob(e taskentry.TaskEntry) taskentry.TaskEntry {
	e.Job = nil
	if e.JobID != nil {
		if j, ok := r.store.jobs[*e.JobID]; ok {
			e.Job = &j
		}
	}
	return e
}

func (r *taskEntryRepositoryImpl) Create(ctx context.Context, entry taskentry.TaskEntry) (taskentry.TaskEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.ID = r.store.nextID("task_entries")
	entry.Job = nil
	r.store.taskEntries[entry.ID] = entry
	return entry, nil
}

func (r *taskEntryRepositoryImpl) GetByID(ctx context.Context, id int64) (taskentry.TaskEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.taskEntries[id]
	if !ok {
		return taskentry.TaskEntry{}, taskentry.ErrTaskEntryNotFound
	}
	return r.withJob(e), nil
}

func (r *taskEntryRepositoryImpl) Update(ctx context.Context, entry taskentry.TaskEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.taskEntries[entry.ID]; !ok {
		return taskentry.ErrTaskEntryNotFound
	}
	entry.Job = nil
	r.store.taskEntries[entry.ID] = entry
	return nil
}

func (r *taskEntryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.taskEntries[id]; !ok {
		return taskentry.ErrTaskEntryNotFound
	}
	delete(r.store.taskEntries, id)
	return nil
}

func (r *taskEntryRepositoryImpl) ListByUserAndWeek(ctx context.Context, userID string, weekOf time.Time) ([]taskentry.TaskEntry, error) {
	return r.filter(func(e taskentry.TaskEntry) bool {
		return ownedBy(e.AppUserID, userID) && sameDay(e.WeekOf, weekOf)
	}), nil
}

func (r *taskEntryRepositoryImpl) GetLatestByUser(ctx context.Context, userID string) (*taskentry.TaskEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var latest *taskentry.TaskEntry
	for _, e := range r.store.taskEntries {
		if !ownedBy(e.AppUserID, userID) {
			continue
		}
		if latest == nil || laterEntry(e, *latest) {
			found := r.withJob(e)
			latest = &found
		}
	}
	return latest, nil
}

// laterEntry orders by date descending with undated entries last, then by id descending.
func laterEntry(a, b taskentry.TaskEntry) bool {
	switch {
	case a.Date != nil && b.Date == nil:
		return true
	case a.Date == nil && b.Date != nil:
		return false
	case a.Date != nil && !a.Date.Equal(*b.Date):
		return a.Date.After(*b.Date)
	}
	return a.ID > b.ID
}

func (r *taskEntryRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]taskentry.TaskEntry, error) {
	return r.filter(func(e taskentry.TaskEntry) bool {
		return ownedBy(e.AppUserID, userID) && inRange(e.Date, from, to)
	}), nil
}

func (r *taskEntryRepositoryImpl) filter(keep func(taskentry.TaskEntry) bool) []taskentry.TaskEntry {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entries := make([]taskentry.TaskEntry, 0)
	for _, e := range r.store.taskEntries {
		if keep(e) {
			entries = append(entries, r.withJob(e))
		}
	}
	sortByDate(entries, func(e taskentry.TaskEntry) *time.Time { return e.Date }, func(e taskentry.TaskEntry) int64 { return e.ID })
	return entries
}
