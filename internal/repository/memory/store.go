package memory

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

// Store holds every table in process memory. Repositories built on the same Store share data.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users        map[string]user.User
	dayEntries   map[int64]dayentry.DayEntry
	taskEntries  map[int64]taskentry.TaskEntry
	leaveEntries map[int64]leaveentry.LeaveEntry
	jobs         map[int64]job.Job
	stagedJobs   map[job.Source][]job.StagedJob
	taskItems    map[int64]taskitem.TaskItem

	seq map[string]int64
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]user.User),
		dayEntries:   make(map[int64]dayentry.DayEntry),
		taskEntries:  make(map[int64]taskentry.TaskEntry),
		leaveEntries: make(map[int64]leaveentry.LeaveEntry),
		jobs:         make(map[int64]job.Job),
		stagedJobs:   make(map[job.Source][]job.StagedJob),
		taskItems:    make(map[int64]taskitem.TaskItem),
		seq:          make(map[string]int64),
		now:          time.Now,
	}
}

// nextID must be called with mu held.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

type snapshot struct {
	users        map[string]user.User
	dayEntries   map[int64]dayentry.DayEntry
	taskEntries  map[int64]taskentry.TaskEntry
	leaveEntries map[int64]leaveentry.LeaveEntry
	jobs         map[int64]job.Job
	stagedJobs   map[job.Source][]job.StagedJob
	taskItems    map[int64]taskitem.TaskItem
	seq          map[string]int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staged := make(map[job.Source][]job.StagedJob, len(s.stagedJobs))
	for src, rows := range s.stagedJobs {
		staged[src] = append([]job.StagedJob(nil), rows...)
	}
	return snapshot{
		users:        maps.Clone(s.users),
		dayEntries:   maps.Clone(s.dayEntries),
		taskEntries:  maps.Clone(s.taskEntries),
		leaveEntries: maps.Clone(s.leaveEntries),
		jobs:         maps.Clone(s.jobs),
		stagedJobs:   staged,
		taskItems:    maps.Clone(s.taskItems),
		seq:          maps.Clone(s.seq),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.dayEntries = snap.dayEntries
	s.taskEntries = snap.taskEntries
	s.leaveEntries = snap.leaveEntries
	s.jobs = snap.jobs
	s.stagedJobs = snap.stagedJobs
	s.taskItems = snap.taskItems
	s.seq = snap.seq
}

// WithinTransaction serializes transactions and restores the previous state when fn fails.
// AfterCommit callbacks run once fn succeeds.
func (s *Store) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, afterCommit := database.TrackCommit(ctx)
	if err := s.runSerialized(txCtx, fn); err != nil {
		return err
	}
	afterCommit(ctx)
	return nil
}

func (s *Store) runSerialized(ctx context.Context, fn func(txCtx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func dateOf(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func sameDay(a *time.Time, b time.Time) bool {
	return a != nil && a.Equal(b)
}

func inRange(t *time.Time, from, to time.Time) bool {
	return t != nil && !t.Before(from) && t.Before(to)
}

func ownedBy(owner *string, userID string) bool {
	return owner != nil && *owner == userID
}

// sortByDate orders by date then id, nil dates first.
func sortByDate[T any](items []T, date func(T) *time.Time, id func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := dateOf(date(items[i])), dateOf(date(items[j]))
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return id(items[i]) < id(items[j])
	})
}
