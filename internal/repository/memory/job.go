package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
)

type jobRepositoryImpl struct {
	store *Store
}

func NewJobRepository(store *Store) job.JobRepository {
	return &jobRepositoryImpl{store: store}
}

func (r *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newJob.ID = r.store.nextID("jobs")
	r.store.jobs[newJob.ID] = newJob
	return newJob, nil
}

func (r *jobRepositoryImpl) GetByID(ctx context.Context, id int64) (job.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	j, ok := r.store.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return j, nil
}

func (r *jobRepositoryImpl) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.hasNumber(number), nil
}

// hasNumber must be called with mu held.
func (r *jobRepositoryImpl) hasNumber(number string) bool {
	for _, j := range r.store.jobs {
		if j.JobNumber == number {
			return true
		}
	}
	return false
}

func (r *jobRepositoryImpl) Update(ctx context.Context, j job.Job) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.jobs[j.ID]; !ok {
		return job.ErrJobNotFound
	}
	r.store.jobs[j.ID] = j
	return nil
}

func (r *jobRepositoryImpl) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.jobs[id]; !ok {
		return job.ErrJobNotFound
	}
	for _, e := range r.store.taskEntries {
		if e.JobID != nil && *e.JobID == id {
			return job.ErrJobHasTaskEntries
		}
	}
	delete(r.store.jobs, id)
	return nil
}

func (r *jobRepositoryImpl) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	all, _ := r.ListAll(ctx)

	term := strings.ToLower(filter.SearchTerm)
	matched := make([]job.Job, 0, len(all))
	for _, j := range all {
		if term == "" ||
			strings.Contains(strings.ToLower(j.JobNumber), term) ||
			strings.Contains(strings.ToLower(j.JobName), term) {
			matched = append(matched, j)
		}
	}

	total := int64(len(matched))
	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *jobRepositoryImpl) ListAll(ctx context.Context) ([]job.Job, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	jobs := make([]job.Job, 0, len(r.store.jobs))
	for _, j := range r.store.jobs {
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(i, k int) bool {
		if jobs[i].JobNumber != jobs[k].JobNumber {
			return jobs[i].JobNumber < jobs[k].JobNumber
		}
		return jobs[i].ID < jobs[k].ID
	})
	return jobs, nil
}

func (r *jobRepositoryImpl) HasTaskEntries(ctx context.Context, id int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.taskEntries {
		if e.JobID != nil && *e.JobID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *jobRepositoryImpl) ListDetails(ctx context.Context, jobNumber string) ([]job.Detail, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	type keyed struct {
		detail job.Detail
		id     int64
	}

	rows := make([]keyed, 0)
	for _, e := range r.store.taskEntries {
		if e.JobID == nil || e.AppUserID == nil {
			continue
		}
		j, ok := r.store.jobs[*e.JobID]
		if !ok || j.JobNumber != jobNumber {
			continue
		}
		u, ok := r.store.users[*e.AppUserID]
		if !ok {
			continue
		}
		d := job.Detail{
			AppUserID: u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			JobNumber: j.JobNumber,
			JobName:   j.JobName,
			Date:      e.Date,
			Duration:  e.Duration,
		}
		if e.TaskName != nil {
			d.TaskName = *e.TaskName
		}
		rows = append(rows, keyed{detail: d, id: e.ID})
	}

	sort.Slice(rows, func(i, k int) bool {
		a, b := rows[i].detail, rows[k].detail
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		if a.AppUserID != b.AppUserID {
			return a.AppUserID < b.AppUserID
		}
		if !dateOf(a.Date).Equal(dateOf(b.Date)) {
			return dateOf(a.Date).Before(dateOf(b.Date))
		}
		return rows[i].id < rows[k].id
	})

	details := make([]job.Detail, len(rows))
	for i, row := range rows {
		details[i] = row.detail
	}
	return details, nil
}

func (r *jobRepositoryImpl) CreateStaged(ctx context.Context, staged job.StagedJob) (job.StagedJob, error) {
	if staged.Source != job.SourceImported && staged.Source != job.SourceCreated {
		return job.StagedJob{}, fmt.Errorf("unknown job source %q", staged.Source)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	staged.ID = r.store.nextID(string(staged.Source))
	r.store.stagedJobs[staged.Source] = append(r.store.stagedJobs[staged.Source], staged)
	return staged, nil
}

func (r *jobRepositoryImpl) ListUnsynced(ctx context.Context) ([]job.StagedJob, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	unsynced := make([]job.StagedJob, 0)
	for _, src := range []job.Source{job.SourceImported, job.SourceCreated} {
		for _, s := range r.store.stagedJobs[src] {
			if !r.hasNumber(s.JobNumber) {
				unsynced = append(unsynced, s)
			}
		}
	}
	return unsynced, nil
}

