package cached

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
)

const jobsAllKey = "jobs:all"

// jobRepository serves ListAll from the cache and drops the entry once a catalog write commits.
// Reads inside a transaction bypass the cache.
type jobRepository struct {
	job.JobRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewJobRepository(inner job.JobRepository, c cache.Cache, ttl time.Duration) job.JobRepository {
	return &jobRepository{JobRepository: inner, cache: c, ttl: ttl}
}

func (r *jobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	if database.InTransaction(ctx) {
		return r.JobRepository.ListAll(ctx)
	}

	var jobs []job.Job
	hit, err := r.cache.Get(ctx, jobsAllKey, &jobs)
	if err != nil {
		slog.Warn("Cache read failed", "key", jobsAllKey, "error", err)
	}
	if hit {
		return jobs, nil
	}

	jobs, err = r.JobRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, jobsAllKey, jobs, r.ttl); err != nil {
		slog.Warn("Cache write failed", "key", jobsAllKey, "error", err)
	}
	return jobs, nil
}

func (r *jobRepository) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	created, err := r.JobRepository.Create(ctx, newJob)
	if err == nil {
		r.invalidate(ctx)
	}
	return created, err
}

func (r *jobRepository) Update(ctx context.Context, j job.Job) error {
	err := r.JobRepository.Update(ctx, j)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	err := r.JobRepository.Delete(ctx, id)
	if err == nil {
		r.invalidate(ctx)
	}
	return err
}

func (r *jobRepository) invalidate(ctx context.Context) {
	database.AfterCommit(ctx, func(ctx context.Context) {
		if err := r.cache.Delete(ctx, jobsAllKey); err != nil {
			slog.Warn("Cache invalidation failed", "key", jobsAllKey, "error", err)
		}
	})
}
