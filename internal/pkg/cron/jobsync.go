package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
)

type JobCatalogJobs struct {
	jobService job.JobService
	interval   time.Duration
}

func NewJobCatalogJobs(jobService job.JobService, interval time.Duration) *JobCatalogJobs {
	return &JobCatalogJobs{
		jobService: jobService,
		interval:   interval,
	}
}

func (j *JobCatalogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_staged_jobs", j.interval, j.SyncStagedJobs)
}

// SyncStagedJobs copies imported and created jobs missing from the catalog.
func (j *JobCatalogJobs) SyncStagedJobs(ctx context.Context) error {
	added, err := j.jobService.Sync(ctx)
	if err != nil {
		return err
	}
	if added > 0 {
		slog.Info("Cron: staged jobs synced into catalog", "added", added)
	}
	return nil
}
