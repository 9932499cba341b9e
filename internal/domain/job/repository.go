package job

import (
	"context"
)

type JobRepository interface {
	Create(ctx context.Context, newJob Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id int64) error
	// List filters by a case-insensitive substring of number or name and pages with offset/limit.
	List(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	ListAll(ctx context.Context) ([]Job, error)
	HasTaskEntries(ctx context.Context, id int64) (bool, error)
	ListDetails(ctx context.Context, jobNumber string) ([]Detail, error)

	// Staging tables
	CreateStaged(ctx context.Context, staged StagedJob) (StagedJob, error)
	// ListUnsynced returns staged rows whose job number is missing from the catalog.
	ListUnsynced(ctx context.Context) ([]StagedJob, error)
}
