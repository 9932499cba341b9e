package job

import (
	"context"
	"io"
)

type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (Job, error)
	Update(ctx context.Context, id int64, req UpdateJobRequest) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context, filter JobFilter) (ListJobResponse, error)
	ListAll(ctx context.Context) ([]Job, error)
	Details(ctx context.Context, jobNumber string) ([]Detail, error)

	// Sync copies staged jobs with unknown numbers into the catalog.
	Sync(ctx context.Context) (int, error)
	// Import stages "number,name" CSV rows as imported jobs.
	Import(ctx context.Context, r io.Reader) (int, error)
}
