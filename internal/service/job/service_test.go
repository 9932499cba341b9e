package job

import (
	"context"
	"strings"
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *memory.Store
	svc   *JobServiceImpl
}

func newFixture() fixture {
	store := memory.NewStore()
	svc := NewJobService(store, memory.NewJobRepository(store)).(*JobServiceImpl)
	return fixture{store: store, svc: svc}
}

func createReq(number, name string) job.CreateJobRequest {
	return job.CreateJobRequest{JobModel: &job.JobInput{JobNumber: number, JobName: name}}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.Create(ctx, createReq(" 1001 ", "Alpha"))
	require.NoError(t, err)
	assert.Equal(t, "1001", created.JobNumber)
	assert.Equal(t, "1001 - Alpha", created.JobNumberAndJobName)

	_, err = f.svc.Create(ctx, createReq("1001", "Other"))
	assert.ErrorIs(t, err, job.ErrJobNumberExists)

	_, err = f.svc.Create(ctx, createReq("", "No number"))
	assert.ErrorIs(t, err, job.ErrJobFieldsRequired)

	_, err = f.svc.Create(ctx, job.CreateJobRequest{})
	assert.ErrorIs(t, err, job.ErrJobFieldsRequired)

	// The created_jobs staging row is already in the catalog.
	synced, err := f.svc.Sync(ctx)
	require.NoError(t, err)
	assert.Zero(t, synced)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.svc.Create(ctx, createReq("1001", "Alpha"))
	require.NoError(t, err)

	err = f.svc.Update(ctx, created.ID, job.UpdateJobRequest{ID: created.ID + 1, JobNumber: "1"})
	assert.ErrorIs(t, err, job.ErrJobIDMismatch)

	err = f.svc.Update(ctx, 99, job.UpdateJobRequest{ID: 99, JobNumber: "1"})
	assert.ErrorIs(t, err, job.ErrJobNotFound)

	require.NoError(t, f.svc.Update(ctx, created.ID, job.UpdateJobRequest{ID: created.ID, JobNumber: "1002", JobName: "Beta"}))
	got, err := f.svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1002 - Beta", got.JobNumberAndJobName)
}

func TestDelete_GuardedByTaskEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.svc.Create(ctx, createReq("1001", "Alpha"))
	require.NoError(t, err)

	tasks := memory.NewTaskEntryRepository(f.store)
	entry, err := tasks.Create(ctx, taskentry.TaskEntry{JobID: &created.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), job.ErrJobHasTaskEntries)

	require.NoError(t, tasks.Delete(ctx, entry.ID))
	require.NoError(t, f.svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, created.ID), job.ErrJobNotFound)
}

func TestList_Pagination(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	for _, n := range []string{"101", "102", "103", "201", "202"} {
		_, err := f.svc.Create(ctx, createReq(n, "Job"))
		require.NoError(t, err)
	}

	resp, err := f.svc.List(ctx, job.JobFilter{SearchTerm: "10", PageNumber: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalJobs)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "103", resp.Jobs[0].JobNumber)

	resp, err = f.svc.List(ctx, job.JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, job.DefaultPageNumber, resp.PageNumber)
	assert.Equal(t, job.DefaultPageSize, resp.PageSize)
	assert.Len(t, resp.Jobs, 5)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, err := f.svc.Create(ctx, createReq("1001", "Existing"))
	require.NoError(t, err)

	input := "Job Number,Job Name\n1001,Existing again\n,blank\n2001,\"Beta, Inc\"\n2001,Beta duplicate\n3001\n"
	imported, err := f.svc.Import(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, imported)

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2001 - Beta, Inc", all[1].JobNumberAndJobName)
	assert.Equal(t, "3001 - ", all[2].JobNumberAndJobName)
}

func TestImport_InvalidCSV(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Import(context.Background(), strings.NewReader("1,\"unterminated\n"))
	assert.ErrorIs(t, err, job.ErrImportFileUnreadable)

	all, err := f.svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
