package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayEntryRepository_RoundTrip(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	u := createTestUser(t, ctx, postgresql.NewUserRepository(db), "day@example.com", "Group1")
	repo := postgresql.NewDayEntryRepository(db)

	week := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	start := timeutil.NewTimeOfDay(8, 0, 0)

	created, err := repo.Create(ctx, dayentry.DayEntry{
		AppUserID:    &u.ID,
		WeekOf:       &week,
		Date:         &date,
		DayStartTime: &start,
	})
	require.NoError(t, err)
	assert.True(t, created.IsOpen())

	end := timeutil.NewTimeOfDay(16, 30, 0)
	created.DayEndTime = &end
	created.ComputeDurations()
	require.NoError(t, repo.Update(ctx, created))

	list, err := repo.ListByUserAndWeek(ctx, u.ID, week)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 8.5, *list[0].WorkDuration, 0.0001)
	assert.Nil(t, list[0].LunchStartTime)

	n, err := repo.DeleteByDateAndUser(ctx, date, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, dayentry.ErrDayEntryNotFound)
}

func TestJobRepository_ListSyncAndDetails(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	u := createTestUser(t, ctx, postgresql.NewUserRepository(db), "job@example.com", "Group1")
	jobs := postgresql.NewJobRepository(db)
	tasks := postgresql.NewTaskEntryRepository(db)

	j, err := jobs.Create(ctx, job.New("1001", "Alpha"))
	require.NoError(t, err)
	_, err = jobs.Create(ctx, job.New("2002", "Beta"))
	require.NoError(t, err)

	list, total, err := jobs.List(ctx, job.JobFilter{SearchTerm: "alp", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "1001 - Alpha", list[0].JobNumberAndJobName)

	staged := job.New("1001", "Alpha again")
	_, err = jobs.CreateStaged(ctx, job.StagedJob{Source: job.SourceImported, JobNumber: staged.JobNumber, JobName: staged.JobName, JobNumberAndJobName: staged.JobNumberAndJobName})
	require.NoError(t, err)
	_, err = jobs.CreateStaged(ctx, job.StagedJob{Source: job.SourceCreated, JobNumber: "3003", JobName: "Gamma", JobNumberAndJobName: "3003 - Gamma"})
	require.NoError(t, err)

	unsynced, err := jobs.ListUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, "3003", unsynced[0].JobNumber)
	assert.Equal(t, job.SourceCreated, unsynced[0].Source)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	hours := 2.5
	entry, err := tasks.Create(ctx, taskentry.TaskEntry{AppUserID: &u.ID, Date: &date, JobID: &j.ID, TaskName: strPtr("Framing"), Duration: &hours})
	require.NoError(t, err)

	loaded, err := tasks.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Job)
	assert.Equal(t, "1001", loaded.Job.JobNumber)

	has, err := jobs.HasTaskEntries(ctx, j.ID)
	require.NoError(t, err)
	assert.True(t, has)

	details, err := jobs.ListDetails(ctx, "1001")
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, u.ID, details[0].AppUserID)

	rows, err := postgresql.NewReportRepository(db).ListTimesheetRows(ctx, report.TimesheetFilter{Group: "Group1"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1001 - Alpha", rows[0].JobDisplay)
}

func TestJobRepository_ListSearchIsLiteral(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	jobs := postgresql.NewJobRepository(db)

	_, err := jobs.Create(ctx, job.New("A_1", "Underscore"))
	require.NoError(t, err)
	_, err = jobs.Create(ctx, job.New("AB1", "Plain"))
	require.NoError(t, err)
	_, err = jobs.Create(ctx, job.New("900", "Discount 50% off"))
	require.NoError(t, err)

	list, total, err := jobs.List(ctx, job.JobFilter{SearchTerm: "a_", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "A_1", list[0].JobNumber)

	list, total, err = jobs.List(ctx, job.JobFilter{SearchTerm: "%", PageNumber: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "900", list[0].JobNumber)
}

func TestTaskEntryRepository_GetLatestByUserUsesDate(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	u := createTestUser(t, ctx, postgresql.NewUserRepository(db), "latest@example.com", "Group1")
	tasks := postgresql.NewTaskEntryRepository(db)

	recent := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	backfilled := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := tasks.Create(ctx, taskentry.TaskEntry{AppUserID: &u.ID})
	require.NoError(t, err)
	first, err := tasks.Create(ctx, taskentry.TaskEntry{AppUserID: &u.ID, Date: &recent})
	require.NoError(t, err)
	_, err = tasks.Create(ctx, taskentry.TaskEntry{AppUserID: &u.ID, Date: &backfilled})
	require.NoError(t, err)

	latest, err := tasks.GetLatestByUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, first.ID, latest.ID)
}
