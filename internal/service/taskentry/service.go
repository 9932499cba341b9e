package taskentry

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

type TaskEntryServiceImpl struct {
	taskentry.TaskEntryRepository
	now func() time.Time
}

func NewTaskEntryService(taskEntryRepository taskentry.TaskEntryRepository) taskentry.TaskEntryService {
	return &TaskEntryServiceImpl{
		TaskEntryRepository: taskEntryRepository,
		now:                 time.Now,
	}
}

// Save implements taskentry.TaskEntryService.
func (s *TaskEntryServiceImpl) Save(ctx context.Context, caller auth.Caller, req taskentry.AddTaskEntryRequest) (taskentry.TaskEntry, error) {
	if req.TaskEntry == nil {
		return taskentry.TaskEntry{}, taskentry.ErrTaskEntryRequired
	}
	in := req.TaskEntry

	owner := in.AppUserID
	if owner == nil || *owner == "" {
		owner = &caller.UserID
	}

	dates, err := timeutil.ResolveEntryDates(in.Date, in.WeekOf, in.DayName, s.now())
	if err != nil {
		return taskentry.TaskEntry{}, fmt.Errorf("failed to resolve entry dates: %w", err)
	}

	if in.ID <= 0 {
		return s.TaskEntryRepository.Create(ctx, taskentry.TaskEntry{
			AppUserID: owner,
			WeekOf:    &dates.WeekOf,
			Date:      &dates.Date,
			DayName:   &dates.DayName,
			JobID:     in.JobID,
			TaskName:  in.TaskName,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Duration:  in.Duration,
			Comment:   in.Comment,
			Status:    in.Status,
		})
	}

	stored, err := s.TaskEntryRepository.GetByID(ctx, in.ID)
	if err != nil {
		return taskentry.TaskEntry{}, err
	}

	stored.AppUserID = owner
	stored.WeekOf = &dates.WeekOf
	stored.Date = &dates.Date
	stored.DayName = &dates.DayName
	stored.JobID = in.JobID
	stored.TaskName = in.TaskName
	stored.StartTime = in.StartTime
	stored.EndTime = in.EndTime
	stored.Duration = in.Duration
	stored.Comment = in.Comment
	stored.Status = in.Status
	stored.Job = nil

	if err := s.TaskEntryRepository.Update(ctx, stored); err != nil {
		return taskentry.TaskEntry{}, err
	}
	return stored, nil
}

// Delete implements taskentry.TaskEntryService.
func (s *TaskEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.TaskEntryRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.TaskEntryRepository.Delete(ctx, id)
}
