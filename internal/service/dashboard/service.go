package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	users      user.UserRepository
	dayEntries dayentry.DayEntryRepository
	tasks      taskentry.TaskEntryRepository
	leaves     leaveentry.LeaveEntryRepository
	jobs       job.JobRepository
	taskItems  taskitem.TaskItemRepository
	now        func() time.Time
}

func NewDashboardService(
	userRepository user.UserRepository,
	dayEntryRepository dayentry.DayEntryRepository,
	taskEntryRepository taskentry.TaskEntryRepository,
	leaveEntryRepository leaveentry.LeaveEntryRepository,
	jobRepository job.JobRepository,
	taskItemRepository taskitem.TaskItemRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		users:      userRepository,
		dayEntries: dayEntryRepository,
		tasks:      taskEntryRepository,
		leaves:     leaveEntryRepository,
		jobs:       jobRepository,
		taskItems:  taskItemRepository,
		now:        time.Now,
	}
}

// resolveWeek picks the requested week's Sunday, or the default week: last week on Monday
// and Tuesday, this week otherwise.
func resolveWeek(weekSelect *string, today time.Time) (time.Time, error) {
	if weekSelect != nil && *weekSelect != "" {
		selected, err := timeutil.ParseDate(*weekSelect)
		if err != nil {
			return time.Time{}, err
		}
		return timeutil.StartOfWeek(selected, timeutil.WeekStartDay), nil
	}

	current := timeutil.StartOfWeek(today, timeutil.WeekStartDay)
	switch today.Weekday() {
	case time.Monday, time.Tuesday:
		return current.AddDate(0, 0, -timeutil.DaysInWeek), nil
	default:
		return current, nil
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, caller auth.Caller, req dashboard.IndexRequest) (*dashboard.DashboardResponse, error) {
	targetID := caller.UserID
	if req.UserID != "" && req.UserID != caller.UserID {
		if !caller.IsAdmin {
			return nil, user.ErrForeignDashboard
		}
		targetID = req.UserID
	}

	today := timeutil.DateOf(s.now())
	weekStart, err := resolveWeek(req.WeekSelect, today)
	if err != nil {
		return nil, err
	}
	currentWeek := timeutil.StartOfWeek(today, timeutil.WeekStartDay)

	resp := &dashboard.DashboardResponse{
		WeekOf:        weekStart,
		IsPrevWeek:    weekStart.Before(currentWeek),
		IsCurrentWeek: weekStart.Equal(currentWeek),
		IsFutureWeek:  !weekStart.Before(currentWeek.AddDate(0, 0, timeutil.DaysInWeek)),
		UserID:        targetID,
		IsAdmin:       caller.IsAdmin,
	}

	var target user.User

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Target user
	g.Go(func() error {
		u, err := s.users.GetByID(gCtx, targetID)
		if errors.Is(err, user.ErrUserNotFound) {
			// Unknown users render with blank names.
			return nil
		}
		if err != nil {
			return err
		}
		target = u
		return nil
	})

	// 2. Entries of the selected week
	g.Go(func() error {
		entries, err := s.dayEntries.ListByUserAndWeek(gCtx, targetID, weekStart)
		resp.DayEntries = entries
		return err
	})
	g.Go(func() error {
		entries, err := s.tasks.ListByUserAndWeek(gCtx, targetID, weekStart)
		resp.TaskEntries = entries
		return err
	})
	g.Go(func() error {
		entries, err := s.leaves.ListByUserAndWeek(gCtx, targetID, weekStart)
		resp.LeaveEntries = entries
		return err
	})

	// 3. Most recent task entry across all weeks
	g.Go(func() error {
		last, err := s.tasks.GetLatestByUser(gCtx, targetID)
		resp.LastTaskEntry = last
		return err
	})

	// 4. Catalogs
	g.Go(func() error {
		jobs, err := s.jobs.ListAll(gCtx)
		resp.Jobs = jobs
		return err
	})
	g.Go(func() error {
		items, err := s.taskItems.List(gCtx)
		resp.Tasks = items
		return err
	})

	// 5. Admin lookups
	if caller.IsAdmin {
		g.Go(func() error {
			groups, err := s.users.ListGroups(gCtx)
			resp.Groups = groups
			return err
		})
		g.Go(func() error {
			users, err := s.users.List(gCtx)
			if err != nil {
				return err
			}
			resp.Users = user.NewUserResponses(users)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.FirstName = target.FirstName
	resp.LastName = target.LastName

	weekEnd := weekStart.AddDate(0, 0, timeutil.DaysInWeek)
	resp.DayEntryTotalHours = sumDayEntries(resp.DayEntries, weekStart, weekEnd)
	resp.TaskEntryTotalHours = sumTaskEntries(resp.TaskEntries, weekStart, weekEnd)
	resp.LeaveEntryTotalHours = sumLeaveEntries(resp.LeaveEntries, weekStart, weekEnd, false)
	resp.TotalHours = resp.DayEntryTotalHours + resp.TaskEntryTotalHours + resp.LeaveEntryTotalHours
	resp.WeekTotalExcludingUPTO = resp.TaskEntryTotalHours + sumLeaveEntries(resp.LeaveEntries, weekStart, weekEnd, true)
	resp.Days = weekBreakdown(weekStart, resp.DayEntries, resp.TaskEntries, resp.LeaveEntries)

	return resp, nil
}
