package leaveentry

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

type LeaveEntryServiceImpl struct {
	leaveentry.LeaveEntryRepository
	now func() time.Time
}

func NewLeaveEntryService(leaveEntryRepository leaveentry.LeaveEntryRepository) leaveentry.LeaveEntryService {
	return &LeaveEntryServiceImpl{
		LeaveEntryRepository: leaveEntryRepository,
		now:                  time.Now,
	}
}

// Save implements leaveentry.LeaveEntryService.
func (s *LeaveEntryServiceImpl) Save(ctx context.Context, caller auth.Caller, req leaveentry.AddLeaveRequest) (leaveentry.LeaveEntry, error) {
	if req.LeaveEntry == nil {
		return leaveentry.LeaveEntry{}, leaveentry.ErrLeaveEntryRequired
	}
	in := req.LeaveEntry

	owner := in.AppUserID
	if owner == nil || *owner == "" {
		owner = &caller.UserID
	}

	dates, err := timeutil.ResolveEntryDates(in.Date, in.WeekOf, in.DayName, s.now())
	if err != nil {
		return leaveentry.LeaveEntry{}, fmt.Errorf("failed to resolve entry dates: %w", err)
	}

	if in.ID <= 0 {
		return s.LeaveEntryRepository.Create(ctx, leaveentry.LeaveEntry{
			AppUserID:     owner,
			WeekOf:        &dates.WeekOf,
			Date:          &dates.Date,
			DayName:       &dates.DayName,
			LeaveType:     in.LeaveType,
			LeaveDuration: in.LeaveDuration,
			Status:        in.Status,
		})
	}

	stored, err := s.LeaveEntryRepository.GetByID(ctx, in.ID)
	if err != nil {
		return leaveentry.LeaveEntry{}, err
	}

	stored.AppUserID = owner
	stored.WeekOf = &dates.WeekOf
	stored.Date = &dates.Date
	stored.DayName = &dates.DayName
	stored.LeaveType = in.LeaveType
	stored.LeaveDuration = in.LeaveDuration
	stored.Status = in.Status

	if err := s.LeaveEntryRepository.Update(ctx, stored); err != nil {
		return leaveentry.LeaveEntry{}, err
	}
	return stored, nil
}

// Delete implements leaveentry.LeaveEntryService.
func (s *LeaveEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.LeaveEntryRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.LeaveEntryRepository.Delete(ctx, id)
}
