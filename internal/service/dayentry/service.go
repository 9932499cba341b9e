package dayentry

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

type DayEntryServiceImpl struct {
	dayentry.DayEntryRepository
	now func() time.Time
}

func NewDayEntryService(dayEntryRepository dayentry.DayEntryRepository) dayentry.DayEntryService {
	return &DayEntryServiceImpl{
		DayEntryRepository: dayEntryRepository,
		now:                time.Now,
	}
}

// ClockInOut implements dayentry.DayEntryService.
func (s *DayEntryServiceImpl) ClockInOut(ctx context.Context, caller auth.Caller, req dayentry.ClockInOutRequest) (dayentry.DayEntry, error) {
	if req.DayEntry == nil {
		return dayentry.DayEntry{}, dayentry.ErrDayEntryRequired
	}
	in := req.DayEntry

	owner := in.AppUserID
	if owner == nil || *owner == "" {
		owner = &caller.UserID
	}

	dates, err := timeutil.ResolveEntryDates(in.Date, in.WeekOf, in.DayName, s.now())
	if err != nil {
		return dayentry.DayEntry{}, fmt.Errorf("failed to resolve entry dates: %w", err)
	}

	incoming := dayentry.DayEntry{
		ID:             in.ID,
		AppUserID:      owner,
		WeekOf:         &dates.WeekOf,
		Date:           &dates.Date,
		DayName:        &dates.DayName,
		DayStartTime:   in.DayStartTime,
		DayEndTime:     in.DayEndTime,
		LunchStartTime: in.LunchStartTime,
		LunchEndTime:   in.LunchEndTime,
		DayDuration:    in.DayDuration,
		LunchDuration:  in.LunchDuration,
		WorkDuration:   in.WorkDuration,
		Comment:        in.Comment,
		Status:         in.Status,
	}
	incoming.ComputeDurations()

	if in.ID <= 0 {
		created, err := s.DayEntryRepository.Create(ctx, incoming)
		if err != nil {
			return dayentry.DayEntry{}, err
		}
		return created, nil
	}

	stored, err := s.DayEntryRepository.GetByID(ctx, in.ID)
	if err != nil {
		return dayentry.DayEntry{}, err
	}

	stored.AppUserID = incoming.AppUserID
	stored.WeekOf = incoming.WeekOf
	stored.Date = incoming.Date
	stored.DayName = incoming.DayName
	stored.DayStartTime = incoming.DayStartTime
	stored.DayEndTime = incoming.DayEndTime
	stored.LunchStartTime = incoming.LunchStartTime
	stored.LunchEndTime = incoming.LunchEndTime
	stored.DayDuration = incoming.DayDuration
	stored.LunchDuration = incoming.LunchDuration
	stored.WorkDuration = incoming.WorkDuration
	stored.Comment = incoming.Comment
	stored.Status = incoming.Status

	if err := s.DayEntryRepository.Update(ctx, stored); err != nil {
		return dayentry.DayEntry{}, err
	}
	return stored, nil
}

// Delete implements dayentry.DayEntryService.
func (s *DayEntryServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.DayEntryRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.DayEntryRepository.Delete(ctx, id)
}

// DeleteByDate implements dayentry.DayEntryService.
func (s *DayEntryServiceImpl) DeleteByDate(ctx context.Context, caller auth.Caller, req dayentry.DeleteByDateRequest) (int64, error) {
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date: %w", err)
	}

	userID := req.UserID
	if userID == "" || !caller.IsAdmin {
		userID = caller.UserID
	}

	deleted, err := s.DayEntryRepository.DeleteByDateAndUser(ctx, date, userID)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, dayentry.ErrDayEntryNotFound
	}
	return deleted, nil
}
