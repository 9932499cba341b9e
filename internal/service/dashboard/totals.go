package dashboard

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/dayentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/leaveentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskentry"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/timeutil"
)

func dated(d *time.Time, from, to time.Time) bool {
	return d != nil && timeutil.InRange(*d, from, to)
}

func sumDayEntries(entries []dayentry.DayEntry, from, to time.Time) float64 {
	total := 0.0
	for i := range entries {
		if dated(entries[i].Date, from, to) {
			total += entries[i].WorkedHours()
		}
	}
	return total
}

func sumTaskEntries(entries []taskentry.TaskEntry, from, to time.Time) float64 {
	total := 0.0
	for i := range entries {
		if dated(entries[i].Date, from, to) {
			total += entries[i].Hours()
		}
	}
	return total
}

func sumLeaveEntries(entries []leaveentry.LeaveEntry, from, to time.Time, excludeUnpaid bool) float64 {
	total := 0.0
	for i := range entries {
		if !dated(entries[i].Date, from, to) {
			continue
		}
		if excludeUnpaid && entries[i].IsUnpaid() {
			continue
		}
		total += entries[i].Hours()
	}
	return total
}

// spanHours returns end-start, adding a day when end precedes start. An incomplete pair counts as zero.
func spanHours(start, end *timeutil.TimeOfDay) float64 {
	if start == nil || end == nil {
		return 0
	}
	return timeutil.HoursSpanning(*start, *end)
}

// weekBreakdown summarizes each of the seven days starting at weekStart.
func weekBreakdown(weekStart time.Time, days []dayentry.DayEntry, tasks []taskentry.TaskEntry, leaves []leaveentry.LeaveEntry) []dashboard.DayBreakdown {
	out := make([]dashboard.DayBreakdown, 0, timeutil.DaysInWeek)
	for i := 0; i < timeutil.DaysInWeek; i++ {
		from := weekStart.AddDate(0, 0, i)
		to := from.AddDate(0, 0, 1)

		var dayHours, lunchHours float64
		for k := range days {
			if !dated(days[k].Date, from, to) {
				continue
			}
			dayHours += spanHours(days[k].DayStartTime, days[k].DayEndTime)
			lunchHours += spanHours(days[k].LunchStartTime, days[k].LunchEndTime)
		}
		dayHours = timeutil.RoundToQuarterHour(dayHours)
		lunchHours = timeutil.RoundToQuarterHour(lunchHours)

		taskHours := sumTaskEntries(tasks, from, to)
		for k := range leaves {
			if dated(leaves[k].Date, from, to) && leaves[k].Type() == leaveentry.LeaveTypePTO {
				taskHours += leaves[k].Hours()
			}
		}

		out = append(out, dashboard.DayBreakdown{
			Date:       from,
			DayName:    from.Weekday().String(),
			DayHours:   dayHours,
			LunchHours: lunchHours,
			WorkHours:  dayHours - lunchHours,
			TaskHours:  taskHours,
			LeaveHours: sumLeaveEntries(leaves, from, to, false),
		})
	}
	return out
}
