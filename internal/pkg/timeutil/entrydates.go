package timeutil

import (
	"strings"
	"time"
)

// WeekStartDay is the first day of a timesheet week.
const WeekStartDay = time.Sunday

// EntryDates holds the normalized calendar fields shared by day, task and leave entries.
type EntryDates struct {
	Date    time.Time
	WeekOf  time.Time
	DayName string
}

// DateOf returns t's calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveEntryDates fills in a missing date with today, snaps the week to its start
// (derived from the date when absent) and defaults the day name to the date's weekday.
func ResolveEntryDates(date, weekOf, dayName *string, today time.Time) (EntryDates, error) {
	var out EntryDates

	out.Date = DateOf(today)
	if date != nil && strings.TrimSpace(*date) != "" {
		d, err := ParseDate(strings.TrimSpace(*date))
		if err != nil {
			return EntryDates{}, err
		}
		out.Date = d
	}

	out.WeekOf = StartOfWeek(out.Date, WeekStartDay)
	if weekOf != nil && strings.TrimSpace(*weekOf) != "" {
		w, err := ParseDate(strings.TrimSpace(*weekOf))
		if err != nil {
			return EntryDates{}, err
		}
		out.WeekOf = StartOfWeek(w, WeekStartDay)
	}

	out.DayName = out.Date.Weekday().String()
	if dayName != nil && strings.TrimSpace(*dayName) != "" {
		out.DayName = strings.TrimSpace(*dayName)
	}

	return out, nil
}
