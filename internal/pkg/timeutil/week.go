package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DaysInWeek     = 7
	hoursInDay     = 24
	quarterPerHour = 4
)

// StartOfWeek returns midnight of the most recent start weekday on or before t.
func StartOfWeek(t time.Time, start time.Weekday) time.Time {
	diff := (DaysInWeek + (int(t.Weekday()) - int(start))) % DaysInWeek
	return TruncateDay(t.AddDate(0, 0, -diff))
}

// TruncateDay strips the time of day, keeping t's location.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekRange returns [start, start+7d) for the week containing t.
func WeekRange(t time.Time, start time.Weekday) (time.Time, time.Time) {
	from := StartOfWeek(t, start)
	return from, from.AddDate(0, 0, DaysInWeek)
}

// InRange reports whether from <= t < to.
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// ParseDate accepts "2006-01-02" or an RFC3339 timestamp and returns the date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// RoundToQuarterHour rounds hours to the nearest 0.25.
func RoundToQuarterHour(hours float64) float64 {
	return math.Round(hours*quarterPerHour) / quarterPerHour
}
