package timeutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name  string
		input time.Time
		start time.Weekday
		want  time.Time
	}{
		{"wednesday to sunday", date(2025, 1, 8), time.Sunday, date(2025, 1, 5)},
		{"wednesday to monday", date(2025, 1, 8), time.Monday, date(2025, 1, 6)},
		{"wednesday to saturday", date(2025, 1, 8), time.Saturday, date(2025, 1, 4)},
		{"year boundary", date(2025, 1, 2), time.Sunday, date(2024, 12, 29)},
		{"already on start", date(2025, 1, 5), time.Sunday, date(2025, 1, 5)},
		{"time of day stripped", time.Date(2025, 1, 8, 17, 45, 12, 0, time.UTC), time.Sunday, date(2025, 1, 5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, StartOfWeek(c.input, c.start))
		})
	}
}

func TestStartOfWeek_IdempotentAndNeverLater(t *testing.T) {
	base := time.Date(2024, 2, 20, 13, 30, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		d := base.AddDate(0, 0, i)
		for w := time.Sunday; w <= time.Saturday; w++ {
			got := StartOfWeek(d, w)
			assert.Equal(t, got, StartOfWeek(got, w), "idempotence for %s/%s", d, w)
			assert.False(t, got.After(d), "start %s after input %s", got, d)
			assert.Equal(t, w, got.Weekday())
		}
	}
}

func TestWeekRangeAndInRange(t *testing.T) {
	from, to := WeekRange(date(2025, 1, 8), time.Sunday)
	assert.Equal(t, date(2025, 1, 5), from)
	assert.Equal(t, date(2025, 1, 12), to)

	assert.True(t, InRange(from, from, to))
	assert.True(t, InRange(date(2025, 1, 11), from, to))
	assert.False(t, InRange(to, from, to))
	assert.False(t, InRange(date(2025, 1, 4), from, to))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 14), d)

	d, err = ParseDate("2025-03-14T18:22:00Z")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 14), d)

	_, err = ParseDate("14/03/2025")
	assert.Error(t, err)
}

func TestRoundToQuarterHour(t *testing.T) {
	assert.Equal(t, 7.75, RoundToQuarterHour(7.8))
	assert.Equal(t, 8.0, RoundToQuarterHour(7.9))
	assert.Equal(t, 0.25, RoundToQuarterHour(0.2))
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8.5, tod.Hours())
	assert.Equal(t, "08:30:00", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	raw, err := json.Marshal(NewTimeOfDay(17, 5, 9))
	require.NoError(t, err)
	assert.JSONEq(t, `"17:05:09"`, string(raw))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"12:15:00"`), &decoded))
	assert.Equal(t, NewTimeOfDay(12, 15, 0), decoded)
}

func TestTimeOfDay_PgTypeRoundTrip(t *testing.T) {
	in := NewTimeOfDay(13, 45, 0)
	v, err := in.TimeValue()
	require.NoError(t, err)
	assert.True(t, v.Valid)

	var out TimeOfDay
	require.NoError(t, out.ScanTime(v))
	assert.Equal(t, in, out)

	assert.Error(t, out.ScanTime(pgtype.Time{}))
}

func TestHoursBetweenAndSpanning(t *testing.T) {
	start := NewTimeOfDay(8, 0, 0)
	end := NewTimeOfDay(17, 0, 0)
	assert.Equal(t, 9.0, HoursBetween(start, end))
	assert.Equal(t, 9.0, HoursSpanning(start, end))

	night := NewTimeOfDay(22, 0, 0)
	morning := NewTimeOfDay(6, 0, 0)
	assert.Equal(t, -16.0, HoursBetween(night, morning))
	assert.Equal(t, 8.0, HoursSpanning(night, morning))
}
