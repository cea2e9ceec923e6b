package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var almaty = time.FixedZone("UTC+5", 5*60*60)

func TestCalendar_ParseDate(t *testing.T) {
	cal := NewCalendar(almaty)

	d, err := cal.ParseDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 30}, d)
	assert.Equal(t, "2026-08-30", d.String())
}

func TestCalendar_ParseDate_Invalid(t *testing.T) {
	cal := NewCalendar(almaty)

	for _, in := range []string{"", "30-08-2026", "2026/08/30", "2026-8-30", "not-a-date"} {
		_, err := cal.ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, "input %q", in)
	}
}

func TestCalendar_DateOf_FixedTimezone(t *testing.T) {
	cal := NewCalendar(almaty)

	// 22:30 UTC is already the next calendar day at UTC+5. The caller's
	// own zone must never leak into the result.
	instant := time.Date(2026, 8, 29, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 30}, cal.DateOf(instant))
}

func TestCalendar_At(t *testing.T) {
	cal := NewCalendar(almaty)

	now := cal.At(time.Date(2026, 8, 30, 5, 30, 0, 0, time.UTC)) // 10:30 local
	assert.Equal(t, Date{Year: 2026, Month: time.August, Day: 30}, now.Day)
	assert.Equal(t, 10*60+30, now.Minute)
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, 6, Date{2026, time.August, 29}.Weekday()) // Saturday
	assert.Equal(t, 0, Date{2026, time.August, 30}.Weekday()) // Sunday
	assert.Equal(t, 1, Date{2026, time.August, 31}.Weekday()) // Monday
}

func TestDate_AddDays_MonthRollover(t *testing.T) {
	d := Date{2026, time.August, 30}.AddDays(3)
	assert.Equal(t, Date{2026, time.September, 2}, d)
}

func TestDate_Before(t *testing.T) {
	a := Date{2026, time.August, 30}
	b := Date{2026, time.September, 1}
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "23:30", FormatClock(23*60+30))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestParseOperatingHours(t *testing.T) {
	week := ParseOperatingHours([]byte(`{"wednesday":{"open":"10:00","close":"18:00"}}`))
	require.NotNil(t, week)

	assert.Equal(t, DayHours{Open: 600, Close: 1080}, week.For(3))
	// Configured schedule without an entry for Monday means closed.
	assert.Equal(t, DayHours{}, week.For(1))
}

func TestParseOperatingHours_MalformedDefaults(t *testing.T) {
	assert.Nil(t, ParseOperatingHours(nil))
	assert.Nil(t, ParseOperatingHours([]byte(`not json`)))

	// No schedule at all falls back to 09:00-21:00 for every day.
	var week WeekHours
	assert.Equal(t, DefaultDayHours, week.For(0))
	assert.Equal(t, DefaultDayHours, week.For(5))
}

func TestParseOperatingHours_BadDayIsClosed(t *testing.T) {
	week := ParseOperatingHours([]byte(`{"monday":{"open":"nope","close":"18:00"},"tuesday":{"open":"08:00","close":"20:00"}}`))
	require.NotNil(t, week)
	assert.Equal(t, DayHours{}, week.For(1))
	assert.Equal(t, DayHours{Open: 480, Close: 1200}, week.For(2))
}
