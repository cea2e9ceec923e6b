package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sunday  = Date{2026, time.August, 30}
	monday  = Date{2026, time.August, 31}
	tuesday = Date{2026, time.September, 1}
)

func allWeek(open, close int) WeekHours {
	week := make(WeekHours, 7)
	for wd := 0; wd < 7; wd++ {
		week[wd] = DayHours{Open: open, Close: close}
	}
	return week
}

func earlyMorning(day Date) Moment {
	return Moment{Day: day, Minute: 0}
}

func TestResolveAvailability_DefaultSchedule(t *testing.T) {
	avail := ResolveAvailability(Config{}, nil, DateRange{From: monday, Days: 1}, earlyMorning(monday))

	require.Equal(t, []Date{monday}, avail.BookableDates)
	slots := avail.SlotsByDate[monday]
	// 09:00 through 20:00 starts within the default 09:00-21:00 window.
	require.Len(t, slots, 12)
	assert.Equal(t, Slot{Day: monday, Start: 540, End: 600}, slots[0])
	assert.Equal(t, Slot{Day: monday, Start: 1200, End: 1260}, slots[11])
}

func TestResolveAvailability_Deterministic(t *testing.T) {
	cfg := Config{CooldownMinutes: 30, BlockedWeekdays: []int{0}}
	booked := []Window{{Day: monday, Start: 600, End: 720}}
	rng := DateRange{From: sunday, Days: 5}
	now := Moment{Day: sunday, Minute: 615}

	first := ResolveAvailability(cfg, booked, rng, now)
	second := ResolveAvailability(cfg, booked, rng, now)
	assert.Equal(t, first, second)
}

func TestResolveAvailability_BlockedWeekday(t *testing.T) {
	cfg := Config{BlockedWeekdays: []int{0}} // Sundays never bookable

	avail := ResolveAvailability(cfg, nil, DateRange{From: sunday, Days: 3}, earlyMorning(sunday))

	assert.Equal(t, []Date{monday, tuesday}, avail.BookableDates)
	assert.NotContains(t, avail.SlotsByDate, sunday)
}

func TestResolveAvailability_PastDatesExcluded(t *testing.T) {
	avail := ResolveAvailability(Config{}, nil, DateRange{From: sunday, Days: 2}, earlyMorning(monday))

	assert.Equal(t, []Date{monday}, avail.BookableDates)
}

func TestResolveAvailability_PastTimeOnToday(t *testing.T) {
	now := Moment{Day: monday, Minute: 10*60 + 30}

	avail := ResolveAvailability(Config{}, nil, DateRange{From: monday, Days: 1}, now)

	slots := avail.SlotsByDate[monday]
	require.NotEmpty(t, slots)
	// A slot that already started never shows up; 10:00 <= now < 11:00.
	assert.Equal(t, 660, slots[0].Start)
	for _, s := range slots {
		assert.Greater(t, s.Start, now.Minute)
	}
}

func TestResolveAvailability_CooldownSymmetry(t *testing.T) {
	// Booking ends 12:00, cooldown 60: starts before 13:00 are excluded,
	// 13:00 itself is included.
	cfg := Config{CooldownMinutes: 60}
	booked := []Window{{Day: monday, Start: 600, End: 720}}

	avail := ResolveAvailability(cfg, booked, DateRange{From: monday, Days: 1}, earlyMorning(monday))

	assert.False(t, avail.Has(monday, 720))
	assert.True(t, avail.Has(monday, 780))
	// Symmetric on the leading side: starts at 08:00 fit before 09:00-60m.
	assert.False(t, avail.Has(monday, 540))
	assert.False(t, avail.Has(monday, 480)) // outside operating hours anyway
}

func TestResolveAvailability_ZeroCooldownBackToBack(t *testing.T) {
	booked := []Window{{Day: monday, Start: 600, End: 720}}

	avail := ResolveAvailability(Config{}, booked, DateRange{From: monday, Days: 1}, earlyMorning(monday))

	assert.True(t, avail.Has(monday, 720))
	assert.True(t, avail.Has(monday, 540))
	assert.False(t, avail.Has(monday, 600))
	assert.False(t, avail.Has(monday, 660))
}

func TestResolveAvailability_NoSelfConflict(t *testing.T) {
	cfg := Config{CooldownMinutes: 45}
	booked := []Window{
		{Day: monday, Start: 540, End: 660},
		{Day: monday, Start: 900, End: 960},
		{Day: tuesday, Start: 600, End: 720},
	}

	avail := ResolveAvailability(cfg, booked, DateRange{From: monday, Days: 2}, earlyMorning(monday))

	for day, slots := range avail.SlotsByDate {
		for _, s := range slots {
			for _, w := range booked {
				if w.Day != day {
					continue
				}
				overlap := s.Start < w.End+cfg.CooldownMinutes && w.Start-cfg.CooldownMinutes < s.End
				assert.False(t, overlap, "slot %s %s overlaps booking %v", day, FormatClock(s.Start), w)
			}
		}
	}
}

func TestResolveAvailability_CooldownStopsAtMidnight(t *testing.T) {
	// A booking ending 23:30 with a 60-minute cooldown does not block the
	// next day's 00:00 slot: cooldown is evaluated per date only.
	cfg := Config{CooldownMinutes: 60, Hours: allWeek(0, 24*60)}
	booked := []Window{{Day: monday, Start: 22*60 + 30, End: 23*60 + 30}}

	avail := ResolveAvailability(cfg, booked, DateRange{From: monday, Days: 2}, earlyMorning(monday))

	assert.False(t, avail.Has(monday, 23*60))
	assert.True(t, avail.Has(tuesday, 0))
}

func TestResolveAvailability_ClosedDayYieldsNoSlots(t *testing.T) {
	week := WeekHours{1: {Open: 600, Close: 600}} // Monday open == close
	avail := ResolveAvailability(Config{Hours: week}, nil, DateRange{From: monday, Days: 1}, earlyMorning(monday))

	assert.Empty(t, avail.BookableDates)
}
