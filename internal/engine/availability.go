package engine

const DefaultFullDayHours = 8

// Config is the snapshot of a space's booking rules used by one
// computation. Zero values are safe: missing pieces fall back to defaults
// instead of failing the booking flow.
type Config struct {
	HourlyPrice          float64
	Currency             string
	MaxGuests            int // 0 means no declared limit
	AllowZeroGuests      bool
	FullDayHours         int     // 0 means DefaultFullDayHours
	FullDayDiscountPrice float64 // 0 disables the full-day tier
	CooldownMinutes      int
	BlockedWeekdays      []int
	Hours                WeekHours
}

func (c Config) fullDayHours() int {
	if c.FullDayHours <= 0 {
		return DefaultFullDayHours
	}
	return c.FullDayHours
}

func (c Config) cooldown() int {
	if c.CooldownMinutes < 0 {
		return 0
	}
	return c.CooldownMinutes
}

func (c Config) blockedOn(weekday int) bool {
	for _, wd := range c.BlockedWeekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// Slot is a (date, start, end) interval on a space, times in minutes from
// midnight. Intervals are half-open: a booking ending at End does not
// conflict with one starting exactly at End (absent cooldown).
type Slot struct {
	Day   Date
	Start int
	End   int
}

// Window is an occupying booking's interval. Callers pass only bookings
// whose status blocks the calendar; rejected ones must be filtered out.
type Window struct {
	Day   Date
	Start int
	End   int
}

// DateRange is the requested horizon: Days calendar days starting at From.
type DateRange struct {
	From Date
	Days int
}

// Availability is the bookable-slot set for a date range. Dates with no
// free slots are omitted from both fields.
type Availability struct {
	BookableDates []Date
	SlotsByDate   map[Date][]Slot
}

// Has reports whether the hourly slot starting at start on day is bookable.
func (a Availability) Has(day Date, start int) bool {
	for _, s := range a.SlotsByDate[day] {
		if s.Start == start {
			return true
		}
	}
	return false
}

// ResolveAvailability computes the bookable hourly slots for each date in
// the range. A date is excluded entirely when it lies before now's day or
// its weekday is blocked. On now's own day, slots whose start is not
// strictly after now are excluded. A slot is excluded when it intersects
// any occupying window widened by the cooldown on both sides; the widened
// window is evaluated only against slots on the same date, so a cooldown
// that pushes past midnight does not spill into the next day.
func ResolveAvailability(cfg Config, booked []Window, rng DateRange, now Moment) Availability {
	avail := Availability{SlotsByDate: make(map[Date][]Slot)}

	for i := 0; i < rng.Days; i++ {
		day := rng.From.AddDays(i)
		if day.Before(now.Day) || cfg.blockedOn(day.Weekday()) {
			continue
		}

		window := cfg.Hours.For(day.Weekday())
		var slots []Slot
		for start := window.Open; start+MinutesPerHour <= window.Close; start += MinutesPerHour {
			if day == now.Day && start <= now.Minute {
				continue
			}
			if conflictsAny(day, start, start+MinutesPerHour, booked, cfg.cooldown()) {
				continue
			}
			slots = append(slots, Slot{Day: day, Start: start, End: start + MinutesPerHour})
		}

		if len(slots) > 0 {
			avail.BookableDates = append(avail.BookableDates, day)
			avail.SlotsByDate[day] = slots
		}
	}

	return avail
}

func conflictsAny(day Date, start, end int, booked []Window, cooldown int) bool {
	for _, w := range booked {
		if w.Day != day {
			continue
		}
		// Half-open intersection: [a,b) and [c,d) conflict iff a < d && c < b.
		if start < w.End+cooldown && w.Start-cooldown < end {
			return true
		}
	}
	return false
}
