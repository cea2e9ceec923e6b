// Package engine is the booking availability and pricing core. It is pure:
// given a snapshot of a space's configuration and its occupying bookings it
// always returns the same result. All calendar arithmetic happens in one
// fixed timezone supplied at construction; nothing here reads the wall clock.
package engine

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	MinutesPerHour = 60
)

// Date is a calendar day with no time-of-day and no timezone attached.
// Comparable, usable as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the weekday index, Sunday=0.
func (d Date) Weekday() int {
	return int(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) IsZero() bool { return d == Date{} }

// DaysUntil returns the number of calendar days from d to o, negative when
// o is earlier.
func (d Date) DaysUntil(o Date) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(o.Year, o.Month, o.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Moment is a "now" reference: a calendar day plus minutes from midnight,
// both already in the space's timezone. Comparisons in the resolver are
// day- and clock-based, never instant-based.
type Moment struct {
	Day    Date
	Minute int
}

// Calendar converts caller input to dates in one fixed local timezone, so a
// client in another zone never sees an off-by-one day. No other package may
// parse dates.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location { return c.loc }

// ParseDate parses a bare YYYY-MM-DD string as a local calendar date.
func (c Calendar) ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, c.loc)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates an instant to its calendar date in the fixed timezone.
func (c Calendar) DateOf(t time.Time) Date {
	t = t.In(c.loc)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// At converts an instant (typically time.Now()) to a Moment.
func (c Calendar) At(t time.Time) Moment {
	t = t.In(c.loc)
	return Moment{Day: c.DateOf(t), Minute: t.Hour()*MinutesPerHour + t.Minute()}
}

// FormatClock renders minutes from midnight as HH:MM.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/MinutesPerHour, minute%MinutesPerHour)
}

// ParseClock parses an HH:MM string to minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t.Hour()*MinutesPerHour + t.Minute(), nil
}
