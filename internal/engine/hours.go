package engine

import "encoding/json"

// DayHours is one weekday's operating window in minutes from midnight.
// Close <= Open means the space is closed that day.
type DayHours struct {
	Open  int
	Close int
}

// WeekHours maps weekday index (Sunday=0) to that day's operating window.
// A nil map means no schedule is configured and the default applies to
// every weekday; a non-nil map with a missing weekday means closed.
type WeekHours map[int]DayHours

// DefaultDayHours is the schedule used when a space has none configured.
var DefaultDayHours = DayHours{Open: 9 * MinutesPerHour, Close: 21 * MinutesPerHour}

var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

type rawDayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// ParseOperatingHours decodes the stored JSON schedule, a map of weekday
// name to {"open":"HH:MM","close":"HH:MM"}. Malformed input is defaulted
// rather than rejected: an undecodable document yields nil, an undecodable
// day is treated as closed.
func ParseOperatingHours(raw json.RawMessage) WeekHours {
	if len(raw) == 0 {
		return nil
	}

	var byName map[string]rawDayHours
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil
	}

	week := make(WeekHours, len(byName))
	for wd, name := range weekdayNames {
		v, ok := byName[name]
		if !ok || v.Open == "" || v.Close == "" {
			continue
		}
		open, err := ParseClock(v.Open)
		if err != nil {
			continue
		}
		close, err := ParseClock(v.Close)
		if err != nil {
			continue
		}
		week[wd] = DayHours{Open: open, Close: close}
	}
	return week
}

// For returns the operating window for a weekday.
func (w WeekHours) For(weekday int) DayHours {
	if w == nil {
		return DefaultDayHours
	}
	return w[weekday]
}
