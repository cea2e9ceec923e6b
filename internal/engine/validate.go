package engine

// ValidateSlots checks one booking submission against the resolved
// availability and against itself. Checks run in order and stop at the
// first failure:
//
//  1. every requested slot's (date, start) appears in the availability set
//  2. start < end and the span is a whole number of hours
//  3. every further hour a slot covers is also available
//  4. no two requested slots overlap each other (cooldown does not apply
//     within one submission)
//  5. the guest count fits the space's declared limit
//
// The verdict is advisory: two clients can both pass it before either
// booking is persisted. The write boundary re-checks atomically via the
// no-overbooking constraint.
func ValidateSlots(requested []Slot, avail Availability, guests int, cfg Config) error {
	for _, s := range requested {
		if !avail.Has(s.Day, s.Start) {
			return &ConflictError{Reason: ErrSlotUnavailable, Slot: s}
		}
	}

	for _, s := range requested {
		if s.Start >= s.End || (s.End-s.Start)%MinutesPerHour != 0 {
			return &ConflictError{Reason: ErrInvalidRange, Slot: s}
		}
	}

	for _, s := range requested {
		for m := s.Start + MinutesPerHour; m < s.End; m += MinutesPerHour {
			if !avail.Has(s.Day, m) {
				return &ConflictError{
					Reason: ErrSlotUnavailable,
					Slot:   Slot{Day: s.Day, Start: m, End: m + MinutesPerHour},
				}
			}
		}
	}

	for i := 0; i < len(requested); i++ {
		for j := i + 1; j < len(requested); j++ {
			a, b := requested[i], requested[j]
			if a.Day != b.Day {
				continue
			}
			if a.Start < b.End && b.Start < a.End {
				return &ConflictError{Reason: ErrSelfOverlap, Slot: b}
			}
		}
	}

	if cfg.MaxGuests > 0 {
		min := 1
		if cfg.AllowZeroGuests {
			min = 0
		}
		if guests < min || guests > cfg.MaxGuests {
			return ErrGuestCountOutOfRange
		}
	}

	return nil
}
