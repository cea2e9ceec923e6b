package engine

import "fmt"

// Line is one slot's share of a quote, produced in request order.
type Line struct {
	Day       Date    `json:"day"`
	TimeRange string  `json:"time_range"`
	Hours     int     `json:"hours"`
	Price     float64 `json:"price"`
	Tier      string  `json:"tier"` // "<n>h" or "<k> full day(s) + <m>h"
}

// Quote is the pricing breakdown for a submission.
// FinalTotal == Subtotal + ProtectionPlanFee always holds.
type Quote struct {
	Lines             []Line  `json:"lines"`
	Subtotal          float64 `json:"subtotal"`
	ProtectionPlanFee float64 `json:"protection_plan_fee"`
	FinalTotal        float64 `json:"final_total"`
}

// ComputePricing converts already-validated slots into a quote. A slot
// meeting the full-day threshold is priced by repeated floor division over
// FullDayHours, so a 30-hour span with an 8-hour day is 3 full days plus 6
// hourly hours, regardless of calendar-day boundaries. The protection-plan
// fee is a caller-supplied amount (its availability is decided by an
// external policy) added once, never per slot. No rounding happens here;
// currency formatting belongs to the display layer.
func ComputePricing(slots []Slot, cfg Config, planSelected bool, planFee float64) (Quote, error) {
	q := Quote{Lines: make([]Line, 0, len(slots))}

	for _, s := range slots {
		minutes := s.End - s.Start
		if minutes <= 0 || minutes%MinutesPerHour != 0 {
			return Quote{}, &ConflictError{Reason: ErrInvalidRange, Slot: s}
		}
		hours := minutes / MinutesPerHour

		line := Line{
			Day:       s.Day,
			TimeRange: FormatClock(s.Start) + "-" + FormatClock(s.End),
			Hours:     hours,
		}

		fullDay := cfg.fullDayHours()
		if hours >= fullDay && cfg.FullDayDiscountPrice > 0 {
			fullDays := hours / fullDay
			rem := hours % fullDay
			line.Price = float64(fullDays)*cfg.FullDayDiscountPrice + float64(rem)*cfg.HourlyPrice
			if rem == 0 {
				line.Tier = fmt.Sprintf("%d full day(s)", fullDays)
			} else {
				line.Tier = fmt.Sprintf("%d full day(s) + %dh", fullDays, rem)
			}
		} else {
			line.Price = float64(hours) * cfg.HourlyPrice
			line.Tier = fmt.Sprintf("%dh", hours)
		}

		q.Lines = append(q.Lines, line)
		q.Subtotal += line.Price
	}

	if planSelected {
		q.ProtectionPlanFee = planFee
	}
	q.FinalTotal = q.Subtotal + q.ProtectionPlanFee

	return q, nil
}
