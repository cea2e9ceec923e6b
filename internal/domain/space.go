package domain

import (
	"encoding/json"
	"time"
)

// Space is a bookable venue listed by a host. Pricing and calendar rules
// (cooldown, blocked weekdays, operating hours) live on the space and are
// immutable during a single availability/pricing computation.
type Space struct {
	ID          int64  `json:"id"`
	HostID      int64  `json:"host_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`

	HourlyPrice          float64 `json:"hourly_price" validate:"required,gte=0"`
	Currency             string  `json:"currency"`
	MaxGuests            int     `json:"max_guests"`
	AllowZeroGuests      bool    `json:"allow_zero_guests"`
	FullDayHours         int     `json:"full_day_hours"`          // hours that count as one full day, 8 if unset
	FullDayDiscountPrice float64 `json:"full_day_discount_price"` // flat price per full day, 0 disables the tier
	CooldownMinutes      int     `json:"cooldown_minutes"`        // mandatory gap between bookings

	// Weekday indices 0-6, Sunday=0, permanently unbookable.
	BlockedWeekdays []int `json:"blocked_weekdays,omitempty"`

	// JSON map weekday name -> {"open":"09:00","close":"21:00"}.
	// Empty means the default schedule applies.
	OperatingHours json.RawMessage `json:"operating_hours,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
