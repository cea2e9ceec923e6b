package catalog

import "encoding/json"

type CreateSpaceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city" validate:"required"`

	HourlyPrice          float64 `json:"hourly_price" validate:"required,gte=0"`
	Currency             string  `json:"currency" validate:"required,len=3"`
	MaxGuests            int     `json:"max_guests" validate:"gte=0"`
	AllowZeroGuests      bool    `json:"allow_zero_guests"`
	FullDayHours         int     `json:"full_day_hours" validate:"gte=0,lte=24"`
	FullDayDiscountPrice float64 `json:"full_day_discount_price" validate:"gte=0"`
	CooldownMinutes      int     `json:"cooldown_minutes" validate:"gte=0"`

	BlockedWeekdays []int           `json:"blocked_weekdays" validate:"dive,gte=0,lte=6"`
	OperatingHours  json.RawMessage `json:"operating_hours"`
}

type UpdateSpaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`

	HourlyPrice          *float64 `json:"hourly_price,omitempty" validate:"omitempty,gte=0"`
	Currency             *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	MaxGuests            *int     `json:"max_guests,omitempty" validate:"omitempty,gte=0"`
	AllowZeroGuests      *bool    `json:"allow_zero_guests,omitempty"`
	FullDayHours         *int     `json:"full_day_hours,omitempty" validate:"omitempty,gte=0,lte=24"`
	FullDayDiscountPrice *float64 `json:"full_day_discount_price,omitempty" validate:"omitempty,gte=0"`
	CooldownMinutes      *int     `json:"cooldown_minutes,omitempty" validate:"omitempty,gte=0"`

	BlockedWeekdays *[]int           `json:"blocked_weekdays,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
	OperatingHours  *json.RawMessage `json:"operating_hours,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}
