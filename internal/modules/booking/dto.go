package booking

import "venuehub/internal/engine"

// SlotRequest is one requested (date, start, end) triple as submitted by
// the client, times as HH:MM clock strings.
type SlotRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type CreateBookingRequest struct {
	SpaceID        int64         `json:"space_id" binding:"required"`
	ClientID       int64         `json:"-"`
	Guests         int           `json:"guests"`
	Slots          []SlotRequest `json:"slots" binding:"required"`
	ProtectionPlan bool          `json:"protection_plan"`
}

type QuoteRequest struct {
	SpaceID        int64         `json:"space_id" binding:"required"`
	Guests         int           `json:"guests"`
	Slots          []SlotRequest `json:"slots" binding:"required"`
	ProtectionPlan bool          `json:"protection_plan"`
}

type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	SpaceID       int64                 `json:"space_id"`
	From          string                `json:"from"`
	Days          int                   `json:"days"`
	BookableDates []string              `json:"bookable_dates"`
	SlotsByDate   map[string][]SlotView `json:"slots_by_date"`
}

type BookingSummary struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

type CreateBookingResult struct {
	RequestID string           `json:"request_id"`
	Bookings  []BookingSummary `json:"bookings"`
	Quote     engine.Quote     `json:"quote"`
}
