package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingSelected BookingStatus = "selected"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
)

// Occupies reports whether a booking in this status blocks the calendar.
// Rejected bookings never do.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingSelected || s == BookingApproved
}

// Booking is one reserved slot on a space. A multi-slot submission creates
// one row per slot, all sharing a RequestID. Rows are never deleted; the
// lifecycle is status-only.
type Booking struct {
	ID        int64  `json:"id"`
	RequestID string `json:"request_id"`
	SpaceID   int64  `json:"space_id" validate:"required"`
	ClientID  int64  `json:"client_id" validate:"required"`

	Day         time.Time `json:"day"`          // calendar date, midnight, no time-of-day meaning
	StartMinute int       `json:"start_minute"` // minutes from midnight
	EndMinute   int       `json:"end_minute"`
	Guests      int       `json:"guests"`

	Price         float64       `json:"price"`
	ProtectionFee float64       `json:"protection_fee,omitempty"` // recorded on the first slot of a request only
	Tier          string        `json:"tier,omitempty"`
	Status        BookingStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Space *Space `json:"space,omitempty" gorm:"foreignKey:SpaceID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:ClientID"`
}
