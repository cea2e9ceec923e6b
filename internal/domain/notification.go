package domain

import (
	"database/sql"
	"time"
)

const (
	NotificationBookingRequested = "booking.requested"
	NotificationBookingApproved  = "booking.approved"
	NotificationBookingRejected  = "booking.rejected"
)

type Notification struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	RequestID string       `json:"request_id"`
	SpaceID   int64        `json:"space_id"`
	ReadAt    sql.NullTime `json:"read_at"`
	CreatedAt time.Time    `json:"created_at"`
}

func (n *Notification) IsRead() bool {
	return n.ReadAt.Valid
}
