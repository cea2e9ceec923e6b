package booking

import (
	"context"
	"time"

	"venuehub/internal/domain"
	"venuehub/internal/repository"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	CreateAll(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetOccupiedSlots(ctx context.Context, spaceID int64, from, to time.Time) ([]repository.OccupiedSlot, error)
	UpdateStatusByRequest(ctx context.Context, requestID string, status string) error
	GetSpaceHostForBooking(ctx context.Context, bookingID int64) (hostID int64, status string, err error)
	GetClientBookings(ctx context.Context, clientID int64, limit, offset int) ([]repository.ClientBookingDetails, error)
}

// SpaceRepository exposes the space configuration snapshot.
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// NotificationSender delivers booking lifecycle events; nil disables it.
type NotificationSender interface {
	NotifyBookingRequested(ctx context.Context, hostID int64, requestID string, spaceID int64, slots int) error
	NotifyBookingDecision(ctx context.Context, clientID int64, requestID string, spaceID int64, status domain.BookingStatus) error
}

// ProtectionPlanProvider decides whether the optional protection plan is
// offered for a space and at what flat fee. The engine never computes the
// fee itself.
type ProtectionPlanProvider interface {
	Fee(ctx context.Context, spaceID int64) (fee float64, available bool, err error)
}
