package repository

import (
	"context"
	"time"

	"venuehub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RequestID     string    `gorm:"column:request_id;index"`
	SpaceID       int64     `gorm:"column:space_id;index"`
	ClientID      int64     `gorm:"column:client_id;index"`
	Day           time.Time `gorm:"column:day"`
	StartMinute   int       `gorm:"column:start_minute"`
	EndMinute     int       `gorm:"column:end_minute"`
	Guests        int       `gorm:"column:guests"`
	Price         float64   `gorm:"column:price"`
	ProtectionFee float64   `gorm:"column:protection_fee"`
	Tier          *string   `gorm:"column:tier"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var tier string
	if m.Tier != nil {
		tier = *m.Tier
	}

	return &domain.Booking{
		ID:            m.ID,
		RequestID:     m.RequestID,
		SpaceID:       m.SpaceID,
		ClientID:      m.ClientID,
		Day:           m.Day,
		StartMinute:   m.StartMinute,
		EndMinute:     m.EndMinute,
		Guests:        m.Guests,
		Price:         m.Price,
		ProtectionFee: m.ProtectionFee,
		Tier:          tier,
		Status:        domain.BookingStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var tier *string
	if b.Tier != "" {
		v := b.Tier
		tier = &v
	}

	return bookingModel{
		ID:            b.ID,
		RequestID:     b.RequestID,
		SpaceID:       b.SpaceID,
		ClientID:      b.ClientID,
		Day:           b.Day,
		StartMinute:   b.StartMinute,
		EndMinute:     b.EndMinute,
		Guests:        b.Guests,
		Price:         b.Price,
		ProtectionFee: b.ProtectionFee,
		Tier:          tier,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// CreateAll inserts every slot of one submission in a single transaction,
// so a request either occupies the calendar completely or not at all. The
// idx_no_overbooking exclusion constraint fires here under concurrent
// submissions; callers inspect the returned error for it.
func (r *BookingRepository) CreateAll(ctx context.Context, bookings []*domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range bookings {
			m := toBookingModel(b)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			*b = *toDomainBooking(m)
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// OccupiedSlot is the compact calendar view the availability resolver
// consumes: one interval per non-rejected booking.
type OccupiedSlot struct {
	Day         time.Time `gorm:"column:day"`
	StartMinute int       `gorm:"column:start_minute"`
	EndMinute   int       `gorm:"column:end_minute"`
}

func (r *BookingRepository) GetOccupiedSlots(ctx context.Context, spaceID int64, from, to time.Time) ([]OccupiedSlot, error) {
	var rows []OccupiedSlot
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("day", "start_minute", "end_minute").
		Where("space_id = ?", spaceID).
		Where("status IN ?", []string{
			string(domain.BookingPending),
			string(domain.BookingSelected),
			string(domain.BookingApproved),
		}).
		Where("day >= ? AND day < ?", from, to).
		Order("day, start_minute").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// CheckAvailability is the last advisory read before insert. The
// authoritative answer remains the exclusion constraint evaluated at
// write time.
func (r *BookingRepository) CheckAvailability(ctx context.Context, spaceID int64, day time.Time, startMinute, endMinute int) (bool, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE space_id = ?
  AND day = ?
  AND status NOT IN ('rejected')
  AND start_minute < ?
  AND ? < end_minute
`
	tx := r.db.WithContext(ctx).Raw(q, spaceID, day, endMinute, startMinute).Scan(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

// UpdateStatusByRequest moves every slot of a submission together.
func (r *BookingRepository) UpdateStatusByRequest(ctx context.Context, requestID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("request_id = ?", requestID).
		Update("status", status).Error
}

// GetSpaceHostForBooking returns the booking's space host and current
// status in one query, for ownership checks on approve/reject.
func (r *BookingRepository) GetSpaceHostForBooking(ctx context.Context, bookingID int64) (int64, string, error) {
	var row struct {
		HostID int64  `gorm:"column:host_id"`
		Status string `gorm:"column:status"`
	}
	q := `
SELECT s.host_id, b.status
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&row)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	return row.HostID, row.Status, nil
}

// ClientBookingDetails is a booking row joined with its space for list views.
type ClientBookingDetails struct {
	ID          int64     `gorm:"column:id"`
	RequestID   string    `gorm:"column:request_id"`
	Day         time.Time `gorm:"column:day"`
	StartMinute int       `gorm:"column:start_minute"`
	EndMinute   int       `gorm:"column:end_minute"`
	Price       float64   `gorm:"column:price"`
	Status      string    `gorm:"column:status"`
	SpaceID     int64     `gorm:"column:space_id"`
	SpaceName   string    `gorm:"column:space_name"`
}

func (r *BookingRepository) GetClientBookings(ctx context.Context, clientID int64, limit, offset int) ([]ClientBookingDetails, error) {
	var rows []ClientBookingDetails
	q := `
SELECT b.id, b.request_id, b.day, b.start_minute, b.end_minute, b.price, b.status,
       s.id AS space_id, s.name AS space_name
FROM bookings b
JOIN spaces s ON s.id = b.space_id
WHERE b.client_id = ?
ORDER BY b.day DESC, b.start_minute DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, clientID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) GetBySpace(ctx context.Context, spaceID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("day, start_minute").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
