package repository

import (
	"context"
	"encoding/json"
	"time"

	"venuehub/internal/domain"

	"gorm.io/gorm"
)

type SpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

type spaceModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	HostID      int64   `gorm:"column:host_id;index"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
	Address     *string `gorm:"column:address"`
	City        *string `gorm:"column:city;index"`

	HourlyPrice          float64 `gorm:"column:hourly_price"`
	Currency             string  `gorm:"column:currency"`
	MaxGuests            int     `gorm:"column:max_guests"`
	AllowZeroGuests      bool    `gorm:"column:allow_zero_guests"`
	FullDayHours         int     `gorm:"column:full_day_hours"`
	FullDayDiscountPrice float64 `gorm:"column:full_day_discount_price"`
	CooldownMinutes      int     `gorm:"column:cooldown_minutes"`

	BlockedWeekdays []byte `gorm:"column:blocked_weekdays;type:json"`
	OperatingHours  []byte `gorm:"column:operating_hours;type:json"`

	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (spaceModel) TableName() string { return "spaces" }

func toDomainSpace(m spaceModel) *domain.Space {
	s := &domain.Space{
		ID:                   m.ID,
		HostID:               m.HostID,
		Name:                 m.Name,
		HourlyPrice:          m.HourlyPrice,
		Currency:             m.Currency,
		MaxGuests:            m.MaxGuests,
		AllowZeroGuests:      m.AllowZeroGuests,
		FullDayHours:         m.FullDayHours,
		FullDayDiscountPrice: m.FullDayDiscountPrice,
		CooldownMinutes:      m.CooldownMinutes,
		OperatingHours:       json.RawMessage(m.OperatingHours),
		IsActive:             m.IsActive,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	if m.Address != nil {
		s.Address = *m.Address
	}
	if m.City != nil {
		s.City = *m.City
	}
	if len(m.BlockedWeekdays) > 0 {
		// Undecodable weekday sets default to empty instead of failing
		// the read; the resolver treats that as "no blocked days".
		_ = json.Unmarshal(m.BlockedWeekdays, &s.BlockedWeekdays)
	}
	return s
}

func toSpaceModel(s *domain.Space) spaceModel {
	m := spaceModel{
		ID:                   s.ID,
		HostID:               s.HostID,
		Name:                 s.Name,
		HourlyPrice:          s.HourlyPrice,
		Currency:             s.Currency,
		MaxGuests:            s.MaxGuests,
		AllowZeroGuests:      s.AllowZeroGuests,
		FullDayHours:         s.FullDayHours,
		FullDayDiscountPrice: s.FullDayDiscountPrice,
		CooldownMinutes:      s.CooldownMinutes,
		OperatingHours:       []byte(s.OperatingHours),
		IsActive:             s.IsActive,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	if s.Description != "" {
		v := s.Description
		m.Description = &v
	}
	if s.Address != "" {
		v := s.Address
		m.Address = &v
	}
	if s.City != "" {
		v := s.City
		m.City = &v
	}
	if s.BlockedWeekdays != nil {
		m.BlockedWeekdays, _ = json.Marshal(s.BlockedWeekdays)
	}
	return m
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	m := toSpaceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpace(m)
	return nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *domain.Space) error {
	m := toSpaceModel(s)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSpace(m)
	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	var m spaceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSpace(m), nil
}

// SpaceFilters narrows the public listing.
type SpaceFilters struct {
	City     string
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
}

func (r *SpaceRepository) GetAll(ctx context.Context, f SpaceFilters) ([]domain.Space, int64, error) {
	q := r.db.WithContext(ctx).Model(&spaceModel{}).Where("is_active = ?", true)
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.MinPrice > 0 {
		q = q.Where("hourly_price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("hourly_price <= ?", f.MaxPrice)
	}

	var total int64
	if tx := q.Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var rows []spaceModel
	tx := q.Order("id").Limit(f.Limit).Offset(f.Offset).Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Space, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSpace(m))
	}
	return out, total, nil
}

func (r *SpaceRepository) GetByHost(ctx context.Context, hostID int64) ([]domain.Space, error) {
	var rows []spaceModel
	tx := r.db.WithContext(ctx).Where("host_id = ?", hostID).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Space, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSpace(m))
	}
	return out, nil
}
