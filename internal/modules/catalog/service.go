package catalog

import (
	"context"
	"errors"

	"venuehub/internal/domain"
	"venuehub/internal/repository"
)

var ErrForbidden = errors.New("forbidden")

type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) error
	Update(ctx context.Context, space *domain.Space) error
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	GetAll(ctx context.Context, f repository.SpaceFilters) ([]domain.Space, int64, error)
	GetByHost(ctx context.Context, hostID int64) ([]domain.Space, error)
}

type Service struct {
	spaces SpaceRepository
}

func NewService(spaces SpaceRepository) *Service {
	return &Service{spaces: spaces}
}

func (s *Service) CreateSpace(ctx context.Context, user *domain.User, req CreateSpaceRequest) (*domain.Space, error) {
	if user.Role != domain.RoleHost {
		return nil, ErrForbidden
	}

	space := &domain.Space{
		HostID:               user.ID,
		Name:                 req.Name,
		Description:          req.Description,
		Address:              req.Address,
		City:                 req.City,
		HourlyPrice:          req.HourlyPrice,
		Currency:             req.Currency,
		MaxGuests:            req.MaxGuests,
		AllowZeroGuests:      req.AllowZeroGuests,
		FullDayHours:         req.FullDayHours,
		FullDayDiscountPrice: req.FullDayDiscountPrice,
		CooldownMinutes:      req.CooldownMinutes,
		BlockedWeekdays:      req.BlockedWeekdays,
		OperatingHours:       req.OperatingHours,
		IsActive:             true,
	}

	if err := s.spaces.Create(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *Service) UpdateSpace(ctx context.Context, userID, spaceID int64, req UpdateSpaceRequest) (*domain.Space, error) {
	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}
	if space.HostID != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		space.Name = *req.Name
	}
	if req.Description != nil {
		space.Description = *req.Description
	}
	if req.Address != nil {
		space.Address = *req.Address
	}
	if req.City != nil {
		space.City = *req.City
	}
	if req.HourlyPrice != nil {
		space.HourlyPrice = *req.HourlyPrice
	}
	if req.Currency != nil {
		space.Currency = *req.Currency
	}
	if req.MaxGuests != nil {
		space.MaxGuests = *req.MaxGuests
	}
	if req.AllowZeroGuests != nil {
		space.AllowZeroGuests = *req.AllowZeroGuests
	}
	if req.FullDayHours != nil {
		space.FullDayHours = *req.FullDayHours
	}
	if req.FullDayDiscountPrice != nil {
		space.FullDayDiscountPrice = *req.FullDayDiscountPrice
	}
	if req.CooldownMinutes != nil {
		space.CooldownMinutes = *req.CooldownMinutes
	}
	if req.BlockedWeekdays != nil {
		space.BlockedWeekdays = *req.BlockedWeekdays
	}
	if req.OperatingHours != nil {
		space.OperatingHours = *req.OperatingHours
	}
	if req.IsActive != nil {
		space.IsActive = *req.IsActive
	}

	if err := s.spaces.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *Service) GetSpace(ctx context.Context, spaceID int64) (*domain.Space, error) {
	return s.spaces.GetByID(ctx, spaceID)
}

func (s *Service) ListSpaces(ctx context.Context, f repository.SpaceFilters) ([]domain.Space, int64, error) {
	return s.spaces.GetAll(ctx, f)
}

func (s *Service) GetSpacesByHost(ctx context.Context, hostID int64) ([]domain.Space, error) {
	return s.spaces.GetByHost(ctx, hostID)
}
