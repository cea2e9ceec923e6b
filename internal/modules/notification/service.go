package notification

import (
	"context"
	"fmt"
	"time"

	"venuehub/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// Service persists notifications and pushes them to online users over the
// websocket hub. It implements the sender interface the booking module
// expects.
type Service struct {
	repo NotificationRepository
	hub  *Hub
}

func NewService(repo NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) NotifyBookingRequested(ctx context.Context, hostID int64, requestID string, spaceID int64, slots int) error {
	n := &domain.Notification{
		UserID:    hostID,
		Type:      domain.NotificationBookingRequested,
		Title:     "New booking request",
		Body:      fmt.Sprintf("A client requested %d slot(s) at your space", slots),
		RequestID: requestID,
		SpaceID:   spaceID,
		CreatedAt: time.Now(),
	}
	return s.deliver(ctx, n)
}

func (s *Service) NotifyBookingDecision(ctx context.Context, clientID int64, requestID string, spaceID int64, status domain.BookingStatus) error {
	typ := domain.NotificationBookingRejected
	body := "Your booking request was declined"
	if status == domain.BookingApproved {
		typ = domain.NotificationBookingApproved
		body = "Your booking request was approved"
	}

	n := &domain.Notification{
		UserID:    clientID,
		Type:      typ,
		Title:     "Booking update",
		Body:      body,
		RequestID: requestID,
		SpaceID:   spaceID,
		CreatedAt: time.Now(),
	}
	return s.deliver(ctx, n)
}

func (s *Service) deliver(ctx context.Context, n *domain.Notification) error {
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.SendToUser(n.UserID, n)
	}
	return nil
}

func (s *Service) GetMyNotifications(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error) {
	return s.repo.GetByUser(ctx, userID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
