package notification

import (
	"context"
	"testing"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 1
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_NotifyBookingRequested_Persists(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == 7 &&
			n.Type == domain.NotificationBookingRequested &&
			n.RequestID == "req-1" &&
			n.SpaceID == 42
	})).Return(nil)

	svc := NewService(repo, NewHub())

	err := svc.NotifyBookingRequested(context.Background(), 7, "req-1", 42, 3)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_NotifyBookingDecision_TypeFollowsStatus(t *testing.T) {
	var captured []*domain.Notification
	repo := new(MockNotificationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = append(captured, args.Get(1).(*domain.Notification))
	}).Return(nil)

	svc := NewService(repo, nil)

	require.NoError(t, svc.NotifyBookingDecision(context.Background(), 5, "req-1", 42, domain.BookingApproved))
	require.NoError(t, svc.NotifyBookingDecision(context.Background(), 5, "req-2", 42, domain.BookingRejected))

	require.Len(t, captured, 2)
	assert.Equal(t, domain.NotificationBookingApproved, captured[0].Type)
	assert.Equal(t, domain.NotificationBookingRejected, captured[1].Type)
}

func TestHub_OfflineUser(t *testing.T) {
	hub := NewHub()

	assert.False(t, hub.IsOnline(1))
	assert.False(t, hub.SendToUser(1, map[string]any{"hello": true}))
}
