package auth

import (
	"context"

	"venuehub/internal/domain"
)

// UserRepository defines the persistence operations auth needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
