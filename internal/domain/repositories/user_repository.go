package repositories

import (
	"context"

	"blog-service/internal/domain/entities"
)

// UserRepository persists user records. Lookups return (nil, nil) when no
// record matches; callers decide whether absence is an error.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
