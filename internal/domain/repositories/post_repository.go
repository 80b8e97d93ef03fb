package repositories

import (
	"context"

	"blog-service/internal/domain/entities"
)

// PostRepository persists post records. Delete is unconditional by id;
// the ownership check belongs to the caller, which reads the post first.
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)
	FindByID(ctx context.Context, id uint) (*entities.Post, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]entities.Post, error)
	Delete(ctx context.Context, id uint) error
}
