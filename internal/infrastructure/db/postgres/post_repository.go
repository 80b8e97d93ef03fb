package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	postModel := PostModel{
		Text:      post.Text,
		OwnerID:   post.OwnerID,
		CreatedAt: post.CreatedAt,
	}

	// Omit the association: the owner row already exists and must not be
	// upserted alongside the post.
	if err := r.db.WithContext(ctx).Omit("Owner").Create(&postModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uint) (*entities.Post, error) {
	var postModel PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entities.Post, error) {
	var postModels []PostModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, *r.mapToEntity(&postModels[i]))
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&PostModel{}, "id = ?", id).Error
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	return &entities.Post{
		ID:        postModel.ID,
		CreatedAt: postModel.CreatedAt,
		Text:      postModel.Text,
		OwnerID:   postModel.OwnerID,
	}
}
