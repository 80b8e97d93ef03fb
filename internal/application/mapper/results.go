package mapper

import (
	"blog-service/internal/application/common"
	"blog-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:    user.ID,
		Email: user.Email,
	}
}

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	return &common.PostResult{
		ID:      post.ID,
		Text:    post.Text,
		OwnerID: post.OwnerID,
	}
}

func NewPostResultsFromEntities(posts []entities.Post) []common.PostResult {
	results := make([]common.PostResult, 0, len(posts))
	for i := range posts {
		results = append(results, *NewPostResultFromEntity(&posts[i]))
	}
	return results
}
