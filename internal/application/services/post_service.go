package services

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/application/query"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
	"blog-service/internal/infrastructure/postcache"
)

type PostService struct {
	posts repositories.PostRepository
	cache *postcache.Cache
}

func NewPostService(posts repositories.PostRepository, cache *postcache.Cache) interfaces.PostService {
	return &PostService{
		posts: posts,
		cache: cache,
	}
}

// CreatePost stores a new post owned by ownerID. The list cache is left
// alone: the owner may see a stale listing until their entry expires.
func (s *PostService) CreatePost(ctx context.Context, ownerID uint, cmd *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	createdPost, err := s.posts.Create(ctx, entities.NewPost(cmd.Text, ownerID))
	if err != nil {
		return nil, err
	}

	return &command.CreatePostCommandResult{
		Result: mapper.NewPostResultFromEntity(createdPost),
	}, nil
}

// ListPosts serves from the cache when it can, and populates it from the
// store on a miss.
func (s *PostService) ListPosts(ctx context.Context, ownerID uint) (*query.PostsQueryResult, error) {
	if posts, ok := s.cache.Get(ownerID); ok {
		return &query.PostsQueryResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
	}

	posts, err := s.posts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ownerID, posts)

	return &query.PostsQueryResult{Result: mapper.NewPostResultsFromEntities(posts)}, nil
}

// DeletePost removes postID if ownerID owns it. A missing post and a post
// owned by someone else are the same ErrPostNotFound; the existence and
// ownership checks are deliberately fused. The cache is not touched.
func (s *PostService) DeletePost(ctx context.Context, ownerID, postID uint) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.OwnerID != ownerID {
		return domain.ErrPostNotFound
	}

	return s.posts.Delete(ctx, postID)
}
