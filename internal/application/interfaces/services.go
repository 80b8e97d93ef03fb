package interfaces

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/application/query"
)

type AuthService interface {
	Signup(ctx context.Context, cmd *command.SignupUserCommand) (*command.SignupUserCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)

	// VerifyIdentity resolves a bearer token to the user it names. Any
	// failure, from a bad signature to a deleted user, comes back as
	// domain.ErrUnauthenticated.
	VerifyIdentity(ctx context.Context, tokenString string) (*common.UserResult, error)
}

type PostService interface {
	CreatePost(ctx context.Context, ownerID uint, cmd *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
	ListPosts(ctx context.Context, ownerID uint) (*query.PostsQueryResult, error)
	DeletePost(ctx context.Context, ownerID, postID uint) error
}
