package services

import (
	"context"
	"time"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
	"blog-service/internal/infrastructure/ratelimit"
	"blog-service/internal/infrastructure/token"
)

// LoginTokenTTL is the lifetime of tokens handed out by Login. It is a
// separate constant from the issuer's own default on purpose.
const LoginTokenTTL = 30 * time.Minute

// AttemptLimiter guards the login endpoint against credential guessing.
// ratelimit.LoginLimiter is the production implementation.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) bool
	Reset(ctx context.Context, key string)
}

type AuthService struct {
	users    repositories.UserRepository
	tokens   *token.Service
	limiter  AttemptLimiter
	loginTTL time.Duration
}

func NewAuthService(
	users repositories.UserRepository,
	tokens *token.Service,
	limiter AttemptLimiter,
	loginTTL time.Duration,
) interfaces.AuthService {
	if loginTTL <= 0 {
		loginTTL = LoginTokenTTL
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		limiter:  limiter,
		loginTTL: loginTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, cmd *command.SignupUserCommand) (*command.SignupUserCommandResult, error) {
	existing, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	newUser := entities.NewUser(cmd.Email, cmd.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.users.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.SignupUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	attemptKey := ratelimit.AttemptKey(cmd.Email, cmd.ClientIP)
	if !s.limiter.Allow(ctx, attemptKey) {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CheckPassword(cmd.Password) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Email, s.loginTTL)
	if err != nil {
		return nil, err
	}

	s.limiter.Reset(ctx, attemptKey)

	return &command.LoginUserCommandResult{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthService) VerifyIdentity(ctx context.Context, tokenString string) (*common.UserResult, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	return mapper.NewUserResultFromEntity(user), nil
}
