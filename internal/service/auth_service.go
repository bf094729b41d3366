package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"tasktrack/internal/auth"
	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/model"
	"tasktrack/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*auth.Session, *model.User, error)
	Login(ctx context.Context, email, password string) (*auth.Session, *model.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a user with a hashed password and opens a session for it.
// Input shape is validated by the caller.
func (s *authService) Register(ctx context.Context, name, email, password string) (*auth.Session, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		PasswordHash: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration won the race for this email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperrors.ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return session, user, nil
}

// Login verifies credentials. An unknown email and a wrong password both
// yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*auth.Session, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	session, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return session, user, nil
}
