package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/duetalk/chat-backend/internal/apperr"
	"github.com/duetalk/chat-backend/internal/models"
	"github.com/duetalk/chat-backend/internal/repository"
)

type AuthService struct {
	users    repository.UserRepository
	hashCost int
	logger   *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, hashCost int, logger *zap.SugaredLogger) *AuthService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, hashCost: hashCost, logger: logger}
}

// Register creates an account and returns the assigned user id. Email
// uniqueness is a pre-insert existence check, not a store constraint, so two
// concurrent registrations with the same email can both succeed.
func (s *AuthService) Register(ctx context.Context, fullname, email, password string) (int64, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return 0, apperr.Wrap(apperr.Store, "failed to check existing email", err)
	}
	if existing != nil {
		return 0, apperr.New(apperr.Conflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return 0, apperr.Wrap(apperr.Store, "failed to hash password", err)
	}

	u := &models.User{
		UserID:   time.Now().UnixMilli(),
		Fullname: fullname,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, apperr.Wrap(apperr.Store, "failed to create user", err)
	}

	s.logger.Infow("user registered", "user_id", u.UserID)
	return u.UserID, nil
}

// Login verifies credentials and returns the account. Unknown email and wrong
// password both map to a 400-class auth error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.New(apperr.Auth, "account not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "failed to look up account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.New(apperr.Auth, "incorrect password")
	}
	return u, nil
}

// ListUsers returns every registered account.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "failed to list users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
