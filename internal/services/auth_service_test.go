package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/duetalk/chat-backend/internal/apperr"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, bcrypt.MinCost, zap.NewNop().Sugar())
}

func TestRegisterHashesPassword(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	userID, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotZero(t, userID)

	require.Len(t, users.users, 1)
	stored := users.users[0]
	assert.Equal(t, userID, stored.UserID)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Alice", "alice@example.com", "different")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Len(t, users.users, 1)
}

func TestLogin(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Fullname)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice@example.com", "nope")
	assert.Equal(t, apperr.Auth, apperr.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.Equal(t, apperr.Auth, apperr.KindOf(err))
}

func TestListUsersEmpty(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{})

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
