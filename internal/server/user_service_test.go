package server

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/config"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/types"
)

type failingPasswordStore struct {
	*memStore
	deleted []uuid.UUID
}

func (f *failingPasswordStore) UpdatePassword(context.Context, uuid.UUID, string) error {
	return errors.New("disk full")
}

func (f *failingPasswordStore) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	f.deleted = append(f.deleted, userID)
	return f.memStore.DeleteUser(ctx, userID)
}

func newTestUserService(store DBClient) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10, MinLength: 8})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newMemStore())

	user, err := svc.Register(ctx, &types.CreateUserRequest{FirstName: " Ada ", LastName: "Lovelace", Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.True(t, user.PasswordSet)

	_, err = svc.Register(ctx, &types.CreateUserRequest{FirstName: "Ada", LastName: "King", Email: "ada@example.com", Password: "analytical"})
	var exists *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &exists)

	_, err = svc.Register(ctx, &types.CreateUserRequest{FirstName: "Bob", LastName: "B", Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, config.ErrWeakPassword)
}

func TestUserService_RegisterRollsBackOnPasswordFailure(t *testing.T) {
	store := &failingPasswordStore{memStore: newMemStore()}
	svc := newTestUserService(store)

	_, err := svc.Register(context.Background(), &types.CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "analytical"})
	require.Error(t, err)
	assert.Len(t, store.deleted, 1)
	assert.Empty(t, store.users)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := newTestUserService(store)

	_, err := svc.Register(ctx, &types.CreateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "analytical"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{Email: "ADA@example.com", Password: "analytical"})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorAs(t, err, new(*ErrInvalidCredentials))

	// An account created without a password cannot log in yet.
	_, err = store.CreateUser(ctx, "Grace", "Hopper", "grace@example.com")
	require.NoError(t, err)
	_, err = svc.Login(ctx, &types.LoginRequest{Email: "grace@example.com", Password: "anything"})
	assert.ErrorAs(t, err, new(*ErrEmailNotConfirmed))
}

func TestUserService_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newTestUserService(newMemStore())
	id := uuid.New()

	_, err := svc.Me(ctx, id)
	assert.ErrorAs(t, err, new(*ErrUserNotFound))
	assert.ErrorAs(t, svc.UpdatePassword(ctx, id, "a", "bbbbbbbb"), new(*ErrUserNotFound))
	assert.ErrorAs(t, svc.DeleteAccount(ctx, id, "a"), new(*ErrUserNotFound))
}
