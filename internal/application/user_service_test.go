package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/makemate/agency-backend/internal/domain/repository"
	"github.com/makemate/agency-backend/internal/infrastructure/memory"
	"github.com/makemate/agency-backend/pkg/helpers"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	helpers.PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { helpers.PasswordCost = bcrypt.DefaultCost })
	logger, _ := test.NewNullLogger()
	return NewUserService(memory.NewStore().Users(), logger)
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc := newUserService(t)

	u, err := svc.Create(context.Background(), "admin", "changeme")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, "changeme", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "changeme"))

	_, err = svc.Create(context.Background(), "admin", "other")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = svc.Create(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestUserService_EnsureUser(t *testing.T) {
	svc := newUserService(t)

	u, created, err := svc.EnsureUser(context.Background(), "admin", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.EnsureUser(context.Background(), "admin", "different")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
	assert.True(t, helpers.CompareHashAndPassword(again.Password, "changeme"))

	got, err := svc.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
}
