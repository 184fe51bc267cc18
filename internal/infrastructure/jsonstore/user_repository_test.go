package jsonstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/entity"
	"github.com/Uzma-Jawed/read-n-quote-app/internal/domain/repository"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ur := NewUserRepository(newTestStore(t))

	require.NoError(t, ur.Create(&entity.User{Username: "alice", Password: "secret"}))

	u, err := ur.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "secret", u.Password)
}

func TestUserRepository_GetUnknown(t *testing.T) {
	ur := NewUserRepository(newTestStore(t))

	u, err := ur.GetByUsername("ghost")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Exists(t *testing.T) {
	ur := NewUserRepository(newTestStore(t))

	ok, err := ur.Exists("alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ur.Create(&entity.User{Username: "alice", Password: "secret"}))

	ok, err = ur.Exists("alice")
	require.NoError(t, err)
	assert.True(t, ok)
}
