package service

import (
	"testing"

	"github.com/lshigami/CodeClinic/internal/dto"
	"github.com/lshigami/CodeClinic/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	resp, err := svc.Register(dto.RegisterUserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	_, err := svc.Register(dto.RegisterUserRequest{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.Register(dto.RegisterUserRequest{Username: "alice"})
	assert.ErrorContains(t, err, "already exists")
}
