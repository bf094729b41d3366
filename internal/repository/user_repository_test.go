package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tasktrack/internal/model"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := createUser(t, repo, "Ann@Example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ann@example.com", user.EmailKey)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann@Example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "  ANN@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepository_DuplicateEmailIgnoringCase(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createUser(t, repo, "a@x.com")

	err := repo.Create(context.Background(), &model.User{Name: "Other", Email: "A@X.COM", PasswordHash: "hash"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}
