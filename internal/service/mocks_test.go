package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tasktrack/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockToDoRepository is a mock implementation of ToDoRepository.
type MockToDoRepository struct {
	mock.Mock
}

func (m *MockToDoRepository) Create(ctx context.Context, todo *model.ToDo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockToDoRepository) FindForOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, complete bool) ([]model.ToDo, error) {
	args := m.Called(ctx, ownerID, complete)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ToDo), args.Error(1)
}

func (m *MockToDoRepository) SetComplete(ctx context.Context, ownerID, id uuid.UUID, complete bool, completedAt *time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, id, complete, completedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockToDoRepository) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string) (bool, error) {
	args := m.Called(ctx, ownerID, id, content)
	return args.Bool(0), args.Error(1)
}

func (m *MockToDoRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}
