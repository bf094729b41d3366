package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasktrack/internal/model"
)

// ToDoRepository defines to-do persistence operations. Every method is
// scoped to an owner; no query reaches a row whose user_id differs.
type ToDoRepository interface {
	Create(ctx context.Context, todo *model.ToDo) error
	FindForOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, complete bool) ([]model.ToDo, error)
	// SetComplete flips the completion flag only when it currently differs
	// from complete. It reports whether a row changed.
	SetComplete(ctx context.Context, ownerID, id uuid.UUID, complete bool, completedAt *time.Time) (bool, error)
	UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string) (bool, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

type toDoRepository struct {
	db *gorm.DB
}

// NewToDoRepository creates a new to-do repository.
func NewToDoRepository(db *gorm.DB) ToDoRepository {
	return &toDoRepository{db: db}
}

func (r *toDoRepository) owned(ctx context.Context, ownerID, id uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.ToDo{}).Where("id = ? AND user_id = ?", id, ownerID)
}

// Create creates a new to-do.
func (r *toDoRepository) Create(ctx context.Context, todo *model.ToDo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindForOwner returns gorm.ErrRecordNotFound for a missing id and for an id
// owned by someone else.
func (r *toDoRepository) FindForOwner(ctx context.Context, ownerID, id uuid.UUID) (*model.ToDo, error) {
	var todo model.ToDo
	if err := r.owned(ctx, ownerID, id).First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// ListForOwner lists complete to-dos newest completion first, incomplete
// ones newest creation first.
func (r *toDoRepository) ListForOwner(ctx context.Context, ownerID uuid.UUID, complete bool) ([]model.ToDo, error) {
	order := "created_at DESC"
	if complete {
		order = "completed_at DESC, created_at DESC"
	}

	todos := []model.ToDo{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND complete = ?", ownerID, complete).
		Order(order).
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *toDoRepository) SetComplete(ctx context.Context, ownerID, id uuid.UUID, complete bool, completedAt *time.Time) (bool, error) {
	res := r.owned(ctx, ownerID, id).
		Where("complete = ?", !complete).
		Updates(map[string]interface{}{
			"complete":     complete,
			"completed_at": completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *toDoRepository) UpdateContent(ctx context.Context, ownerID, id uuid.UUID, content string) (bool, error) {
	res := r.owned(ctx, ownerID, id).Update("content", content)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *toDoRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&model.ToDo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
