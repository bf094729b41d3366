package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToDo is a task owned by exactly one user.
type ToDo struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID  `json:"user" gorm:"type:char(36);not null;index"`
	Content     string     `json:"content" gorm:"size:300;not null"`
	Complete    bool       `json:"complete" gorm:"not null;default:false;index"`
	CompletedAt *time.Time `json:"completedAt"` // nil while incomplete
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (t *ToDo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ToDoList groups a user's to-dos by completion state.
type ToDoList struct {
	Complete   []ToDo `json:"complete"`
	Incomplete []ToDo `json:"incomplete"`
}
