package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account that owns to-do items.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	EmailKey     string    `json:"-" gorm:"size:255;not null;uniqueIndex"` // lower-cased email, unique per user
	PasswordHash string    `json:"-" gorm:"size:255;not null"`             // Never expose in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID and the normalized email key.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.EmailKey = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail returns the case-insensitive lookup key for an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
