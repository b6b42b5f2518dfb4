package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the account record. Email doubles as the identity key for
// the cloud backup bundle.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
