package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserBackup is the single remote record per identity: the whole data
// bundle as one JSON document, keyed by email, overwritten wholesale on
// every push. Last writer wins; there is no version column.
type UserBackup struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
