package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRecord is one keyed storage entry for one user. The server-side
// mirror of the client's keyed device storage: opaque string values,
// no schema enforced.
type UserRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_records_owner_key,priority:1" json:"-"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:idx_user_records_owner_key,priority:2" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
