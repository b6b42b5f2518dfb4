package store

import (
	"errors"
	"log/slog"

	"github.com/fitai-labs/fitai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DB is a Store backed by per-owner key-value rows. Read failures are
// reported as "absent" and write failures are logged and swallowed:
// storage trouble must never surface as an error in a user flow.
type DB struct {
	db    *gorm.DB
	owner uuid.UUID
}

// ForOwner returns the Store holding the given user's records.
func ForOwner(db *gorm.DB, owner uuid.UUID) *DB {
	return &DB{db: db, owner: owner}
}

func (s *DB) Get(key string) (string, bool) {
	var rec models.UserRecord
	err := s.db.Where("owner_id = ? AND key = ?", s.owner, key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}
	if err != nil {
		slog.Error("record read failed", "key", key, "error", err)
		return "", false
	}
	return rec.Value, true
}

func (s *DB) Set(key, value string) error {
	rec := models.UserRecord{
		ID:      uuid.New(),
		OwnerID: s.owner,
		Key:     key,
		Value:   value,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		slog.Error("record write failed", "key", key, "error", err)
	}
	return nil
}

func (s *DB) Remove(key string) error {
	err := s.db.Where("owner_id = ? AND key = ?", s.owner, key).
		Delete(&models.UserRecord{}).Error
	if err != nil {
		slog.Error("record delete failed", "key", key, "error", err)
	}
	return nil
}

func (s *DB) Keys() []string {
	var keys []string
	err := s.db.Model(&models.UserRecord{}).
		Where("owner_id = ?", s.owner).
		Pluck("key", &keys).Error
	if err != nil {
		slog.Error("record key listing failed", "error", err)
		return nil
	}
	return keys
}

func (s *DB) ClearAll() error {
	err := s.db.Where("owner_id = ?", s.owner).Delete(&models.UserRecord{}).Error
	if err != nil {
		slog.Error("record wipe failed", "error", err)
	}
	return nil
}
