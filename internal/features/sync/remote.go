package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitai-labs/fitai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RemoteStore is the remote bundle collaborator: one document per
// email, single-document semantics, no versioning.
type RemoteStore interface {
	// FetchBundle returns the bundle for email, or ok=false when no
	// record exists.
	FetchBundle(ctx context.Context, email string) (Bundle, bool, error)

	// UpsertBundle overwrites the record for email wholesale.
	UpsertBundle(ctx context.Context, email string, b Bundle) error
}

// DBRemote stores bundles as one JSONB row per email.
type DBRemote struct {
	db *gorm.DB
}

func NewDBRemote(db *gorm.DB) *DBRemote {
	return &DBRemote{db: db}
}

func (r *DBRemote) FetchBundle(ctx context.Context, email string) (Bundle, bool, error) {
	var rec models.UserBackup
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch backup: %w", err)
	}
	if len(rec.Data) == 0 {
		return nil, false, nil
	}

	var b Bundle
	if err := json.Unmarshal(rec.Data, &b); err != nil {
		return nil, false, fmt.Errorf("remote bundle is unreadable: %w", err)
	}
	return b, true, nil
}

func (r *DBRemote) UpsertBundle(ctx context.Context, email string, b Bundle) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	rec := models.UserBackup{
		ID:    uuid.New(),
		Email: email,
		Data:  datatypes.JSON(data),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert backup: %w", err)
	}
	return nil
}
