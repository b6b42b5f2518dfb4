package sync_test

import (
	"context"
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/features/sync"
	"github.com/fitai-labs/fitai-backend/internal/models"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.UserBackup{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestDBRemoteRoundTrip(t *testing.T) {
	remote := sync.NewDBRemote(newTestDB(t))
	ctx := context.Background()

	if _, ok, err := remote.FetchBundle(ctx, "ada@example.com"); ok || err != nil {
		t.Fatalf("fetch before upsert: ok=%v err=%v", ok, err)
	}

	b := sync.Bundle{
		store.KeyProfile: `{"weight":80}`,
		store.KeyHabits:  `[]`,
	}
	if err := remote.UpsertBundle(ctx, "ada@example.com", b); err != nil {
		t.Fatalf("UpsertBundle: %v", err)
	}

	got, ok, err := remote.FetchBundle(ctx, "ada@example.com")
	if err != nil || !ok {
		t.Fatalf("FetchBundle: ok=%v err=%v", ok, err)
	}
	if got[store.KeyProfile] != b[store.KeyProfile] || got[store.KeyHabits] != b[store.KeyHabits] {
		t.Fatalf("fetched bundle = %v", got)
	}
}

func TestDBRemoteUpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	remote := sync.NewDBRemote(db)
	ctx := context.Background()

	remote.UpsertBundle(ctx, "ada@example.com", sync.Bundle{store.KeyProfile: "v1"})
	remote.UpsertBundle(ctx, "ada@example.com", sync.Bundle{store.KeyProfile: "v2"})

	got, ok, err := remote.FetchBundle(ctx, "ada@example.com")
	if err != nil || !ok || got[store.KeyProfile] != "v2" {
		t.Fatalf("fetched = %v, ok=%v, err=%v", got, ok, err)
	}

	var count int64
	db.Model(&models.UserBackup{}).Count(&count)
	if count != 1 {
		t.Fatalf("upsert created %d rows, want 1", count)
	}
}

func TestDBRemoteIdentitiesAreSeparate(t *testing.T) {
	remote := sync.NewDBRemote(newTestDB(t))
	ctx := context.Background()

	remote.UpsertBundle(ctx, "ada@example.com", sync.Bundle{store.KeyProfile: "ada"})
	remote.UpsertBundle(ctx, "bob@example.com", sync.Bundle{store.KeyProfile: "bob"})

	got, _, _ := remote.FetchBundle(ctx, "ada@example.com")
	if got[store.KeyProfile] != "ada" {
		t.Fatalf("ada's bundle = %v", got)
	}
}
