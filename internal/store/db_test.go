package store_test

import (
	"sort"
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/models"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/google/uuid"
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
	if err := db.AutoMigrate(&models.UserRecord{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestDBUpsert(t *testing.T) {
	db := newTestDB(t)
	s := store.ForOwner(db, uuid.New())

	if err := s.Set(store.KeyProfile, "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(store.KeyProfile, "v2"); err != nil {
		t.Fatalf("Set again: %v", err)
	}

	v, ok := s.Get(store.KeyProfile)
	if !ok || v != "v2" {
		t.Fatalf("Get = %q, %v, want v2", v, ok)
	}

	var count int64
	db.Model(&models.UserRecord{}).Count(&count)
	if count != 1 {
		t.Fatalf("upsert created %d rows, want 1", count)
	}
}

func TestDBOwnersAreIsolated(t *testing.T) {
	db := newTestDB(t)
	alice := store.ForOwner(db, uuid.New())
	bob := store.ForOwner(db, uuid.New())

	alice.Set(store.KeyProfile, "alice-profile")
	bob.Set(store.KeyProfile, "bob-profile")

	if v, _ := alice.Get(store.KeyProfile); v != "alice-profile" {
		t.Fatalf("alice sees %q", v)
	}
	if v, _ := bob.Get(store.KeyProfile); v != "bob-profile" {
		t.Fatalf("bob sees %q", v)
	}

	if err := alice.ClearAll(); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if _, ok := alice.Get(store.KeyProfile); ok {
		t.Fatal("alice's record survived ClearAll")
	}
	if _, ok := bob.Get(store.KeyProfile); !ok {
		t.Fatal("ClearAll crossed owner boundary")
	}
}

func TestDBKeys(t *testing.T) {
	db := newTestDB(t)
	s := store.ForOwner(db, uuid.New())

	s.Set(store.KeyProfile, "a")
	s.Set(store.KeyHabits, "b")
	s.Remove(store.KeyProfile)

	keys := s.Keys()
	sort.Strings(keys)
	if len(keys) != 1 || keys[0] != store.KeyHabits {
		t.Fatalf("Keys() = %v", keys)
	}
}
