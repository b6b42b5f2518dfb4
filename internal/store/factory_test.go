package store_test

import (
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/google/uuid"
)

func TestFileFactorySharesStorePerOwner(t *testing.T) {
	t.Parallel()

	stores := store.NewFileFactory(t.TempDir())
	owner := uuid.New()

	a := stores(owner)
	b := stores(owner)
	if a != b {
		t.Fatal("same owner resolved to two stores")
	}

	a.Set(store.KeyProfile, "p")
	if v, ok := b.Get(store.KeyProfile); !ok || v != "p" {
		t.Fatalf("write not visible through the shared store: %q, %v", v, ok)
	}

	other := stores(uuid.New())
	if _, ok := other.Get(store.KeyProfile); ok {
		t.Fatal("owners share a document")
	}
}

func TestDBFactory(t *testing.T) {
	stores := store.NewDBFactory(newTestDB(t))
	owner := uuid.New()

	st := stores(owner)
	st.Set(store.KeyProfile, "p")
	if v, ok := stores(owner).Get(store.KeyProfile); !ok || v != "p" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
}
