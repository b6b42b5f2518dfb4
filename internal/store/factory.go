package store

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewDBFactory returns a Factory resolving each owner to their rows in
// the shared database.
func NewDBFactory(db *gorm.DB) Factory {
	return func(owner uuid.UUID) Store {
		return ForOwner(db, owner)
	}
}

// NewFileFactory returns a Factory keeping each owner's records as one
// JSON document under dir. Open stores are cached so every request for
// an owner shares the same serialized document.
func NewFileFactory(dir string) Factory {
	var mu sync.Mutex
	open := make(map[uuid.UUID]Store)

	return func(owner uuid.UUID) Store {
		mu.Lock()
		defer mu.Unlock()

		if st, ok := open[owner]; ok {
			return st
		}

		st, err := NewFile(filepath.Join(dir, owner.String()+".json"))
		if err != nil {
			// An unopenable document degrades to session-only storage
			// rather than failing every request for this owner.
			slog.Error("file store unavailable, falling back to memory", "owner", owner, "error", err)
			mem := NewMemory()
			open[owner] = mem
			return mem
		}
		open[owner] = st
		return st
	}
}
