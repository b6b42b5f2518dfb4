package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON document on disk, the
// device-agent analogue of browser storage. Writes go through a temp
// file and rename so a crash mid-write never corrupts the document.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFile loads (or creates) the store document at path. An unreadable
// or unparseable document starts the store empty rather than failing:
// device storage must always come up.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(raw, &f.values); err != nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.persist()
}

func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return f.persist()
}

func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	return keys
}

func (f *File) ClearAll() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string)
	return f.persist()
}

func (f *File) persist() error {
	b, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
