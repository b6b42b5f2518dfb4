// Package records exposes the raw keyed store: opaque reads and writes
// for the entities the server does not interpret (onboarding answers,
// workout history, chat history), plus the full-dump export.
package records

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/store"
)

var ErrUnknownKey = errors.New("unknown storage key")

var allowedKeys = func() map[string]bool {
	m := make(map[string]bool)
	for _, k := range store.AllKeys() {
		m[k] = true
	}
	return m
}()

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Get returns the raw value at key.
func (s *Service) Get(st store.Store, key string) (string, bool, error) {
	if !allowedKeys[key] {
		return "", false, ErrUnknownKey
	}
	v, ok := st.Get(key)
	return v, ok, nil
}

// Put stores the raw value verbatim. No validation: the storage layer
// faithfully persists whatever the caller sends.
func (s *Service) Put(st store.Store, key, value string) error {
	if !allowedKeys[key] {
		return ErrUnknownKey
	}
	return st.Set(key, value)
}

// Delete removes the record at key.
func (s *Service) Delete(st store.Store, key string) error {
	if !allowedKeys[key] {
		return ErrUnknownKey
	}
	return st.Remove(key)
}

// Wipe clears every stored key for this user.
func (s *Service) Wipe(st store.Store) error {
	return st.ClearAll()
}

// ExportDocument is the full diagnostic/portability dump.
type ExportDocument struct {
	ExportedAt string         `json:"exported_at"`
	Records    map[string]any `json:"records"`
}

// Export enumerates every stored key into a single document. Values
// that parse as JSON are embedded structurally; anything else passes
// through as the raw string, so the export always succeeds.
func (s *Service) Export(st store.Store) *ExportDocument {
	doc := &ExportDocument{
		ExportedAt: s.now().UTC().Format(time.RFC3339),
		Records:    make(map[string]any),
	}

	for _, key := range st.Keys() {
		raw, ok := st.Get(key)
		if !ok {
			continue
		}
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			doc.Records[key] = parsed
		} else {
			doc.Records[key] = raw
		}
	}
	return doc
}
