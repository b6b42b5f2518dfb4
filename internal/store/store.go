package store

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// Storage keys for every persisted FitAI record. These names are part of
// the exported-data contract and must not change between releases.
const (
	KeyProfile     = "fitai_body_profile"
	KeyOnboarding  = "user_onboarding"
	KeyStats       = "fitai_user_stats"
	KeyWorkouts    = "fitai_workout_history"
	KeyActivity    = "fitai_activity_log"
	KeyTrial       = "fitai_user_trial"
	KeyExpenses    = "fitai_expenses_log"
	KeyHabits      = "fitai_habits_log"
	KeyChatHistory = "fitai_chat_history"
)

// BackupKey returns the per-identity cache key holding the last bundled
// backup for the given email.
func BackupKey(email string) string {
	return "backup_" + email
}

// AllKeys lists every live (non-backup) storage key.
func AllKeys() []string {
	return []string{
		KeyProfile,
		KeyOnboarding,
		KeyStats,
		KeyWorkouts,
		KeyActivity,
		KeyTrial,
		KeyExpenses,
		KeyHabits,
		KeyChatHistory,
	}
}

// Factory resolves the Store holding a given user's records. Handlers
// receive a Factory so tests can substitute in-memory stores.
type Factory func(owner uuid.UUID) Store

// Store is the keyed record store every feature service writes through.
// It holds opaque string values; callers own (de)serialization. A Store
// performs no validation and must faithfully persist whatever it is
// given. Implementations must never panic into the caller.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error

	// Keys returns every stored key, in no particular order.
	Keys() []string

	// ClearAll removes every stored key.
	ClearAll() error
}

// GetJSON decodes the value at key into out. A missing key or a value
// that fails to decode both report "absent": corrupt records are treated
// as if they were never written, so a bad byte can never crash a flow.
func GetJSON(s Store, key string, out any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("discarding unparseable record", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON encodes v and stores it under key.
func SetJSON(s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(b))
}
