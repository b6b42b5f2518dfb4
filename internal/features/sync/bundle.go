// Package sync implements the backup bundling and cloud mirroring
// scheme: the full set of keyed records for one identity, packaged as a
// single bundle, pushed to one remote row per email and pulled back
// down over local state. There is no merge operator anywhere - a pull
// overwrites local keys, a push overwrites the remote row, and the last
// writer wins.
package sync

import (
	"github.com/fitai-labs/fitai-backend/internal/store"
)

// Bundle is the complete set of a user's records, keyed identically to
// the store. Values are the opaque serialized strings as stored; keys
// absent from the store are omitted, never null-padded.
type Bundle map[string]string

// Collect reads every configured key from the store into a bundle.
func Collect(st store.Store) Bundle {
	b := make(Bundle)
	for _, key := range store.AllKeys() {
		if v, ok := st.Get(key); ok {
			b[key] = v
		}
	}
	return b
}

// RestoreReport describes what a restore brought back. ProfileMissing
// with OnboardingPresent flags the case where the UI may want to bridge
// a profile from onboarding answers; the bundler itself never
// synthesizes one.
type RestoreReport struct {
	Restored          []string `json:"restored"`
	ProfileMissing    bool     `json:"profile_missing"`
	OnboardingPresent bool     `json:"onboarding_present"`
}

// Restore writes every field present in the bundle back to its store
// key, verbatim. Keys absent from the bundle are left untouched: a
// restore overwrites what the bundle mentions and nothing else.
func Restore(st store.Store, b Bundle) *RestoreReport {
	report := &RestoreReport{}
	for _, key := range store.AllKeys() {
		v, ok := b[key]
		if !ok {
			continue
		}
		if err := st.Set(key, v); err == nil {
			report.Restored = append(report.Restored, key)
		}
	}

	_, hasProfile := st.Get(store.KeyProfile)
	_, hasOnboarding := st.Get(store.KeyOnboarding)
	report.ProfileMissing = !hasProfile
	report.OnboardingPresent = hasOnboarding
	return report
}

// SaveLocal re-bundles the live keys and caches the result under the
// per-identity backup key for offline reuse and the next push.
func SaveLocal(st store.Store, email string) (Bundle, error) {
	b := Collect(st)
	if err := store.SetJSON(st, store.BackupKey(email), b); err != nil {
		return nil, err
	}
	return b, nil
}

// CachedBundle returns the last bundle cached for email, if any.
func CachedBundle(st store.Store, email string) (Bundle, bool) {
	var b Bundle
	if !store.GetJSON(st, store.BackupKey(email), &b) {
		return nil, false
	}
	return b, true
}
