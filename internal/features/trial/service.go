// Package trial implements the device-fingerprint-gated free trial.
// One trial per device, forever: an expired trial still blocks a new
// one. The fingerprint is a soft deterrent, not a security boundary.
package trial

import (
	"errors"
	"math"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/store"
)

// DefaultDuration is the trial length.
const DefaultDuration = 7 * 24 * time.Hour

// UnlimitedChats marks the unmetered chat allowance during an active
// trial.
const UnlimitedChats = -1

var ErrAlreadyUsed = errors.New("trial already used on this device")

// Record is the persisted trial state. Timestamps are RFC3339 strings,
// matching the exported-data format.
type Record struct {
	DeviceID     string `json:"deviceId"`
	TrialStarted string `json:"trialStarted"`
	TrialEndsAt  string `json:"trialEndsAt"`
	IsActive     bool   `json:"isActive"`
	Email        string `json:"email,omitempty"`
}

// Decision is the outcome of CanStart. A denial is a normal negative
// result, not an error.
type Decision struct {
	Allowed  bool    `json:"allowed"`
	Reason   string  `json:"reason,omitempty"`
	Existing *Record `json:"existing,omitempty"`
}

// Features is the gated feature set for the current trial state. The
// cliff is binary: everything on while active, everything off after.
type Features struct {
	SmartSchedule bool `json:"smart_schedule"`
	DailyAIChat   int  `json:"daily_ai_chat"`
}

type Service struct {
	duration time.Duration
	now      func() time.Time
}

func NewService(duration time.Duration) *Service {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Service{duration: duration, now: time.Now}
}

// Get returns the stored trial record with lazy expiry applied: the
// first read after trialEndsAt flips isActive off and persists the
// flip. There is no background expiry job.
func (s *Service) Get(st store.Store) *Record {
	var rec Record
	if !store.GetJSON(st, store.KeyTrial, &rec) {
		return nil
	}

	if rec.IsActive && s.now().After(s.endsAt(&rec)) {
		rec.IsActive = false
		_ = store.SetJSON(st, store.KeyTrial, &rec)
	}
	return &rec
}

// CanStart decides whether this device may begin a trial. A record for
// the same device denies regardless of whether it has expired.
func (s *Service) CanStart(st store.Store, deviceID string) Decision {
	existing := s.Get(st)
	if existing != nil && existing.DeviceID == deviceID {
		reason := "Trial already active on this device"
		if !existing.IsActive {
			reason = "Trial already used on this device. Please upgrade to continue."
		}
		return Decision{Allowed: false, Reason: reason, Existing: existing}
	}
	return Decision{Allowed: true}
}

// Start begins the trial for this device.
func (s *Service) Start(st store.Store, deviceID, email string) (*Record, error) {
	if decision := s.CanStart(st, deviceID); !decision.Allowed {
		return nil, ErrAlreadyUsed
	}

	now := s.now()
	rec := Record{
		DeviceID:     deviceID,
		TrialStarted: now.UTC().Format(time.RFC3339),
		TrialEndsAt:  now.Add(s.duration).UTC().Format(time.RFC3339),
		IsActive:     true,
		Email:        email,
	}
	if err := store.SetJSON(st, store.KeyTrial, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DaysRemaining counts whole days left on an active trial, floored at
// zero.
func (s *Service) DaysRemaining(rec *Record) int {
	if rec == nil || !rec.IsActive {
		return 0
	}
	diff := s.endsAt(rec).Sub(s.now())
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// FallbackFeatures resolves the gated feature set from trial state.
func (s *Service) FallbackFeatures(rec *Record) Features {
	if rec != nil && rec.IsActive {
		return Features{SmartSchedule: true, DailyAIChat: UnlimitedChats}
	}
	return Features{SmartSchedule: false, DailyAIChat: 0}
}

func (s *Service) endsAt(rec *Record) time.Time {
	t, err := time.Parse(time.RFC3339, rec.TrialEndsAt)
	if err != nil {
		// An unreadable end date reads as already over.
		return time.Time{}
	}
	return t
}
