package trial

import (
	"testing"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/store"
)

func newFixedService(at time.Time, duration time.Duration) *Service {
	svc := NewService(duration)
	svc.now = func() time.Time { return at }
	return svc
}

func TestStartWritesRecord(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()

	rec, err := svc.Start(st, "device-1", "ada@example.com")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if !rec.IsActive {
		t.Error("new trial not active")
	}
	if rec.TrialStarted != "2026-03-05T12:00:00Z" {
		t.Errorf("TrialStarted = %q", rec.TrialStarted)
	}
	if rec.TrialEndsAt != "2026-03-12T12:00:00Z" {
		t.Errorf("TrialEndsAt = %q", rec.TrialEndsAt)
	}
	if rec.DeviceID != "device-1" || rec.Email != "ada@example.com" {
		t.Errorf("record = %+v", rec)
	}
}

func TestOneTrialPerDeviceForever(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()

	if _, err := svc.Start(st, "device-1", ""); err != nil {
		t.Fatalf("first Start: %v", err)
	}

	// Active trial blocks a restart.
	if _, err := svc.Start(st, "device-1", ""); err != ErrAlreadyUsed {
		t.Fatalf("second Start error = %v, want ErrAlreadyUsed", err)
	}

	// Even long after expiry the same device stays blocked.
	later := newFixedService(at.AddDate(0, 6, 0), 0)
	if _, err := later.Start(st, "device-1", ""); err != ErrAlreadyUsed {
		t.Fatalf("post-expiry Start error = %v, want ErrAlreadyUsed", err)
	}

	decision := later.CanStart(st, "device-1")
	if decision.Allowed {
		t.Fatal("expired trial allowed a restart")
	}
	if decision.Reason != "Trial already used on this device. Please upgrade to continue." {
		t.Errorf("Reason = %q", decision.Reason)
	}
}

func TestCanStartActiveReason(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()
	svc.Start(st, "device-1", "")

	decision := svc.CanStart(st, "device-1")
	if decision.Allowed || decision.Reason != "Trial already active on this device" {
		t.Fatalf("decision = %+v", decision)
	}
	if decision.Existing == nil || decision.Existing.DeviceID != "device-1" {
		t.Fatalf("Existing = %+v", decision.Existing)
	}
}

func TestCanStartDifferentDevice(t *testing.T) {
	t.Parallel()

	// The record travels inside backups; a restore onto new hardware
	// carries the old device's trial, which does not bind the new one.
	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()
	svc.Start(st, "device-1", "")

	if decision := svc.CanStart(st, "device-2"); !decision.Allowed {
		t.Fatalf("different device denied: %+v", decision)
	}
}

func TestGetLazyExpiry(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()
	svc.Start(st, "device-1", "")

	// Still active one minute before the end.
	almost := newFixedService(at.Add(7*24*time.Hour-time.Minute), 0)
	if rec := almost.Get(st); !rec.IsActive {
		t.Fatal("trial expired early")
	}

	// First read past the end flips and persists.
	after := newFixedService(at.Add(7*24*time.Hour+time.Minute), 0)
	if rec := after.Get(st); rec.IsActive {
		t.Fatal("trial still active past trialEndsAt")
	}

	var persisted Record
	if !store.GetJSON(st, store.KeyTrial, &persisted) {
		t.Fatal("record vanished")
	}
	if persisted.IsActive {
		t.Fatal("expiry flip was not persisted")
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	svc := newFixedService(at, 0)
	st := store.NewMemory()
	rec, _ := svc.Start(st, "device-1", "")

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"just started", at, 7},
		{"partial day rounds up", at.Add(6*24*time.Hour + 12*time.Hour), 1},
		{"last hour", at.Add(7*24*time.Hour - time.Hour), 1},
		{"nil record", at, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFixedService(tt.now, 0)
			r := rec
			if tt.name == "nil record" {
				r = nil
			}
			if got := s.DaysRemaining(r); got != tt.want {
				t.Errorf("DaysRemaining = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFallbackFeaturesCliff(t *testing.T) {
	t.Parallel()

	svc := NewService(0)

	active := svc.FallbackFeatures(&Record{IsActive: true})
	if !active.SmartSchedule || active.DailyAIChat != UnlimitedChats {
		t.Errorf("active features = %+v", active)
	}

	over := svc.FallbackFeatures(&Record{IsActive: false})
	if over.SmartSchedule || over.DailyAIChat != 0 {
		t.Errorf("expired features = %+v", over)
	}

	if none := svc.FallbackFeatures(nil); none.SmartSchedule || none.DailyAIChat != 0 {
		t.Errorf("no-record features = %+v", none)
	}
}

func TestGetUnreadableEndDateReadsExpired(t *testing.T) {
	t.Parallel()

	svc := newFixedService(time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC), 0)
	st := store.NewMemory()
	store.SetJSON(st, store.KeyTrial, &Record{
		DeviceID: "device-1", TrialEndsAt: "not-a-date", IsActive: true,
	})

	if rec := svc.Get(st); rec.IsActive {
		t.Fatal("unreadable end date left the trial active")
	}
}
