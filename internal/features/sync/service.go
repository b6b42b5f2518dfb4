package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/notify"
	"github.com/fitai-labs/fitai-backend/internal/store"
)

// Result is the tri-state outcome of a pull. Remote trouble is a
// result, never a panic or an error bubbled into a sign-in flow.
type Result string

const (
	Found    Result = "found"
	NotFound Result = "not_found"
	Errored  Result = "error"
)

// DefaultPullTimeout bounds the sign-in pull: sign-in proceeds on
// whatever local state exists rather than hanging on a slow network.
const DefaultPullTimeout = 5 * time.Second

// Service is the cloud mirror: pull overwrites local state, push
// overwrites remote state, last writer wins.
type Service struct {
	remote      RemoteStore
	bus         *notify.Bus
	pullTimeout time.Duration
}

func NewService(remote RemoteStore, bus *notify.Bus, pullTimeout time.Duration) *Service {
	if pullTimeout <= 0 {
		pullTimeout = DefaultPullTimeout
	}
	return &Service{remote: remote, bus: bus, pullTimeout: pullTimeout}
}

// Pull fetches the remote bundle for email and restores it over local
// state, caching the raw bundle for offline reuse, then broadcasts
// storage_restored and user_updated. Every failure path reports
// Errored; nothing escapes to the caller.
func (s *Service) Pull(ctx context.Context, st store.Store, email string) Result {
	if email == "" {
		return Errored
	}

	b, ok, err := s.remote.FetchBundle(ctx, email)
	if err != nil {
		slog.Error("cloud pull failed", "error", err)
		return Errored
	}
	if !ok {
		slog.Info("no cloud data for identity")
		return NotFound
	}

	report := Restore(st, b)
	_ = store.SetJSON(st, store.BackupKey(email), b)

	slog.Info("cloud bundle restored",
		"keys", len(report.Restored),
		"profile_missing", report.ProfileMissing,
	)

	s.bus.Publish(notify.EventStorageRestored, report)
	s.bus.Publish(notify.EventUserUpdated, nil)
	return Found
}

// PullOnSignIn is the time-boxed pull the sign-in flow runs: it waits
// at most the configured timeout and then lets sign-in proceed on local
// state, trading freshness for availability.
func (s *Service) PullOnSignIn(st store.Store, email string) Result {
	ctx, cancel := context.WithTimeout(context.Background(), s.pullTimeout)
	defer cancel()

	done := make(chan Result, 1)
	go func() {
		done <- s.Pull(ctx, st, email)
	}()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		slog.Warn("sign-in pull timed out, continuing with local state")
		return Errored
	}
}

// Push uploads the last cached bundle for email, overwriting the remote
// record wholesale. It does not re-collect live values: whatever the
// bundler cached last is what goes up. Failures are logged and
// swallowed; there is no retry queue, a lost push waits for the next
// opportunity.
func (s *Service) Push(ctx context.Context, st store.Store, email string) {
	if email == "" {
		return
	}

	b, ok := CachedBundle(st, email)
	if !ok {
		slog.Info("no local backup to push")
		return
	}

	if err := s.remote.UpsertBundle(ctx, email, b); err != nil {
		slog.Error("cloud push failed", "error", err)
		return
	}
	slog.Info("cloud push complete", "keys", len(b))
}

// Backup re-bundles the live keys, caches the bundle, and pushes it in
// the background. This is the opportunistic write-path hook: it never
// blocks or fails the mutation that triggered it.
func (s *Service) Backup(st store.Store, email string) {
	if email == "" {
		return
	}

	if _, err := SaveLocal(st, email); err != nil {
		slog.Error("local backup failed", "error", err)
		return
	}

	go s.Push(context.Background(), st, email)
}
