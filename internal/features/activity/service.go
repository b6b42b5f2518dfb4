package activity

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/notify"
	"github.com/fitai-labs/fitai-backend/internal/store"
	"github.com/google/uuid"
)

var ErrUnknownType = errors.New("unknown activity type")

var validTypes = map[string]bool{
	TypeWorkout:   true,
	TypeNutrition: true,
	TypeScan:      true,
	TypeVision:    true,
}

// Service is the append-only, capped activity ledger.
type Service struct {
	bus *notify.Bus
	now func() time.Time
}

func NewService(bus *notify.Bus) *Service {
	return &Service{bus: bus, now: time.Now}
}

// LoggedEvent is the detail broadcast with activity_logged.
type LoggedEvent struct {
	Owner uuid.UUID
	Item  *Item
}

// Append assigns an ID, display date, and timestamp, prepends the item,
// truncates the ledger to the most recent MaxItems, persists, and
// broadcasts activity_logged. Storage trouble is swallowed: logging an
// activity never fails the caller.
func (s *Service) Append(st store.Store, owner uuid.UUID, req *LogRequest) (*Item, error) {
	if !validTypes[req.Type] {
		return nil, ErrUnknownType
	}

	now := s.now()
	item := Item{
		ID:        uuid.New().String(),
		Type:      req.Type,
		Title:     req.Title,
		Details:   req.Details,
		Calories:  req.Calories,
		Date:      now.Format("Jan 2"),
		Timestamp: now.UnixMilli(),
	}

	items := s.List(st)
	items = append([]Item{item}, items...)
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}

	// Best-effort persist; the notification still fires.
	_ = store.SetJSON(st, store.KeyActivity, items)

	s.bus.Publish(notify.EventActivityLogged, &LoggedEvent{Owner: owner, Item: &item})
	return &item, nil
}

// List returns every stored item, newest first. A missing or corrupt
// ledger reads as empty.
func (s *Service) List(st store.Store) []Item {
	var items []Item
	if !store.GetJSON(st, store.KeyActivity, &items) {
		return nil
	}
	return items
}

// Since returns the items at or after cutoff, judged by the
// authoritative timestamp only.
func (s *Service) Since(st store.Store, cutoff time.Time) []Item {
	cutoffMs := cutoff.UnixMilli()
	var out []Item
	for _, item := range s.List(st) {
		if item.Timestamp >= cutoffMs {
			out = append(out, item)
		}
	}
	return out
}

// Today returns the items logged since local midnight.
func (s *Service) Today(st store.Store) []Item {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.Since(st, midnight)
}

// RecentWorkouts reshapes workout-like activities (Workout and Vision)
// into the dashboard's workout card format. Duration and intensity are
// placeholders; the ledger does not record them.
func (s *Service) RecentWorkouts(st store.Store) []WorkoutView {
	var out []WorkoutView
	for _, item := range s.List(st) {
		if item.Type != TypeWorkout && item.Type != TypeVision {
			continue
		}
		out = append(out, WorkoutView{
			ID:        item.ID,
			Title:     item.Title,
			Duration:  "N/A",
			Calories:  fmt.Sprintf("%d kcal", item.Calories),
			Date:      item.Date,
			Intensity: "High",
			Exercises: []string{},
		})
	}
	return out
}
