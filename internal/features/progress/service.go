package progress

import (
	"time"

	"github.com/fitai-labs/fitai-backend/internal/features/activity"
	"github.com/fitai-labs/fitai-backend/internal/store"
)

// UserStats is the persisted streak state. Everything else in the
// summary is recomputed from the ledger on read.
type UserStats struct {
	Streak     int    `json:"streak"`
	LastLogDay string `json:"lastLogDay"`
}

// Summary is the full progress readout for the dashboard.
type Summary struct {
	TotalXP         int        `json:"total_xp"`
	Level           int        `json:"level"`
	LevelProgress   float64    `json:"level_progress"`
	Streak          int        `json:"streak"`
	DisciplineScore int        `json:"discipline_score"`
	DisciplineBand  string     `json:"discipline_band"`
	WeeklyWorkouts  int        `json:"weekly_workouts"`
	Today           TodayStats `json:"today"`
}

// Service computes progress summaries and maintains streak state.
type Service struct {
	ledger *activity.Service
	now    func() time.Time
}

func NewService(ledger *activity.Service) *Service {
	return &Service{ledger: ledger, now: time.Now}
}

// Stats returns the persisted streak state, zero-valued when absent or
// corrupt.
func (s *Service) Stats(st store.Store) UserStats {
	var stats UserStats
	store.GetJSON(st, store.KeyStats, &stats)
	return stats
}

// MarkLogged advances the streak for one logged activity and persists
// the result. Called for every activity_logged event.
func (s *Service) MarkLogged(st store.Store, at time.Time) UserStats {
	stats := s.Stats(st)
	stats.Streak = NextStreak(stats.Streak, stats.LastLogDay, at)
	stats.LastLogDay = DayString(at)
	_ = store.SetJSON(st, store.KeyStats, &stats)
	return stats
}

// Summarize recomputes the full progress readout from the ledger and
// the persisted streak state.
func (s *Service) Summarize(st store.Store) *Summary {
	items := s.ledger.List(st)
	stats := s.Stats(st)
	xp := TotalXP(items)
	score := DisciplineScore(stats.Streak)

	return &Summary{
		TotalXP:         xp,
		Level:           Level(xp),
		LevelProgress:   LevelProgress(xp),
		Streak:          stats.Streak,
		DisciplineScore: score,
		DisciplineBand:  DisciplineBand(score),
		WeeklyWorkouts:  WeeklyWorkouts(items, s.now()),
		Today:           ComputeTodayStats(s.ledger.Today(st)),
	}
}
