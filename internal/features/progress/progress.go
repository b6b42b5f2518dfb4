// Package progress derives gamification and dashboard statistics from
// the activity ledger. Everything in this file is a pure function over
// ledger snapshots; persisted streak state lives in service.go.
package progress

import (
	"math"
	"regexp"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/features/activity"
)

const (
	xpPerLevel = 1000

	// XP credited for an activity that carries no calorie figure.
	defaultXP = 10
)

// TotalXP sums calories over the ledger, crediting defaultXP where an
// item has none.
func TotalXP(items []activity.Item) int {
	total := 0
	for _, item := range items {
		if item.Calories > 0 {
			total += item.Calories
		} else {
			total += defaultXP
		}
	}
	return total
}

// Level for a given XP total. Level 1 starts at zero.
func Level(xp int) int {
	return xp/xpPerLevel + 1
}

// LevelProgress is the percentage into the current level.
func LevelProgress(xp int) float64 {
	return float64(xp%xpPerLevel) / 10
}

// WeeklyWorkouts counts Workout-type activities logged since the start
// of the current week (Monday 00:00 local), judged by timestamp.
func WeeklyWorkouts(items []activity.Item, now time.Time) int {
	start := startOfWeek(now).UnixMilli()
	count := 0
	for _, item := range items {
		if item.Type == activity.TypeWorkout && item.Timestamp >= start {
			count++
		}
	}
	return count
}

func startOfWeek(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekday := int(midnight.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started last Monday
	}
	return midnight.AddDate(0, 0, -(weekday - 1))
}

// DisciplineScore maps a streak to a 0-100 score.
func DisciplineScore(streak int) int {
	score := streak * 10
	if score > 100 {
		score = 100
	}
	return score
}

// DisciplineBand buckets a discipline score.
func DisciplineBand(score int) string {
	switch {
	case score >= 70:
		return "High"
	case score >= 40:
		return "Medium"
	default:
		return "Low"
	}
}

// NextStreak applies one logged day to the streak state, at string-day
// granularity: logging again the same day leaves the streak unchanged,
// logging the day after the last log extends it, and any gap resets it
// to 1.
func NextStreak(current int, lastLogDay string, today time.Time) int {
	day := DayString(today)
	yesterday := DayString(today.AddDate(0, 0, -1))

	switch lastLogDay {
	case day:
		return current
	case yesterday:
		return current + 1
	default:
		return 1
	}
}

// DayString is the canonical day key used for streak comparisons.
func DayString(t time.Time) string {
	return t.Format("2006-01-02")
}

var minutesPattern = regexp.MustCompile(`(\d+)\s*min`)

// TodayStats summarizes today's activity for the dashboard tiles.
type TodayStats struct {
	Calories      int `json:"calories"`
	ActiveMinutes int `json:"active_minutes"`
	Steps         int `json:"steps"`
	GoalsMet      int `json:"goals_met"`
}

// ComputeTodayStats derives the dashboard tiles from today's ledger
// slice. Minutes come from a "N min" marker in the details when
// present, otherwise are estimated from calories; steps are estimated
// from minutes. Only active output counts - no resting baseline.
func ComputeTodayStats(items []activity.Item) TodayStats {
	var stats TodayStats
	for _, item := range items {
		if item.Type == activity.TypeWorkout || item.Type == activity.TypeVision {
			stats.Calories += item.Calories
		}

		if m := minutesPattern.FindStringSubmatch(item.Details); m != nil {
			stats.ActiveMinutes += atoi(m[1])
		} else if item.Calories > 0 {
			stats.ActiveMinutes += int(math.Round(float64(item.Calories) / 8))
		}
	}

	stats.Steps = stats.ActiveMinutes * 120

	if stats.Calories > 500 {
		stats.GoalsMet++
	}
	if stats.ActiveMinutes > 30 {
		stats.GoalsMet++
	}
	if stats.Steps > 6000 {
		stats.GoalsMet++
	}
	return stats
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
