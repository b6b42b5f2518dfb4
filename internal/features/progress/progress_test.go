package progress_test

import (
	"testing"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/features/activity"
	"github.com/fitai-labs/fitai-backend/internal/features/progress"
)

func TestTotalXP(t *testing.T) {
	t.Parallel()

	items := []activity.Item{
		{Calories: 320},
		{Calories: 0}, // no calorie figure credits the default
		{Calories: 1030},
	}
	if got := progress.TotalXP(items); got != 1360 {
		t.Fatalf("TotalXP = %d, want 1360", got)
	}
}

func TestLevelAndProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		xp       int
		level    int
		progress float64
	}{
		{0, 1, 0},
		{999, 1, 99.9},
		{1000, 2, 0},
		{1350, 2, 35},
		{10500, 11, 50},
	}

	for _, tt := range tests {
		if got := progress.Level(tt.xp); got != tt.level {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.level)
		}
		if got := progress.LevelProgress(tt.xp); got != tt.progress {
			t.Errorf("LevelProgress(%d) = %v, want %v", tt.xp, got, tt.progress)
		}
	}
}

func TestNextStreak(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		current    int
		lastLogDay string
		want       int
	}{
		{"first ever log", 0, "", 1},
		{"same day leaves streak", 4, "2026-03-05", 4},
		{"consecutive day extends", 4, "2026-03-04", 5},
		{"one day gap resets", 9, "2026-03-03", 1},
		{"long gap resets", 30, "2025-11-20", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := progress.NextStreak(tt.current, tt.lastLogDay, today); got != tt.want {
				t.Errorf("NextStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDiscipline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		streak int
		score  int
		band   string
	}{
		{0, 0, "Low"},
		{3, 30, "Low"},
		{4, 40, "Medium"},
		{6, 60, "Medium"},
		{7, 70, "High"},
		{15, 100, "High"}, // capped
	}

	for _, tt := range tests {
		score := progress.DisciplineScore(tt.streak)
		if score != tt.score {
			t.Errorf("DisciplineScore(%d) = %d, want %d", tt.streak, score, tt.score)
		}
		if band := progress.DisciplineBand(score); band != tt.band {
			t.Errorf("DisciplineBand(%d) = %q, want %q", score, band, tt.band)
		}
	}
}

func TestWeeklyWorkoutsStartsMonday(t *testing.T) {
	t.Parallel()

	// 2026-03-05 is a Thursday; the week started Monday 2026-03-02.
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	items := []activity.Item{
		{Type: activity.TypeWorkout, Timestamp: monday.UnixMilli()},                      // boundary counts
		{Type: activity.TypeWorkout, Timestamp: now.UnixMilli()},                         // this week
		{Type: activity.TypeNutrition, Timestamp: now.UnixMilli()},                       // wrong type
		{Type: activity.TypeWorkout, Timestamp: monday.Add(-time.Minute).UnixMilli()},    // last week
		{Type: activity.TypeWorkout, Timestamp: monday.AddDate(0, 0, -3).UnixMilli()},    // last week
	}

	if got := progress.WeeklyWorkouts(items, now); got != 2 {
		t.Fatalf("WeeklyWorkouts = %d, want 2", got)
	}
}

func TestWeeklyWorkoutsOnSunday(t *testing.T) {
	t.Parallel()

	// 2026-03-08 is a Sunday; it belongs to the week begun Monday 03-02.
	sunday := time.Date(2026, time.March, 8, 20, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)

	items := []activity.Item{
		{Type: activity.TypeWorkout, Timestamp: tuesday.UnixMilli()},
	}
	if got := progress.WeeklyWorkouts(items, sunday); got != 1 {
		t.Fatalf("WeeklyWorkouts on Sunday = %d, want 1", got)
	}
}

func TestComputeTodayStats(t *testing.T) {
	t.Parallel()

	items := []activity.Item{
		{Type: activity.TypeWorkout, Calories: 400, Details: "45 min upper body"},
		{Type: activity.TypeVision, Calories: 160, Details: "form analysis"}, // 160/8 = 20 min
		{Type: activity.TypeNutrition, Calories: 600, Details: "lunch"},      // calories don't count, minutes do
	}

	got := progress.ComputeTodayStats(items)
	if got.Calories != 560 {
		t.Errorf("Calories = %d, want 560", got.Calories)
	}
	// 45 + 20 + 75 (600/8)
	if got.ActiveMinutes != 140 {
		t.Errorf("ActiveMinutes = %d, want 140", got.ActiveMinutes)
	}
	if got.Steps != 140*120 {
		t.Errorf("Steps = %d, want %d", got.Steps, 140*120)
	}
	// calories 560 > 500, minutes 140 > 30, steps 16800 > 6000
	if got.GoalsMet != 3 {
		t.Errorf("GoalsMet = %d, want 3", got.GoalsMet)
	}
}

func TestComputeTodayStatsEmpty(t *testing.T) {
	t.Parallel()

	got := progress.ComputeTodayStats(nil)
	if got.Calories != 0 || got.ActiveMinutes != 0 || got.Steps != 0 || got.GoalsMet != 0 {
		t.Fatalf("empty day stats = %+v", got)
	}
}
