package profile_test

import (
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/features/profile"
)

func TestBMI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		height   float64
		weight   float64
		want     float64
		category string
	}{
		{"underweight", 180, 55, 17.0, "Underweight"},
		{"boundary 18.5 is normal", 200, 74, 18.5, "Normal"},
		{"normal", 180, 75, 23.1, "Normal"},
		{"boundary 25 is overweight", 200, 100, 25.0, "Overweight"},
		{"overweight", 170, 80, 27.7, "Overweight"},
		{"boundary 30 is obese", 200, 120, 30.0, "Obese"},
		{"obese", 165, 95, 34.9, "Obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &profile.BodyProfile{Height: tt.height, Weight: tt.weight}
			got := profile.BMI(p)
			if got.Value != tt.want {
				t.Errorf("BMI value = %v, want %v", got.Value, tt.want)
			}
			if got.Category != tt.category {
				t.Errorf("BMI category = %q, want %q", got.Category, tt.category)
			}
		})
	}
}

func TestRecommendedCalories(t *testing.T) {
	t.Parallel()

	base := profile.BodyProfile{
		Height:       180,
		Weight:       80,
		Age:          30,
		Gender:       "male",
		FitnessLevel: "intermediate",
		Goal:         "maintain",
	}

	// BMR = 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
	// TDEE = 1853.632 * 1.55 = 2873.13
	tests := []struct {
		name   string
		mutate func(*profile.BodyProfile)
		want   int
	}{
		{"maintain", func(p *profile.BodyProfile) {}, 2873},
		{"lose weight subtracts 500", func(p *profile.BodyProfile) { p.Goal = "lose_weight" }, 2373},
		{"build muscle adds 300", func(p *profile.BodyProfile) { p.Goal = "build_muscle" }, 3173},
		{"endurance adds 200", func(p *profile.BodyProfile) { p.Goal = "endurance" }, 3073},
		{"unknown goal maintains", func(p *profile.BodyProfile) { p.Goal = "bulk???" }, 2873},
		{"beginner factor", func(p *profile.BodyProfile) { p.FitnessLevel = "beginner" }, 2549},
		{"advanced factor", func(p *profile.BodyProfile) { p.FitnessLevel = "advanced" }, 3198},
		{"unknown level falls back to intermediate", func(p *profile.BodyProfile) { p.FitnessLevel = "pro" }, 2873},
		// BMR = 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
		{"female formula", func(p *profile.BodyProfile) {
			p.Gender = "female"
			p.Weight = 60
			p.Height = 165
			p.Age = 25
		}, 2178},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := base
			tt.mutate(&p)
			if got := profile.RecommendedCalories(&p); got != tt.want {
				t.Errorf("RecommendedCalories = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExcludedExercises(t *testing.T) {
	t.Parallel()

	p := &profile.BodyProfile{Conditions: []string{"shoulder_injury", "neck_problems", "no_such_condition"}}
	got := profile.ExcludedExercises(p)

	// Upright Rows appears in both conditions and must not repeat.
	want := []string{"Overhead Press", "Lateral Raises", "Upright Rows", "Shrugs", "Neck Bridges"}
	if len(got) != len(want) {
		t.Fatalf("ExcludedExercises = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ExcludedExercises[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsExcluded(t *testing.T) {
	t.Parallel()

	excluded := []string{"Squats", "Deadlift"}

	if !profile.IsExcluded("Jump Squats (weighted)", excluded) {
		t.Error("substring match missed")
	}
	if !profile.IsExcluded("ROMANIAN DEADLIFT", excluded) {
		t.Error("case-insensitive match missed")
	}
	if profile.IsExcluded("Bench Press", excluded) {
		t.Error("false positive")
	}
}

func TestRecommendedIntensity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    profile.BodyProfile
		want string
	}{
		{"beginner is low", profile.BodyProfile{FitnessLevel: "beginner", Height: 180, Weight: 75}, "low"},
		{"high bmi is low", profile.BodyProfile{FitnessLevel: "advanced", Height: 165, Weight: 95}, "low"},
		{"advanced lean is high", profile.BodyProfile{FitnessLevel: "advanced", Height: 180, Weight: 75}, "high"},
		{"intermediate is medium", profile.BodyProfile{FitnessLevel: "intermediate", Height: 180, Weight: 75}, "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := profile.RecommendedIntensity(&tt.p); got != tt.want {
				t.Errorf("RecommendedIntensity = %q, want %q", got, tt.want)
			}
		})
	}
}
