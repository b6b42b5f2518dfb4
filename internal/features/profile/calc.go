package profile

import (
	"math"
	"strings"
)

// BMI category boundaries (WHO). Fixed constants; boundary values fall
// into the upper band.
const (
	bmiUnderweight = 18.5
	bmiOverweight  = 25.0
	bmiObese       = 30.0
)

// BMI computes body mass index from the profile, rounded to one
// decimal. The category is derived from the unrounded value.
func BMI(p *BodyProfile) BMIResponse {
	heightM := p.Height / 100
	bmi := p.Weight / (heightM * heightM)

	category := "Normal"
	switch {
	case bmi < bmiUnderweight:
		category = "Underweight"
	case bmi < bmiOverweight:
		category = "Normal"
	case bmi < bmiObese:
		category = "Overweight"
	default:
		category = "Obese"
	}

	return BMIResponse{
		Value:    math.Round(bmi*10) / 10,
		Category: category,
	}
}

var activityFactors = map[string]float64{
	"beginner":     1.375,
	"intermediate": 1.55,
	"advanced":     1.725,
}

// RecommendedCalories computes the daily calorie target: Harris-Benedict
// BMR, scaled by the fitness-level activity factor, adjusted for the
// goal. Rounding happens once, at the end.
func RecommendedCalories(p *BodyProfile) int {
	var bmr float64
	if p.Gender == "male" {
		bmr = 88.362 + 13.397*p.Weight + 4.799*p.Height - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*p.Weight + 3.098*p.Height - 4.330*float64(p.Age)
	}

	factor, ok := activityFactors[p.FitnessLevel]
	if !ok {
		factor = activityFactors["intermediate"]
	}
	tdee := bmr * factor

	switch p.Goal {
	case "lose_weight":
		return int(math.Round(tdee - 500))
	case "build_muscle":
		return int(math.Round(tdee + 300))
	case "endurance":
		return int(math.Round(tdee + 200))
	default:
		return int(math.Round(tdee))
	}
}

// ExcludedExercises returns the deduplicated union of the exclusion
// lists for every condition selected on the profile, preserving table
// order. Unknown condition IDs are ignored.
func ExcludedExercises(p *BodyProfile) []string {
	selected := make(map[string]bool, len(p.Conditions))
	for _, id := range p.Conditions {
		selected[id] = true
	}

	seen := make(map[string]bool)
	var excluded []string
	for _, cond := range BodyConditions {
		if !selected[cond.ID] {
			continue
		}
		for _, ex := range cond.ExcludeExercises {
			if !seen[ex] {
				seen[ex] = true
				excluded = append(excluded, ex)
			}
		}
	}
	return excluded
}

// IsExcluded reports whether an exercise name hits any exclusion, by
// case-insensitive substring match. Used as a filter predicate over
// generated workout plans.
func IsExcluded(exercise string, excluded []string) bool {
	lower := strings.ToLower(exercise)
	for _, ex := range excluded {
		if strings.Contains(lower, strings.ToLower(ex)) {
			return true
		}
	}
	return false
}

// RecommendedIntensity picks a workout intensity from fitness level and
// BMI.
func RecommendedIntensity(p *BodyProfile) string {
	bmi := BMI(p)
	if p.FitnessLevel == "beginner" || bmi.Value > 30 {
		return "low"
	}
	if p.FitnessLevel == "advanced" && bmi.Value < 25 {
		return "high"
	}
	return "medium"
}

// RecommendedSetsReps returns the sets/reps scheme for the fitness
// level.
func RecommendedSetsReps(p *BodyProfile) (sets int, reps string) {
	switch p.FitnessLevel {
	case "beginner":
		return 2, "8-10"
	case "advanced":
		return 4, "12-15"
	default:
		return 3, "10-12"
	}
}
