package profile

// BodyProfile holds the user's body metrics and preferences. The
// storage layer accepts whatever it is given; range checks live at the
// edit boundary only.
type BodyProfile struct {
	Height       float64  `json:"height"` // cm
	Weight       float64  `json:"weight"` // kg
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`       // male, female, other
	FitnessLevel string   `json:"fitnessLevel"` // beginner, intermediate, advanced
	Goal         string   `json:"goal"`         // lose_weight, build_muscle, maintain, endurance
	Conditions   []string `json:"conditions"`   // body condition IDs
	Dietary      Dietary  `json:"dietary"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type Dietary struct {
	Preference         string   `json:"preference"` // veg, non-veg, vegan
	Allergies          []string `json:"allergies"`
	DailyCalorieTarget int      `json:"dailyCalorieTarget"`
}

// OnboardingAnswers is the raw output of the onboarding flow: loose
// strings, written once, never edited. Kept as the fallback seed when a
// restore brings back onboarding data but no profile.
type OnboardingAnswers struct {
	Name   string `json:"name"`
	Weight string `json:"weight"`
	Height string `json:"height"`
	Age    string `json:"age"`
	Gender string `json:"gender"`
	Goal   string `json:"goal"`
}

// BodyCondition is a predefined condition that excludes exercises from
// generated plans.
type BodyCondition struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ExcludeExercises []string `json:"excludeExercises"`
}

// BodyConditions is the fixed lookup table of supported conditions.
var BodyConditions = []BodyCondition{
	{ID: "back_pain", Name: "Back Pain", Description: "Lower or upper back issues", ExcludeExercises: []string{"Deadlift", "Bent Over Row", "Good Mornings"}},
	{ID: "knee_issues", Name: "Knee Issues", Description: "Knee pain or injuries", ExcludeExercises: []string{"Squats", "Lunges", "Jump Squats", "Box Jumps"}},
	{ID: "shoulder_injury", Name: "Shoulder Injury", Description: "Rotator cuff or shoulder problems", ExcludeExercises: []string{"Overhead Press", "Lateral Raises", "Upright Rows"}},
	{ID: "wrist_pain", Name: "Wrist Pain", Description: "Carpal tunnel or wrist issues", ExcludeExercises: []string{"Push-ups", "Front Squats", "Wrist Curls"}},
	{ID: "neck_problems", Name: "Neck Problems", Description: "Cervical spine issues", ExcludeExercises: []string{"Shrugs", "Neck Bridges", "Upright Rows"}},
	{ID: "heart_condition", Name: "Heart Condition", Description: "Cardiovascular limitations", ExcludeExercises: []string{"HIIT", "Burpees", "Sprint Intervals"}},
}

// --- DTOs ---

type SaveProfileRequest struct {
	Height       float64  `json:"height"`
	Weight       float64  `json:"weight"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	FitnessLevel string   `json:"fitnessLevel"`
	Goal         string   `json:"goal"`
	Conditions   []string `json:"conditions"`
	Dietary      Dietary  `json:"dietary"`
}

type BMIResponse struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type RecommendationsResponse struct {
	BMI               BMIResponse `json:"bmi"`
	DailyCalories     int         `json:"daily_calories"`
	Intensity         string      `json:"intensity"`
	Sets              int         `json:"sets"`
	Reps              string      `json:"reps"`
	ExcludedExercises []string    `json:"excluded_exercises"`
}
