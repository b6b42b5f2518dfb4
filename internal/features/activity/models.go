package activity

// Activity types.
const (
	TypeWorkout   = "Workout"
	TypeNutrition = "Nutrition"
	TypeScan      = "Scan"
	TypeVision    = "Vision"
)

// MaxItems caps the ledger; the oldest entries beyond it are dropped on
// every insert.
const MaxItems = 50

// Item is one logged user action. Timestamp (epoch ms) is the
// authoritative ordering key; Date is a lossy display string and must
// never be parsed back into an instant.
type Item struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Details   string `json:"details"`
	Calories  int    `json:"calories"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
}

// LogRequest is an Item minus the fields the ledger assigns.
type LogRequest struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Details  string `json:"details"`
	Calories int    `json:"calories"`
}

// WorkoutView is the display-oriented projection of a workout-like
// activity. Derived and lossy; never a write path.
type WorkoutView struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Duration  string   `json:"duration"`
	Calories  string   `json:"calories"`
	Date      string   `json:"date"`
	Intensity string   `json:"intensity"`
	Exercises []string `json:"exercises"`
}
