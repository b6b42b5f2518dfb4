// Package expenses tracks fitness-related spending.
package expenses

import (
	"errors"
	"math"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/notify"
	"github.com/fitai-labs/fitai-backend/internal/store"
)

var (
	ErrUnknownCategory = errors.New("unknown expense category")
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Categories is the fixed set of expense categories.
var Categories = []string{"supplements", "gear", "food", "memberships"}

// Expense is one spending entry.
type Expense struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // ISO 8601
}

// AddRequest is an Expense minus the assigned fields.
type AddRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Stats is the spending breakdown for the expenses dashboard.
type Stats struct {
	TotalSpent         float64            `json:"total_spent"`
	CategoryTotals     map[string]float64 `json:"category_totals"`
	TopCategory        string             `json:"top_category"`
	TopCategoryPercent int                `json:"top_category_percent"`
	CostPerWorkout     float64            `json:"cost_per_workout"`
	HealthROI          float64            `json:"health_roi"`
}

type Service struct {
	bus *notify.Bus
	now func() time.Time
}

func NewService(bus *notify.Bus) *Service {
	return &Service{bus: bus, now: time.Now}
}

// List returns all stored expenses; missing or corrupt data reads as
// empty.
func (s *Service) List(st store.Store) []Expense {
	var out []Expense
	if !store.GetJSON(st, store.KeyExpenses, &out) {
		return nil
	}
	return out
}

// Add validates and appends an expense, then broadcasts expense_added.
func (s *Service) Add(st store.Store, req *AddRequest) (*Expense, error) {
	if !validCategory(req.Category) {
		return nil, ErrUnknownCategory
	}
	if req.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	now := s.now()
	exp := Expense{
		ID:          now.UnixMilli(),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        now.UTC().Format(time.RFC3339),
	}

	all := append(s.List(st), exp)
	if err := store.SetJSON(st, store.KeyExpenses, all); err != nil {
		return nil, err
	}

	s.bus.Publish(notify.EventExpenseAdded, &exp)
	return &exp, nil
}

// Delete removes an expense by ID.
func (s *Service) Delete(st store.Store, id int64) error {
	all := s.List(st)
	kept := all[:0]
	found := false
	for _, e := range all {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrExpenseNotFound
	}
	return store.SetJSON(st, store.KeyExpenses, kept)
}

// ComputeStats derives the spending breakdown. workoutCount feeds the
// cost-per-workout and ROI figures.
func (s *Service) ComputeStats(st store.Store, workoutCount int) Stats {
	totals := make(map[string]float64, len(Categories))
	for _, cat := range Categories {
		totals[cat] = 0
	}

	var totalSpent float64
	for _, e := range s.List(st) {
		totals[e.Category] += e.Amount
		totalSpent += e.Amount
	}

	topCategory := "food"
	var topAmount float64
	for _, cat := range Categories {
		if totals[cat] > topAmount {
			topAmount = totals[cat]
			topCategory = cat
		}
	}

	stats := Stats{
		TotalSpent:     totalSpent,
		CategoryTotals: totals,
		TopCategory:    topCategory,
	}
	if totalSpent > 0 {
		stats.TopCategoryPercent = int(math.Round(topAmount / totalSpent * 100))
	}
	if workoutCount > 0 {
		stats.CostPerWorkout = math.Round(totalSpent/float64(workoutCount)*100) / 100
		stats.HealthROI = math.Round(float64(workoutCount)*50/math.Max(totalSpent, 1)*10) / 10
	}
	return stats
}

func validCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
