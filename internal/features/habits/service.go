// Package habits manages the weekly habit tracker. Each habit carries a
// fixed seven-slot completion buffer indexed by weekday; the buffer is
// reused week after week and never resets at a week boundary.
package habits

import (
	"errors"

	"github.com/fitai-labs/fitai-backend/internal/store"
)

const daysPerWeek = 7

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrBadDayIndex   = errors.New("day index out of range")
)

// Habit is one tracked habit. Color and Bg are presentation hints the
// client persists alongside the data.
type Habit struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	IconName  string `json:"iconName"`
	Color     string `json:"color"`
	Bg        string `json:"bg"`
	Completed []bool `json:"completed"`
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// List returns all habits, seeding the defaults on first read.
func (s *Service) List(st store.Store) []Habit {
	var habits []Habit
	if !store.GetJSON(st, store.KeyHabits, &habits) {
		habits = defaultHabits()
		_ = store.SetJSON(st, store.KeyHabits, habits)
		return habits
	}
	for i := range habits {
		habits[i].Completed = normalizeWeek(habits[i].Completed)
	}
	return habits
}

// Add creates a habit with a fresh ID and an empty week.
func (s *Service) Add(st store.Store, title string) []Habit {
	habits := s.List(st)

	maxID := 0
	for _, h := range habits {
		if h.ID > maxID {
			maxID = h.ID
		}
	}

	habit := Habit{
		ID:        maxID + 1,
		Title:     title,
		IconName:  "Book",
		Color:     "text-emerald-400",
		Bg:        "bg-emerald-400/10",
		Completed: make([]bool, daysPerWeek),
	}
	habits = append([]Habit{habit}, habits...)
	_ = store.SetJSON(st, store.KeyHabits, habits)
	return habits
}

// ToggleDay flips one weekday slot on a habit.
func (s *Service) ToggleDay(st store.Store, id, dayIndex int) ([]Habit, error) {
	if dayIndex < 0 || dayIndex >= daysPerWeek {
		return nil, ErrBadDayIndex
	}

	habits := s.List(st)
	found := false
	for i := range habits {
		if habits[i].ID == id {
			habits[i].Completed[dayIndex] = !habits[i].Completed[dayIndex]
			found = true
			break
		}
	}
	if !found {
		return nil, ErrHabitNotFound
	}

	_ = store.SetJSON(st, store.KeyHabits, habits)
	return habits, nil
}

// Delete removes a habit.
func (s *Service) Delete(st store.Store, id int) ([]Habit, error) {
	habits := s.List(st)
	kept := habits[:0]
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return nil, ErrHabitNotFound
	}

	_ = store.SetJSON(st, store.KeyHabits, kept)
	return kept, nil
}

func normalizeWeek(week []bool) []bool {
	if len(week) == daysPerWeek {
		return week
	}
	fixed := make([]bool, daysPerWeek)
	copy(fixed, week)
	return fixed
}

func defaultHabits() []Habit {
	return []Habit{
		{ID: 1, Title: "Drink 3L Water", IconName: "Droplets", Color: "text-sky-400", Bg: "bg-sky-400/10", Completed: make([]bool, daysPerWeek)},
		{ID: 2, Title: "8h Sleep", IconName: "Moon", Color: "text-indigo-400", Bg: "bg-indigo-400/10", Completed: make([]bool, daysPerWeek)},
		{ID: 3, Title: "Meditation", IconName: "BrainCircuit", Color: "text-rose-400", Bg: "bg-rose-400/10", Completed: make([]bool, daysPerWeek)},
	}
}
