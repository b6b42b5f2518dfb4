package habits_test

import (
	"testing"

	"github.com/fitai-labs/fitai-backend/internal/features/habits"
	"github.com/fitai-labs/fitai-backend/internal/store"
)

func TestListSeedsDefaults(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()

	got := svc.List(st)
	if len(got) != 3 {
		t.Fatalf("List seeded %d habits, want 3", len(got))
	}

	titles := []string{"Drink 3L Water", "8h Sleep", "Meditation"}
	for i, want := range titles {
		if got[i].Title != want {
			t.Errorf("habit %d = %q, want %q", i, got[i].Title, want)
		}
		if len(got[i].Completed) != 7 {
			t.Errorf("habit %q has %d day slots", got[i].Title, len(got[i].Completed))
		}
	}

	// Seeding persists: the second read does not re-seed.
	svc.Delete(st, 1)
	if again := svc.List(st); len(again) != 2 {
		t.Fatalf("defaults re-seeded after delete: %d habits", len(again))
	}
}

func TestAddPrependsWithFreshID(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()

	got := svc.Add(st, "Read 20 Pages")
	if len(got) != 4 {
		t.Fatalf("Add returned %d habits", len(got))
	}
	if got[0].Title != "Read 20 Pages" {
		t.Errorf("new habit not first: %q", got[0].Title)
	}
	if got[0].ID != 4 {
		t.Errorf("new ID = %d, want 4", got[0].ID)
	}

	// IDs never collide even after a delete freed a number.
	svc.Delete(st, 4)
	got = svc.Add(st, "Stretch")
	if got[0].ID != 4 {
		t.Errorf("reused max+1 ID = %d, want 4", got[0].ID)
	}
}

func TestToggleDay(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()
	svc.List(st)

	got, err := svc.ToggleDay(st, 2, 3)
	if err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}
	for _, h := range got {
		if h.ID == 2 && !h.Completed[3] {
			t.Error("slot not flipped on")
		}
	}

	got, err = svc.ToggleDay(st, 2, 3)
	if err != nil {
		t.Fatalf("second ToggleDay: %v", err)
	}
	for _, h := range got {
		if h.ID == 2 && h.Completed[3] {
			t.Error("slot not flipped back off")
		}
	}
}

func TestToggleDayErrors(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()

	if _, err := svc.ToggleDay(st, 1, 7); err != habits.ErrBadDayIndex {
		t.Errorf("day 7 error = %v, want ErrBadDayIndex", err)
	}
	if _, err := svc.ToggleDay(st, 1, -1); err != habits.ErrBadDayIndex {
		t.Errorf("day -1 error = %v, want ErrBadDayIndex", err)
	}
	if _, err := svc.ToggleDay(st, 99, 0); err != habits.ErrHabitNotFound {
		t.Errorf("unknown habit error = %v, want ErrHabitNotFound", err)
	}
}

func TestDeleteUnknownHabit(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()

	if _, err := svc.Delete(st, 42); err != habits.ErrHabitNotFound {
		t.Fatalf("Delete error = %v, want ErrHabitNotFound", err)
	}
}

func TestListRepairsShortWeek(t *testing.T) {
	t.Parallel()

	svc := habits.NewService()
	st := store.NewMemory()

	// A hand-edited or older record may carry fewer than seven slots.
	store.SetJSON(st, store.KeyHabits, []habits.Habit{
		{ID: 1, Title: "Walk", Completed: []bool{true, true}},
	})

	got := svc.List(st)
	if len(got[0].Completed) != 7 {
		t.Fatalf("Completed has %d slots, want 7", len(got[0].Completed))
	}
	if !got[0].Completed[0] || !got[0].Completed[1] || got[0].Completed[2] {
		t.Fatalf("repair lost data: %v", got[0].Completed)
	}
}
