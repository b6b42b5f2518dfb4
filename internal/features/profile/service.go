package profile

import (
	"errors"
	"time"

	"github.com/fitai-labs/fitai-backend/internal/notify"
	"github.com/fitai-labs/fitai-backend/internal/store"
)

var ErrInvalidMetrics = errors.New("height, weight, or age out of range")

// Service manages the stored body profile. Range validation happens
// here, at the edit boundary; the storage layer itself accepts any
// value, including invalid ones written by other paths (restores,
// imports).
type Service struct {
	bus *notify.Bus
	now func() time.Time
}

func NewService(bus *notify.Bus) *Service {
	return &Service{bus: bus, now: time.Now}
}

// Get returns the stored profile, or nil when absent or unparseable.
func (s *Service) Get(st store.Store) *BodyProfile {
	var p BodyProfile
	if !store.GetJSON(st, store.KeyProfile, &p) {
		return nil
	}
	return &p
}

// Save validates the edit and persists the profile, preserving the
// original creation timestamp across updates.
func (s *Service) Save(st store.Store, req *SaveProfileRequest) (*BodyProfile, error) {
	if req.Height <= 50 || req.Height > 250 ||
		req.Weight <= 20 || req.Weight > 300 ||
		req.Age <= 10 || req.Age > 100 {
		return nil, ErrInvalidMetrics
	}

	now := s.now().UTC().Format(time.RFC3339)
	p := BodyProfile{
		Height:       req.Height,
		Weight:       req.Weight,
		Age:          req.Age,
		Gender:       req.Gender,
		FitnessLevel: req.FitnessLevel,
		Goal:         req.Goal,
		Conditions:   req.Conditions,
		Dietary:      req.Dietary,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if existing := s.Get(st); existing != nil && existing.CreatedAt != "" {
		p.CreatedAt = existing.CreatedAt
	}

	if err := store.SetJSON(st, store.KeyProfile, &p); err != nil {
		return nil, err
	}

	s.bus.Publish(notify.EventUserUpdated, nil)
	return &p, nil
}

// Onboarding returns the stored onboarding answers, or nil. Answers are
// written once by the onboarding flow and never edited afterwards.
func (s *Service) Onboarding(st store.Store) *OnboardingAnswers {
	var a OnboardingAnswers
	if !store.GetJSON(st, store.KeyOnboarding, &a) {
		return nil
	}
	return &a
}

// Recommendations derives every calculator output for the stored
// profile in one call.
func (s *Service) Recommendations(p *BodyProfile) *RecommendationsResponse {
	sets, reps := RecommendedSetsReps(p)
	return &RecommendationsResponse{
		BMI:               BMI(p),
		DailyCalories:     RecommendedCalories(p),
		Intensity:         RecommendedIntensity(p),
		Sets:              sets,
		Reps:              reps,
		ExcludedExercises: ExcludedExercises(p),
	}
}
