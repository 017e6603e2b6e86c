// Package profile manages the user profile, its derived energy metrics and the nutrition goal history.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/store"
	"github.com/google/uuid"
)

// ErrNotOnboarded is returned when the profile is read or patched before onboarding.
var ErrNotOnboarded = errors.NewSentinel("user not onboarded")

// Service handles the business logic for the user profile.
type Service struct {
	kv     store.KeyValue
	logger *slog.Logger
	now    func() time.Time
	// mu serialises the read-modify-write cycles on the user record.
	mu sync.Mutex
}

// NewService creates a new profile service.
func NewService(kv store.KeyValue, logger *slog.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		mu:     sync.Mutex{},
	}
}

// WithClock replaces the clock used for timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CompleteOnboarding creates the profile and the first nutrition goals, replacing any previous profile.
func (s *Service) CompleteOnboarding(ctx context.Context, userID string, data OnboardingData) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state State
	err := store.Mutate(ctx, s.kv, userID, store.User, func(st *State) error {
		if err := st.CompleteOnboarding(userID, data, uuid.NewString(), s.now()); err != nil {
			return err
		}
		state = *st
		return nil
	})
	if err != nil {
		return State{}, fmt.Errorf("complete onboarding: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "completed onboarding",
		slog.String("user_id", userID),
		slog.String("goal", string(data.Goal)),
		slog.Int("daily_calories", state.NutritionGoals.DailyCalories))
	return state, nil
}

// UpdateBodyMetrics applies the patch and rolls the nutrition goals over when the targets change.
func (s *Service) UpdateBodyMetrics(ctx context.Context, userID string, patch BodyMetricsPatch) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		state        State
		goalsChanged bool
	)
	err := store.Mutate(ctx, s.kv, userID, store.User, func(st *State) error {
		var err error
		if goalsChanged, err = st.ApplyBodyMetrics(patch, uuid.NewString(), s.now()); err != nil {
			return err
		}
		state = *st
		return nil
	})
	if err != nil {
		return State{}, fmt.Errorf("update body metrics: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "updated body metrics",
		slog.String("user_id", userID),
		slog.Float64("weight_kg", state.User.WeightKg),
		slog.Float64("tdee", state.User.TDEE),
		slog.Bool("goals_changed", goalsChanged))
	return state, nil
}

// Get returns the stored state or ErrNotOnboarded.
func (s *Service) Get(ctx context.Context, userID string) (State, error) {
	state, err := store.Get[State](ctx, s.kv, userID, store.User)
	if err != nil {
		return State{}, fmt.Errorf("get profile: %w", err)
	}
	if !state.IsOnboarded || state.User == nil || state.NutritionGoals == nil {
		return State{}, ErrNotOnboarded
	}
	return state, nil
}

// Overview returns the profile with BMI and water target.
func (s *Service) Overview(ctx context.Context, userID string) (Overview, error) {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	bmi, err := metrics.BMI(state.User.WeightKg, state.User.HeightCm)
	if err != nil {
		return Overview{}, fmt.Errorf("compute bmi: %w", err)
	}
	return Overview{
		Profile:       *state.User,
		Goals:         *state.NutritionGoals,
		BMI:           bmi,
		BMICategory:   metrics.BMICategoryOf(bmi),
		WaterTargetMl: metrics.WaterTarget(state.User.WeightKg),
	}, nil
}

// Reset forgets the profile. Nutrition and workout logs are kept.
func (s *Service) Reset(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, userID, store.User); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "reset profile", slog.String("user_id", userID))
	return nil
}
