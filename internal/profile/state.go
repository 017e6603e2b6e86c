package profile

import (
	"fmt"
	"slices"
	"time"

	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/ptr"
)

// State is the persisted user record.
type State struct {
	User           *UserProfile     `json:"user"`
	NutritionGoals *NutritionGoals  `json:"nutritionGoals"`
	GoalHistory    []NutritionGoals `json:"goalHistory"`
	IsOnboarded    bool             `json:"isOnboarded"`
}

// CompleteOnboarding replaces the state with a new profile and its first nutrition goals.
func (s *State) CompleteOnboarding(userID string, data OnboardingData, goalID string, now time.Time) error {
	if err := data.Validate(); err != nil {
		return err
	}
	user := UserProfile{
		ID:                 userID,
		Name:               data.Name,
		Age:                data.Age,
		Gender:             data.Gender,
		HeightCm:           data.HeightCm,
		WeightKg:           data.WeightKg,
		TargetWeightKg:     data.TargetWeightKg,
		ActivityLevel:      data.ActivityLevel,
		FitnessLevel:       data.FitnessLevel,
		Goal:               data.Goal,
		WeeklyFrequency:    data.WeeklyFrequency,
		SessionMinutes:     data.SessionMinutes,
		AvailableEquipment: slices.Clone(data.AvailableEquipment),
		Restrictions:       data.Restrictions,
		BMR:                0,
		TDEE:               0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := user.recomputeEnergy(); err != nil {
		return err
	}
	targets, err := metrics.ComputeNutritionGoals(user.TDEE, user.WeightKg, user.Goal)
	if err != nil {
		return fmt.Errorf("compute nutrition goals: %w", err)
	}
	goals := NutritionGoals{
		ID:        goalID,
		UserID:    userID,
		Targets:   targets,
		StartDate: now,
		EndDate:   nil,
		IsActive:  true,
	}
	*s = State{
		User:           &user,
		NutritionGoals: &goals,
		GoalHistory:    []NutritionGoals{goals},
		IsOnboarded:    true,
	}
	return nil
}

// ApplyBodyMetrics patches the profile and recomputes BMR and TDEE. When the resulting targets differ from the
// active goals, the active goals are closed and a new record becomes active. It reports whether goals changed.
func (s *State) ApplyBodyMetrics(patch BodyMetricsPatch, goalID string, now time.Time) (bool, error) {
	if !s.IsOnboarded || s.User == nil {
		return false, ErrNotOnboarded
	}
	user := *s.User
	user.WeightKg = ptr.Deref(patch.WeightKg, user.WeightKg)
	user.HeightCm = ptr.Deref(patch.HeightCm, user.HeightCm)
	user.Age = ptr.Deref(patch.Age, user.Age)
	user.Gender = ptr.Deref(patch.Gender, user.Gender)
	user.ActivityLevel = ptr.Deref(patch.ActivityLevel, user.ActivityLevel)
	user.Goal = ptr.Deref(patch.Goal, user.Goal)
	if patch.Goal != nil && !user.Goal.Valid() {
		return false, fmt.Errorf("%w: unknown goal %q", metrics.ErrInvalidInput, user.Goal)
	}
	if patch.ActivityLevel != nil && !user.ActivityLevel.Valid() {
		return false, fmt.Errorf("%w: unknown activity level %q", metrics.ErrInvalidInput, user.ActivityLevel)
	}
	if patch.Age != nil && (user.Age < 1 || user.Age > 120) {
		return false, fmt.Errorf("%w: age %d out of range", metrics.ErrInvalidInput, user.Age)
	}
	if patch.Gender != nil && !user.Gender.Valid() {
		return false, fmt.Errorf("%w: unknown gender %q", metrics.ErrInvalidInput, user.Gender)
	}
	if err := user.recomputeEnergy(); err != nil {
		return false, err
	}
	targets, err := metrics.ComputeNutritionGoals(user.TDEE, user.WeightKg, user.Goal)
	if err != nil {
		return false, fmt.Errorf("compute nutrition goals: %w", err)
	}
	user.UpdatedAt = now
	s.User = &user

	if s.NutritionGoals != nil && s.NutritionGoals.Targets == targets {
		return false, nil
	}
	for i := range s.GoalHistory {
		if s.GoalHistory[i].IsActive {
			s.GoalHistory[i].IsActive = false
			s.GoalHistory[i].EndDate = ptr.Ref(now)
		}
	}
	goals := NutritionGoals{
		ID:        goalID,
		UserID:    user.ID,
		Targets:   targets,
		StartDate: now,
		EndDate:   nil,
		IsActive:  true,
	}
	s.GoalHistory = append(s.GoalHistory, goals)
	s.NutritionGoals = &goals
	return true, nil
}

func (u *UserProfile) recomputeEnergy() error {
	bmr, err := metrics.BMR(u.WeightKg, u.HeightCm, u.Age, u.Gender)
	if err != nil {
		return fmt.Errorf("compute bmr: %w", err)
	}
	u.BMR = bmr
	u.TDEE = metrics.TDEE(bmr, u.ActivityLevel)
	return nil
}
