package profile

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/fitevolve/fitevolve/internal/metrics"
)

type FitnessLevel string

const (
	Beginner     FitnessLevel = "beginner"
	Intermediate FitnessLevel = "intermediate"
	Advanced     FitnessLevel = "advanced"
)

// Restrictions are the health and diet constraints collected during onboarding.
type Restrictions struct {
	Injuries            []string `json:"injuries,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	FoodAllergies       []string `json:"foodAllergies,omitempty"`
}

// UserProfile describes the user. BMR and TDEE are derived from the body metrics and never set directly.
type UserProfile struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Age                int                   `json:"age"`
	Gender             metrics.Gender        `json:"gender"`
	HeightCm           float64               `json:"height"`
	WeightKg           float64               `json:"weight"`
	TargetWeightKg     *float64              `json:"targetWeight,omitempty"`
	ActivityLevel      metrics.ActivityLevel `json:"activityLevel"`
	FitnessLevel       FitnessLevel          `json:"fitnessLevel"`
	Goal               metrics.Goal          `json:"goal"`
	WeeklyFrequency    int                   `json:"weeklyFrequency"`
	SessionMinutes     int                   `json:"sessionDuration"`
	AvailableEquipment []string              `json:"availableEquipment"`
	Restrictions       Restrictions          `json:"restrictions"`
	BMR                float64               `json:"bmr"`
	TDEE               float64               `json:"tdee"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
}

// NutritionGoals are the daily targets valid from StartDate. Only the latest record is active.
type NutritionGoals struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	metrics.Targets
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  bool       `json:"isActive"`
}

// OnboardingData holds the answers of the onboarding questionnaire.
type OnboardingData struct {
	Name               string                `json:"name"`
	Age                int                   `json:"age"`
	Gender             metrics.Gender        `json:"gender"`
	HeightCm           float64               `json:"height"`
	WeightKg           float64               `json:"weight"`
	Goal               metrics.Goal          `json:"primaryGoal"`
	TargetWeightKg     *float64              `json:"targetWeight,omitempty"`
	TimeframeWeeks     int                   `json:"timeframe"`
	ActivityLevel      metrics.ActivityLevel `json:"activityLevel"`
	FitnessLevel       FitnessLevel          `json:"fitnessLevel"`
	WeeklyFrequency    int                   `json:"weeklyFrequency"`
	SessionMinutes     int                   `json:"sessionDuration"`
	AvailableEquipment []string              `json:"availableEquipment"`
	Restrictions       Restrictions          `json:"restrictions"`
}

// Validate reports every problem with the answers at once.
func (d OnboardingData) Validate() error {
	var problems []string
	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "name is required")
	}
	if d.Age < 1 || d.Age > 120 {
		problems = append(problems, fmt.Sprintf("age %d out of range", d.Age))
	}
	if !d.Gender.Valid() {
		problems = append(problems, fmt.Sprintf("unknown gender %q", d.Gender))
	}
	if d.HeightCm <= 0 {
		problems = append(problems, "height must be positive")
	}
	if d.WeightKg <= 0 {
		problems = append(problems, "weight must be positive")
	}
	if !d.Goal.Valid() {
		problems = append(problems, fmt.Sprintf("unknown goal %q", d.Goal))
	}
	if !d.ActivityLevel.Valid() {
		problems = append(problems, fmt.Sprintf("unknown activity level %q", d.ActivityLevel))
	}
	if !slices.Contains([]FitnessLevel{Beginner, Intermediate, Advanced}, d.FitnessLevel) {
		problems = append(problems, fmt.Sprintf("unknown fitness level %q", d.FitnessLevel))
	}
	if d.WeeklyFrequency < 0 || d.WeeklyFrequency > 7 {
		problems = append(problems, fmt.Sprintf("weekly frequency %d out of range", d.WeeklyFrequency))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", metrics.ErrInvalidInput, strings.Join(problems, ", "))
	}
	return nil
}

// BodyMetricsPatch changes the inputs of the derived metrics. Nil fields are left untouched.
type BodyMetricsPatch struct {
	WeightKg      *float64               `json:"weight,omitempty"`
	HeightCm      *float64               `json:"height,omitempty"`
	Age           *int                   `json:"age,omitempty"`
	Gender        *metrics.Gender        `json:"gender,omitempty"`
	ActivityLevel *metrics.ActivityLevel `json:"activityLevel,omitempty"`
	Goal          *metrics.Goal          `json:"goal,omitempty"`
}

// Overview is the profile enriched with the body metrics shown on the dashboard.
type Overview struct {
	Profile       UserProfile         `json:"profile"`
	Goals         NutritionGoals      `json:"goals"`
	BMI           float64             `json:"bmi"`
	BMICategory   metrics.BMICategory `json:"bmiCategory"`
	WaterTargetMl int                 `json:"waterTarget"`
}
