package workout

import (
	"time"

	"github.com/fitevolve/fitevolve/internal/metrics"
)

// PlannedExercise is an exercise scheduled on a workout day.
type PlannedExercise struct {
	ID            string   `json:"id"`
	ExerciseID    string   `json:"exerciseId"`
	Order         int      `json:"order"`
	Sets          int      `json:"sets"`
	TargetRepsMin int      `json:"targetRepsMin"`
	TargetRepsMax int      `json:"targetRepsMax"`
	TargetWeight  *float64 `json:"targetWeight,omitempty"`
	RestSeconds   int      `json:"restSeconds"`
	Notes         string   `json:"notes,omitempty"`
}

// Day is one day of the weekly schedule, e.g. "Push Day".
type Day struct {
	ID               string            `json:"id"`
	DayOfWeek        time.Weekday      `json:"dayOfWeek"`
	Name             string            `json:"name"`
	Exercises        []PlannedExercise `json:"exercises"`
	EstimatedMinutes int               `json:"estimatedDuration"`
}

// Plan is the user's weekly training schedule.
type Plan struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	Name           string       `json:"name"`
	Goal           metrics.Goal `json:"goal"`
	WeeklySchedule []Day        `json:"weeklySchedule"`
	DurationWeeks  int          `json:"duration"`
	CurrentWeek    int          `json:"currentWeek"`
	IsActive       bool         `json:"isActive"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// CompletedSet is one logged set.
type CompletedSet struct {
	ID          string  `json:"id"`
	SetNumber   int     `json:"setNumber"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	RPE         *int    `json:"rpe,omitempty"`
	RestSeconds *int    `json:"restSeconds,omitempty"`
	IsCompleted bool    `json:"isCompleted"`
	IsFailure   bool    `json:"isFailure"`
	Notes       string  `json:"notes,omitempty"`
}

// counts reports whether the set contributes to volume and progression.
func (s CompletedSet) counts() bool {
	return s.IsCompleted && !s.IsFailure
}

// SetPatch amends a logged set. Nil fields are left untouched.
type SetPatch struct {
	Weight      *float64 `json:"weight,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	RPE         *int     `json:"rpe,omitempty"`
	IsCompleted *bool    `json:"isCompleted,omitempty"`
	IsFailure   *bool    `json:"isFailure,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// CompletedExercise collects the sets logged for one planned exercise.
type CompletedExercise struct {
	ID         string         `json:"id"`
	ExerciseID string         `json:"exerciseId"`
	Sets       []CompletedSet `json:"sets"`
	Notes      string         `json:"notes,omitempty"`
}

// Session is one training occurrence. TotalVolume and Duration are set when the session ends.
type Session struct {
	ID                 string              `json:"id"`
	UserID             string              `json:"userId"`
	WorkoutDayID       string              `json:"workoutDayId"`
	Date               time.Time           `json:"date"`
	StartTime          time.Time           `json:"startTime"`
	EndTime            *time.Time          `json:"endTime,omitempty"`
	CompletedExercises []CompletedExercise `json:"completedExercises"`
	// TotalVolume is the sum of weight × reps in kg over completed sets that did not fail.
	TotalVolume float64 `json:"totalVolume"`
	// Duration is in whole minutes.
	Duration    int    `json:"duration"`
	Notes       string `json:"notes,omitempty"`
	RatingRPE   *int   `json:"ratingRPE,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// Direction moves the exercise cursor of the active session.
type Direction string

const (
	Next     Direction = "next"
	Previous Direction = "previous"
)

// Stats summarises the workout history.
type Stats struct {
	TotalSessions int     `json:"totalSessions"`
	TotalVolume   float64 `json:"totalVolume"`
	// AverageSessionDuration is the mean duration in minutes.
	AverageSessionDuration float64 `json:"averageSessionDuration"`
	// StrengthGains maps exercise ids to the change of the best estimated one-repetition maximum between the first
	// and the latest session the exercise was successfully performed in.
	StrengthGains         map[string]float64 `json:"strengthGains"`
	ConsistencyPercentage int                `json:"consistencyPercentage"`
}

// Progression is the weight recommendation for the next session of an exercise.
type Progression struct {
	ExerciseID string `json:"exerciseId"`
	metrics.Suggestion
}
