// Package metrics derives energy targets, body metrics and training loads from raw user input.
//
// Every function is pure: the same inputs always produce the same outputs.
package metrics

import (
	"math"

	"github.com/fitevolve/fitevolve/internal/errors"
)

var (
	// ErrInvalidInput is returned for non-physical input such as a zero height.
	ErrInvalidInput = errors.NewSentinel("invalid input")
	// ErrInfeasibleGoal is returned when protein and fat alone exceed the calorie budget.
	ErrInfeasibleGoal = errors.NewSentinel("infeasible goal")
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtraActive      ActivityLevel = "extra_active"
)

// ActivityLevels lists the activity levels from least to most active.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive}
}

type Goal string

const (
	LoseWeight Goal = "lose_weight"
	Maintain   Goal = "maintain"
	GainMuscle Goal = "gain_muscle"
	Strength   Goal = "strength"
	Endurance  Goal = "endurance"
)

func Goals() []Goal {
	return []Goal{LoseWeight, Maintain, GainMuscle, Strength, Endurance}
}

// Valid reports whether g is one of the known goals.
func (g Goal) Valid() bool {
	for _, known := range Goals() {
		if g == known {
			return true
		}
	}
	return false
}

// Valid reports whether l is one of the known activity levels.
func (l ActivityLevel) Valid() bool {
	_, ok := activityMultipliers[l]
	return ok
}

// Valid reports whether g is male or female.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// round rounds half up, towards positive infinity, so that -2.5 becomes -2.
func round(x float64) float64 {
	return math.Floor(x + 0.5) //nolint:mnd // half.
}

// roundTo rounds x to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return round(x*scale) / scale
}

// RoundOneDecimal rounds x to one decimal place.
func RoundOneDecimal(x float64) float64 {
	return roundTo(x, 1)
}

// Round rounds x half up to the nearest integer.
func Round(x float64) int {
	return int(round(x))
}
