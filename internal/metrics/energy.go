package metrics

import (
	"fmt"
)

//nolint:gochecknoglobals // lookup table.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// BMR returns the basal metabolic rate in kcal/day using the Mifflin–St Jeor equation.
func BMR(weightKg, heightCm float64, ageYears int, gender Gender) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight %v kg, height %v cm", ErrInvalidInput, weightKg, heightCm)
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears) //nolint:mnd // Mifflin–St Jeor.
	if gender == Male {
		return bmr + 5, nil //nolint:mnd // Mifflin–St Jeor.
	}
	return bmr - 161, nil //nolint:mnd // Mifflin–St Jeor.
}

// TDEE scales bmr by the activity multiplier. Unknown levels count as sedentary.
func TDEE(bmr float64, level ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = activityMultipliers[Sedentary]
	}
	return bmr * multiplier
}

// CalorieAdjustment is the daily kcal surplus or deficit for a goal.
func CalorieAdjustment(goal Goal) int {
	switch goal {
	case LoseWeight:
		return -500 //nolint:mnd // deficit.
	case GainMuscle:
		return 300 //nolint:mnd // surplus.
	case Strength:
		return 200 //nolint:mnd // slight surplus.
	case Maintain, Endurance:
		return 0
	}
	return 0
}

// ProteinPerKg is the daily protein target in grams per kg of body weight for a goal.
func ProteinPerKg(goal Goal) float64 {
	switch goal {
	case LoseWeight:
		return 2.2 //nolint:mnd // g/kg.
	case GainMuscle:
		return 2.0 //nolint:mnd // g/kg.
	case Strength:
		return 1.8 //nolint:mnd // g/kg.
	case Maintain, Endurance:
		return 1.6 //nolint:mnd // g/kg.
	}
	return 1.6 //nolint:mnd // g/kg.
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
	fatCalorieRatio    = 0.25
	fiberPerThousand   = 14
	waterMlPerKg       = 35
)

// Targets are the daily nutrition targets derived from energy expenditure and body weight.
type Targets struct {
	DailyCalories int `json:"dailyCalories"`
	ProteinGrams  int `json:"proteinGrams"`
	CarbsGrams    int `json:"carbsGrams"`
	FatGrams      int `json:"fatGrams"`
	FiberGrams    int `json:"fiberGrams"`
	WaterMl       int `json:"waterMl"`
}

// ComputeNutritionGoals splits the goal-adjusted tdee into macro targets.
//
// Protein is allocated per kg of body weight, fat gets a flat 25 % of the calories and carbohydrates get the
// remainder. ErrInfeasibleGoal is returned when the remainder would be negative.
func ComputeNutritionGoals(tdee, weightKg float64, goal Goal) (Targets, error) {
	if weightKg <= 0 {
		return Targets{}, fmt.Errorf("%w: weight %v kg", ErrInvalidInput, weightKg)
	}
	dailyCalories := Round(tdee + float64(CalorieAdjustment(goal)))
	proteinGrams := Round(weightKg * ProteinPerKg(goal))
	proteinKcal := proteinGrams * kcalPerGramProtein
	fatKcal := Round(float64(dailyCalories) * fatCalorieRatio)
	fatGrams := Round(float64(fatKcal) / kcalPerGramFat)
	carbKcal := dailyCalories - proteinKcal - fatKcal
	carbGrams := Round(float64(carbKcal) / kcalPerGramCarbs)
	if carbGrams < 0 {
		return Targets{}, fmt.Errorf("%w: %d kcal leaves %d g carbohydrates", ErrInfeasibleGoal, dailyCalories,
			carbGrams)
	}
	return Targets{
		DailyCalories: dailyCalories,
		ProteinGrams:  proteinGrams,
		CarbsGrams:    carbGrams,
		FatGrams:      fatGrams,
		FiberGrams:    Round(float64(dailyCalories) / 1000 * fiberPerThousand), //nolint:mnd // per 1000 kcal.
		WaterMl:       WaterTarget(weightKg),
	}, nil
}

// WaterTarget is the daily water target in ml.
func WaterTarget(weightKg float64) int {
	return Round(weightKg * waterMlPerKg)
}

// WorkoutIntensity grades the effort of a whole training session.
type WorkoutIntensity string

const (
	LowIntensity      WorkoutIntensity = "low"
	ModerateIntensity WorkoutIntensity = "moderate"
	HighIntensity     WorkoutIntensity = "high"
)

// EstimateWorkoutCalories estimates the kcal burnt by resistance training from MET values.
// Unknown intensities count as moderate.
func EstimateWorkoutCalories(weightKg, durationMinutes float64, intensity WorkoutIntensity) int {
	met := 5.0
	switch intensity {
	case LowIntensity:
		met = 3.5
	case HighIntensity:
		met = 6.0
	case ModerateIntensity:
	}
	kcalPerMinute := met * weightKg * 3.5 / 200 //nolint:mnd // MET formula.
	return Round(kcalPerMinute * durationMinutes)
}
