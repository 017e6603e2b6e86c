package metrics

// OneRepMax estimates the one-repetition maximum with the Epley formula.
func OneRepMax(weightKg float64, reps int) float64 {
	if reps == 1 {
		return weightKg
	}
	return round(weightKg * (1 + float64(reps)/30)) //nolint:mnd // Epley.
}

// TrainingMax is 90 % of the one-repetition maximum.
func TrainingMax(oneRepMax float64) float64 {
	return round(oneRepMax * 0.9) //nolint:mnd // 90 %.
}

// WorkingWeight is the given percentage of the training max.
func WorkingWeight(trainingMax, percent float64) float64 {
	return round(trainingMax * percent / 100) //nolint:mnd // percent.
}

// TrainingMode is the rep scheme the rest interval is chosen for.
type TrainingMode string

const (
	StrengthMode    TrainingMode = "strength"
	HypertrophyMode TrainingMode = "hypertrophy"
	EnduranceMode   TrainingMode = "endurance"
)

// RestSeconds recommends the rest between sets. Unknown modes get the hypertrophy rest.
func RestSeconds(reps int, mode TrainingMode) int {
	switch mode {
	case StrengthMode:
		if reps <= 5 { //nolint:mnd // heavy sets.
			return 180 //nolint:mnd // 3 minutes.
		}
		return 120 //nolint:mnd // 2 minutes.
	case EnduranceMode:
		return 60 //nolint:mnd // 1 minute.
	case HypertrophyMode:
	}
	return 90 //nolint:mnd // 1.5 minutes.
}
