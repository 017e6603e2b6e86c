package metrics

import (
	"fmt"
	"math"
)

type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

// BMI returns the body mass index rounded to one decimal.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight %v kg, height %v cm", ErrInvalidInput, weightKg, heightCm)
	}
	heightM := heightCm / 100 //nolint:mnd // cm to m.
	return RoundOneDecimal(weightKg / math.Pow(heightM, 2)), nil //nolint:mnd // squared.
}

func BMICategoryOf(bmi float64) BMICategory {
	switch {
	case bmi < 18.5: //nolint:mnd // WHO band.
		return Underweight
	case bmi < 25: //nolint:mnd // WHO band.
		return Normal
	case bmi < 30: //nolint:mnd // WHO band.
		return Overweight
	default:
		return Obese
	}
}

// PercentageOfGoal returns current as a rounded percentage of target, or 0 for a zero target.
func PercentageOfGoal(current, target float64) int {
	if target == 0 {
		return 0
	}
	return Round(current / target * 100) //nolint:mnd // percent.
}

// Consistency returns completed sessions as a rounded percentage of planned sessions.
func Consistency(completed, planned int) int {
	if planned == 0 {
		return 0
	}
	return Round(float64(completed) / float64(planned) * 100) //nolint:mnd // percent.
}

const lbsPerKg = 2.20462

// KgToLbs converts kilograms to whole pounds.
func KgToLbs(kg float64) int {
	return Round(kg * lbsPerKg)
}

// FormatDuration renders minutes as "45min", "1h" or "1h 30min".
func FormatDuration(minutes int) string {
	if minutes < 60 { //nolint:mnd // minutes per hour.
		return fmt.Sprintf("%dmin", minutes)
	}
	hours, mins := minutes/60, minutes%60 //nolint:mnd // minutes per hour.
	if mins > 0 {
		return fmt.Sprintf("%dh %dmin", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatVolume renders a water volume as "750ml" or "1.5L".
func FormatVolume(ml int) string {
	if ml >= 1000 { //nolint:mnd // ml per litre.
		return fmt.Sprintf("%.1fL", float64(ml)/1000) //nolint:mnd // ml per litre.
	}
	return fmt.Sprintf("%dml", ml)
}
