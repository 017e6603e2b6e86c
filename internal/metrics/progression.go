package metrics

// Region tells whether an exercise loads the lower or the upper body. Lower body lifts progress in larger steps.
type Region string

const (
	Upper Region = "upper"
	Lower Region = "lower"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Action summarises the direction of a suggestion.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionMaintain Action = "maintain"
	ActionDecrease Action = "decrease"
	ActionNone     Action = "none"
)

const (
	ReasonReady     = "Low RPE and high reps achieved - ready for progression"
	ReasonGood      = "Good performance - small weight increase recommended"
	ReasonTooHard   = "High RPE or low reps - reduce weight to maintain form"
	ReasonMaintain  = "Maintain current weight"
	ReasonNoData    = "No previous data available"
	ReasonNoSuccess = "Previous sets were not completed successfully"
)

// Suggestion is a progressive overload recommendation for the next session.
type Suggestion struct {
	CurrentWeight float64 `json:"currentWeight"`
	// SuggestedWeight applies percentage steps to the current weight, rounded to whole kg.
	SuggestedWeight float64 `json:"suggestedWeight"`
	// PlateWeight applies fixed plate increments to the current weight.
	PlateWeight float64    `json:"plateWeight"`
	Reason      string     `json:"reason"`
	Confidence  Confidence `json:"confidence"`
	Action      Action     `json:"action"`
}

type progressionStep int

const (
	stepMaintain progressionStep = iota
	stepLarge
	stepSmall
	stepReduce
)

// classify picks the progression step for the last performance. rpe is optional and the RPE based steps only
// apply when it was recorded.
func classify(reps int, rpe *int) progressionStep {
	switch {
	case rpe != nil && *rpe <= 7 && reps >= 12:
		return stepLarge
	case rpe != nil && *rpe <= 8 && reps >= 10:
		return stepSmall
	case (rpe != nil && *rpe >= 9) || reps < 6:
		return stepReduce
	default:
		return stepMaintain
	}
}

// ProgressionWeight returns the next weight using fixed plate increments: 5 kg or 2.5 kg for the lower body and
// 2.5 kg or 1.25 kg for the upper body, or a 5 % reduction. The result never drops below zero.
func ProgressionWeight(currentWeight float64, reps int, rpe *int, region Region) float64 {
	var increment float64
	switch classify(reps, rpe) {
	case stepLarge:
		increment = 2.5
		if region == Lower {
			increment = 5
		}
	case stepSmall:
		increment = 1.25
		if region == Lower {
			increment = 2.5
		}
	case stepReduce:
		increment = -currentWeight * 0.05 //nolint:mnd // 5 %.
	case stepMaintain:
	}
	return max(0, currentWeight+increment)
}

// SuggestProgression recommends the weight for the next session from the last successful set.
func SuggestProgression(currentWeight float64, reps int, rpe *int, region Region) Suggestion {
	s := Suggestion{
		CurrentWeight:   currentWeight,
		SuggestedWeight: currentWeight,
		PlateWeight:     ProgressionWeight(currentWeight, reps, rpe, region),
		Reason:          ReasonMaintain,
		Confidence:      ConfidenceMedium,
		Action:          ActionMaintain,
	}
	switch classify(reps, rpe) {
	case stepLarge:
		s.SuggestedWeight = round(currentWeight * 1.05) //nolint:mnd // +5 %.
		s.Reason, s.Confidence, s.Action = ReasonReady, ConfidenceHigh, ActionIncrease
	case stepSmall:
		s.SuggestedWeight = round(currentWeight * 1.025) //nolint:mnd // +2.5 %.
		s.Reason, s.Confidence, s.Action = ReasonGood, ConfidenceMedium, ActionIncrease
	case stepReduce:
		s.SuggestedWeight = round(currentWeight * 0.95) //nolint:mnd // -5 %.
		s.Reason, s.Confidence, s.Action = ReasonTooHard, ConfidenceHigh, ActionDecrease
	case stepMaintain:
	}
	s.SuggestedWeight = max(0, s.SuggestedWeight)
	return s
}

// NoDataSuggestion is returned when an exercise has no logged history.
func NoDataSuggestion() Suggestion {
	return Suggestion{
		CurrentWeight:   0,
		SuggestedWeight: 0,
		PlateWeight:     0,
		Reason:          ReasonNoData,
		Confidence:      ConfidenceLow,
		Action:          ActionNone,
	}
}

// UnsuccessfulSuggestion keeps the weight of the most recent set when no set was completed without failure.
func UnsuccessfulSuggestion(weight float64) Suggestion {
	return Suggestion{
		CurrentWeight:   weight,
		SuggestedWeight: weight,
		PlateWeight:     weight,
		Reason:          ReasonNoSuccess,
		Confidence:      ConfidenceLow,
		Action:          ActionNone,
	}
}
