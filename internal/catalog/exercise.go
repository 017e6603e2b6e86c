package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fitevolve/fitevolve/internal/metrics"
)

type ExerciseCategory string

const (
	Chest     ExerciseCategory = "chest"
	Back      ExerciseCategory = "back"
	Shoulders ExerciseCategory = "shoulders"
	Arms      ExerciseCategory = "arms"
	Legs      ExerciseCategory = "legs"
	Glutes    ExerciseCategory = "glutes"
	Core      ExerciseCategory = "core"
	Cardio    ExerciseCategory = "cardio"
	FullBody  ExerciseCategory = "full_body"
)

type ExerciseType string

const (
	Compound       ExerciseType = "compound"
	Isolation      ExerciseType = "isolation"
	CardioExercise ExerciseType = "cardio"
)

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Exercise is a movement from the exercise library.
type Exercise struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         ExerciseCategory `json:"category"`
	PrimaryMuscles   []string         `json:"primaryMuscles"`
	SecondaryMuscles []string         `json:"secondaryMuscles"`
	Equipment        []string         `json:"equipment"`
	Type             ExerciseType     `json:"type"`
	Difficulty       Difficulty       `json:"difficulty"`
	Instructions     []string         `json:"instructions"`
	Tips             []string         `json:"tips"`
	// RepRangeMin and RepRangeMax count seconds for holds and minutes for cardio.
	RepRangeMin int  `json:"repRangeMin"`
	RepRangeMax int  `json:"repRangeMax"`
	RestSeconds int  `json:"restTimeSeconds"`
	IsCustom    bool `json:"isCustom"`
}

func (e Exercise) key() string   { return e.ID }
func (e Exercise) group() string { return string(e.Category) }

func (e Exercise) matches(q string) bool {
	if containsFold(e.Name, q) || containsFold(string(e.Category), q) {
		return true
	}
	return slices.ContainsFunc(e.PrimaryMuscles, func(m string) bool { return containsFold(m, q) })
}

// Region tells whether the exercise loads the lower body, which progresses in larger weight steps.
func (e Exercise) Region() metrics.Region {
	if e.Category == Legs || e.Category == Glutes {
		return metrics.Lower
	}
	return metrics.Upper
}

// DescriptionMarkdown renders the instructions and tips as a markdown document.
func (e Exercise) DescriptionMarkdown() string {
	var b strings.Builder
	b.WriteString("## Instructions\n\n")
	for i, step := range e.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if len(e.Tips) > 0 {
		b.WriteString("\n## Tips\n\n")
		for _, tip := range e.Tips {
			b.WriteString("- " + tip + "\n")
		}
	}
	b.WriteString("\n## Muscles\n\n")
	b.WriteString("**Primary:** " + humanize(e.PrimaryMuscles) + "\n")
	if len(e.SecondaryMuscles) > 0 {
		b.WriteString("\n**Secondary:** " + humanize(e.SecondaryMuscles) + "\n")
	}
	return b.String()
}

// ListByEquipment returns the exercises that use any of the given equipment.
func ListByEquipment(c Catalog[Exercise], equipment ...string) []Exercise {
	var result []Exercise
	for _, e := range c.entries {
		if slices.ContainsFunc(e.Equipment, func(eq string) bool { return slices.Contains(equipment, eq) }) {
			result = append(result, e)
		}
	}
	return result
}

func humanize(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ReplaceAll(n, "_", " ")
	}
	return strings.Join(out, ", ")
}
