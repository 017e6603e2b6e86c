package main

import (
	"net/http"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/workout"
)

// exerciseInfoTemplateData contains data for the exercise info template.
type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise    catalog.Exercise
	Progression workout.Progression
	// RestSeconds is the recommended rest for the upper end of the rep range.
	RestSeconds int
}

// exerciseInfoGET renders the description of a catalog exercise with the next weight suggestion.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := catalog.Exercises().FindByID(r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	progression, err := app.workoutService.ProgressionSuggestion(r.Context(), app.userID, exercise.ID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	data := exerciseInfoTemplateData{
		BaseTemplateData: newBaseTemplateData(r, exercise.Name),
		Exercise:         exercise,
		Progression:      progression,
		RestSeconds:      metrics.RestSeconds(exercise.RepRangeMax, metrics.HypertrophyMode),
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}
