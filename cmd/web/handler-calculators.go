package main

import (
	"net/http"

	"github.com/fitevolve/fitevolve/internal/metrics"
)

const defaultWorkingPercent = 80

type strengthResponse struct {
	OneRepMax     float64 `json:"oneRepMax"`
	OneRepMaxLbs  int     `json:"oneRepMaxLbs"`
	TrainingMax   float64 `json:"trainingMax"`
	Percent       int     `json:"percent"`
	WorkingWeight float64 `json:"workingWeight"`
}

type restResponse struct {
	RestSeconds int    `json:"restSeconds"`
	Formatted   string `json:"formatted"`
}

// strengthCalculatorGET estimates the one-repetition maximum from ?weight= and ?reps= and derives the working
// weight at ?percent= of the training max.
func (app *application) strengthCalculatorGET(w http.ResponseWriter, r *http.Request) {
	weight, err := queryFloat(r, "weight")
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	reps, err := queryInt(r, "reps", 1)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	percent, err := queryInt(r, "percent", defaultWorkingPercent)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if weight < 0 || reps < 1 || percent < 0 {
		app.handleError(w, r, errInvalidCalculatorInput())
		return
	}

	oneRepMax := metrics.OneRepMax(weight, reps)
	trainingMax := metrics.TrainingMax(oneRepMax)
	app.writeJSON(w, r, http.StatusOK, strengthResponse{
		OneRepMax:     oneRepMax,
		OneRepMaxLbs:  metrics.KgToLbs(oneRepMax),
		TrainingMax:   trainingMax,
		Percent:       percent,
		WorkingWeight: metrics.WorkingWeight(trainingMax, float64(percent)),
	})
}

// restCalculatorGET recommends the rest between sets for ?reps= in the ?mode= rep scheme.
func (app *application) restCalculatorGET(w http.ResponseWriter, r *http.Request) {
	reps, err := queryInt(r, "reps", 0)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	rest := metrics.RestSeconds(reps, metrics.TrainingMode(r.URL.Query().Get("mode")))
	app.writeJSON(w, r, http.StatusOK, restResponse{
		RestSeconds: rest,
		Formatted:   formatRest(rest),
	})
}
