package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/workout"
)

type workoutResponse struct {
	Plan                 *workout.Plan              `json:"plan"`
	Session              *workout.Session           `json:"session"`
	IsActive             bool                       `json:"isActive"`
	CurrentExerciseIndex int                        `json:"currentExerciseIndex"`
	CurrentExercise      *workout.CompletedExercise `json:"currentExercise,omitempty"`
}

type startRequest struct {
	// WorkoutDayID is the plan day to start. Empty starts the day scheduled for today.
	WorkoutDayID string `json:"workoutDayId"`
}

type navigateResponse struct {
	CurrentExerciseIndex int `json:"currentExerciseIndex"`
}

func toWorkoutResponse(t workout.Tracker) workoutResponse {
	resp := workoutResponse{
		Plan:                 t.CurrentPlan,
		Session:              t.CurrentSession,
		IsActive:             t.IsActive(),
		CurrentExerciseIndex: t.CurrentExerciseIndex,
		CurrentExercise:      nil,
	}
	if ce, ok := t.CurrentExercise(); ok {
		resp.CurrentExercise = &ce
	}
	return resp
}

func (app *application) workoutPlanPUT(w http.ResponseWriter, r *http.Request) {
	var plan workout.Plan
	if err := decodeJSON(w, r, &plan); err != nil {
		app.handleError(w, r, err)
		return
	}
	stored, err := app.workoutService.SetPlan(r.Context(), app.userID, plan)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, stored)
}

// workoutGET returns the plan, the active session and the exercise under the cursor.
func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	t, err := app.workoutService.Get(r.Context(), app.userID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, toWorkoutResponse(t))
}

// workoutStartPOST starts a session. The body is optional.
func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		app.handleError(w, r, err)
		return
	}
	session, err := app.workoutService.StartSession(r.Context(), app.userID, req.WorkoutDayID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, session)
}

func (app *application) setPOST(w http.ResponseWriter, r *http.Request) {
	var set workout.CompletedSet
	if err := decodeJSON(w, r, &set); err != nil {
		app.handleError(w, r, err)
		return
	}
	logged, err := app.workoutService.LogSet(r.Context(), app.userID, r.PathValue("exerciseID"), set)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, logged)
}

func (app *application) setUpdatePOST(w http.ResponseWriter, r *http.Request) {
	setIndex, err := strconv.Atoi(r.PathValue("setIndex"))
	if err != nil {
		app.handleError(w, r, fmt.Errorf("%w: set index %q", metrics.ErrInvalidInput, r.PathValue("setIndex")))
		return
	}
	var patch workout.SetPatch
	if err = decodeJSON(w, r, &patch); err != nil {
		app.handleError(w, r, err)
		return
	}
	amended, err := app.workoutService.AmendSet(r.Context(), app.userID, r.PathValue("exerciseID"), setIndex, patch)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, amended)
}

func (app *application) workoutNavigatePOST(w http.ResponseWriter, r *http.Request) {
	direction := workout.Direction(r.PathValue("direction"))
	index, err := app.workoutService.Navigate(r.Context(), app.userID, direction)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, navigateResponse{CurrentExerciseIndex: index})
}

func (app *application) workoutEndPOST(w http.ResponseWriter, r *http.Request) {
	session, err := app.workoutService.EndSession(r.Context(), app.userID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, session)
}

func (app *application) workoutStatsGET(w http.ResponseWriter, r *http.Request) {
	stats, err := app.workoutService.Stats(r.Context(), app.userID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, stats)
}

func (app *application) progressionGET(w http.ResponseWriter, r *http.Request) {
	progression, err := app.workoutService.ProgressionSuggestion(r.Context(), app.userID, r.PathValue("exerciseID"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, progression)
}
