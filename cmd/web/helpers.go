package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/contexthelpers"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/fitevolve/fitevolve/internal/workout"
)

const maxRequestBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	// TraceID lets a server error be matched with its log lines.
	TraceID string `json:"traceId,omitempty"`
}

// wantsJSON reports whether the request targets the JSON API.
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	if wantsJSON(r) {
		app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{
			Error:   "internal server error",
			TraceID: contexthelpers.TraceID(r.Context()),
		})
		return
	}
	app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData(r, "Something went wrong"))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		app.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found", TraceID: ""})
		return
	}
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r, "Not found"))
}

// errorStatus maps the domain errors to HTTP status codes. Zero means the error is unexpected.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, metrics.ErrInvalidInput),
		errors.Is(err, workout.ErrIndexOutOfRange),
		errors.Is(err, workout.ErrUnknownExercise):
		return http.StatusBadRequest
	case errors.Is(err, metrics.ErrInfeasibleGoal):
		return http.StatusUnprocessableEntity
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, nutrition.ErrNotFound),
		errors.Is(err, workout.ErrNotFound),
		errors.Is(err, profile.ErrNotOnboarded):
		return http.StatusNotFound
	case errors.Is(err, workout.ErrNoActiveSession),
		errors.Is(err, workout.ErrSessionActive):
		return http.StatusConflict
	}
	return 0
}

// handleError responds with the status matching err. Unexpected errors are logged as server errors.
func (app *application) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == 0 {
		app.serverError(w, r, err)
		return
	}
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "client error",
		slog.Int("status_code", status), errors.SlogError(err))
	app.writeJSON(w, r, status, errorResponse{Error: err.Error(), TraceID: ""})
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// decodeJSON decodes the request body into v. Malformed bodies are reported as invalid input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode request body: %w", metrics.ErrInvalidInput, err)
	}
	return nil
}

// parseDate parses a YYYY-MM-DD value in the local time zone.
func parseDate(s string) (time.Time, error) {
	date, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", metrics.ErrInvalidInput, s)
	}
	return date, nil
}

// parseDateParam parses the "date" path parameter. The value "today" resolves to the current day.
func (app *application) parseDateParam(r *http.Request) (time.Time, error) {
	s := r.PathValue("date")
	if s == "today" {
		return app.now(), nil
	}
	return parseDate(s)
}

// queryInt parses an integer query parameter, falling back to def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", metrics.ErrInvalidInput, name, s)
	}
	return v, nil
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", metrics.ErrInvalidInput, name, s)
	}
	return v, nil
}

func errInvalidMealType(mealType nutrition.MealType) error {
	return fmt.Errorf("%w: unknown meal type %q", metrics.ErrInvalidInput, mealType)
}

func errInvalidCalculatorInput() error {
	return fmt.Errorf("%w: weight and percent must not be negative and reps must be positive",
		metrics.ErrInvalidInput)
}

// formatRest formats seconds as m:ss.
func formatRest(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60) //nolint:mnd // seconds per minute.
}
