package main

import (
	"net/http"
	"time"

	"github.com/fitevolve/fitevolve/internal/nutrition"
)

// mealRequest logs either the listed foods or, when QuickMeal is set, a quick meal template.
type mealRequest struct {
	// Date is YYYY-MM-DD. Empty means now.
	Date      string               `json:"date,omitempty"`
	MealType  nutrition.MealType   `json:"mealType"`
	Foods     []nutrition.MealItem `json:"foods,omitempty"`
	QuickMeal string               `json:"quickMeal,omitempty"`
}

type mealUpdateRequest struct {
	Date     string               `json:"date,omitempty"`
	MealType *nutrition.MealType  `json:"mealType,omitempty"`
	Foods    []nutrition.MealItem `json:"foods,omitempty"`
}

type waterRequest struct {
	Amount int `json:"amount"`
}

type nutritionDayResponse struct {
	Summary nutrition.DailySummary `json:"summary"`
	Meals   []nutrition.MealEntry  `json:"meals"`
}

func (app *application) mealPOST(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.handleError(w, r, err)
		return
	}

	var (
		meal nutrition.MealEntry
		err  error
	)
	if req.QuickMeal != "" {
		meal, err = app.nutritionService.LogQuickMeal(r.Context(), app.userID, req.QuickMeal, req.MealType)
	} else {
		in := nutrition.MealInput{Date: time.Time{}, MealType: req.MealType, Items: req.Foods}
		if req.Date != "" {
			if in.Date, err = parseDate(req.Date); err != nil {
				app.handleError(w, r, err)
				return
			}
		}
		meal, err = app.nutritionService.LogMeal(r.Context(), app.userID, in)
	}
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, meal)
}

func (app *application) mealUpdatePOST(w http.ResponseWriter, r *http.Request) {
	var req mealUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.handleError(w, r, err)
		return
	}
	in := nutrition.MealUpdate{Date: nil, MealType: req.MealType, Items: req.Foods}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			app.handleError(w, r, err)
			return
		}
		in.Date = &date
	}
	meal, err := app.nutritionService.UpdateMeal(r.Context(), app.userID, r.PathValue("id"), in)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, meal)
}

func (app *application) mealDeletePOST(w http.ResponseWriter, r *http.Request) {
	if err := app.nutritionService.DeleteMeal(r.Context(), app.userID, r.PathValue("id")); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) waterPOST(w http.ResponseWriter, r *http.Request) {
	var req waterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.handleError(w, r, err)
		return
	}
	entry, err := app.nutritionService.LogWater(r.Context(), app.userID, req.Amount)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, entry)
}

func (app *application) waterDeletePOST(w http.ResponseWriter, r *http.Request) {
	if err := app.nutritionService.DeleteWater(r.Context(), app.userID, r.PathValue("id")); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nutritionDayGET returns the daily summary and the meals of the day, optionally filtered by ?mealType=.
func (app *application) nutritionDayGET(w http.ResponseWriter, r *http.Request) {
	day, err := app.parseDateParam(r)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	mealType := nutrition.MealType(r.URL.Query().Get("mealType"))
	if mealType != "" && !mealType.Valid() {
		app.handleError(w, r, errInvalidMealType(mealType))
		return
	}
	summary, err := app.nutritionService.DailySummary(r.Context(), app.userID, day)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	meals, err := app.nutritionService.Meals(r.Context(), app.userID, day, mealType)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if meals == nil {
		meals = []nutrition.MealEntry{}
	}
	app.writeJSON(w, r, http.StatusOK, nutritionDayResponse{Summary: summary, Meals: meals})
}

// nutritionWeekGET averages the seven days ending at the given date.
func (app *application) nutritionWeekGET(w http.ResponseWriter, r *http.Request) {
	reference, err := app.parseDateParam(r)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	stats, err := app.nutritionService.WeeklyStats(r.Context(), app.userID, reference)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, stats)
}
