package main

import (
	"net/http"
	"slices"
	"strings"

	"github.com/fitevolve/fitevolve/internal/catalog"
)

// foodsGET searches the built-in and custom foods. Without a query the whole category is listed.
func (app *application) foodsGET(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	foods, err := app.nutritionService.SearchFoods(r.Context(), app.userID, q.Get("q"), q.Get("category"))
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	if foods == nil {
		foods = []catalog.Food{}
	}
	app.writeJSON(w, r, http.StatusOK, foods)
}

func (app *application) customFoodPOST(w http.ResponseWriter, r *http.Request) {
	var food catalog.Food
	if err := decodeJSON(w, r, &food); err != nil {
		app.handleError(w, r, err)
		return
	}
	created, err := app.nutritionService.AddCustomFood(r.Context(), app.userID, food)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, created)
}

func (app *application) quickMealsGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.nutritionService.QuickMeals())
}

// exercisesGET searches the exercise library. The equipment parameter is a comma separated list.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	var (
		q         = r.URL.Query()
		query     = q.Get("q")
		category  = q.Get("category")
		equipment []string
		exercises = catalog.Exercises()
		result    []catalog.Exercise
	)
	if eq := q.Get("equipment"); eq != "" {
		equipment = strings.Split(eq, ",")
	}

	switch {
	case query != "":
		result = exercises.Search(query)
	case category != "":
		result = exercises.ListByCategory(category)
	case len(equipment) > 0:
		result = catalog.ListByEquipment(exercises, equipment...)
	default:
		result = exercises.All()
	}

	if query != "" && category != "" {
		result = slices.DeleteFunc(result, func(e catalog.Exercise) bool { return string(e.Category) != category })
	}
	if len(equipment) > 0 && (query != "" || category != "") {
		result = slices.DeleteFunc(result, func(e catalog.Exercise) bool {
			return !slices.ContainsFunc(e.Equipment, func(have string) bool { return slices.Contains(equipment, have) })
		})
	}
	if result == nil {
		result = []catalog.Exercise{}
	}
	app.writeJSON(w, r, http.StatusOK, result)
}
