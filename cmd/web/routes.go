package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		common = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				app.commonContext(app.timeout(next))))))
		}
		api = func(next http.HandlerFunc) http.Handler {
			return common(noCache(next))
		}
		page = func(next http.HandlerFunc) http.Handler {
			return common(next)
		}
	)

	mux.Handle("GET /api/healthy", api(app.healthy))

	mux.Handle("POST /api/onboarding", api(app.onboardingPOST))
	mux.Handle("GET /api/profile", api(app.profileGET))
	mux.Handle("POST /api/profile/body-metrics", api(app.bodyMetricsPOST))
	mux.Handle("POST /api/profile/reset", api(app.profileResetPOST))

	mux.Handle("GET /api/foods", api(app.foodsGET))
	mux.Handle("POST /api/foods", api(app.customFoodPOST))
	mux.Handle("GET /api/quick-meals", api(app.quickMealsGET))
	mux.Handle("GET /api/exercises", api(app.exercisesGET))

	mux.Handle("POST /api/meals", api(app.mealPOST))
	mux.Handle("POST /api/meals/{id}/update", api(app.mealUpdatePOST))
	mux.Handle("POST /api/meals/{id}/delete", api(app.mealDeletePOST))
	mux.Handle("POST /api/water", api(app.waterPOST))
	mux.Handle("POST /api/water/{id}/delete", api(app.waterDeletePOST))
	mux.Handle("GET /api/nutrition/days/{date}", api(app.nutritionDayGET))
	mux.Handle("GET /api/nutrition/weeks/{date}", api(app.nutritionWeekGET))

	mux.Handle("PUT /api/workout/plan", api(app.workoutPlanPUT))
	mux.Handle("GET /api/workout", api(app.workoutGET))
	mux.Handle("POST /api/workout/start", api(app.workoutStartPOST))
	mux.Handle("POST /api/workout/exercises/{exerciseID}/sets", api(app.setPOST))
	mux.Handle("POST /api/workout/exercises/{exerciseID}/sets/{setIndex}/update", api(app.setUpdatePOST))
	mux.Handle("POST /api/workout/navigate/{direction}", api(app.workoutNavigatePOST))
	mux.Handle("POST /api/workout/end", api(app.workoutEndPOST))
	mux.Handle("GET /api/workout/stats", api(app.workoutStatsGET))
	mux.Handle("GET /api/workout/progression/{exerciseID}", api(app.progressionGET))

	mux.Handle("GET /api/calculators/strength", api(app.strengthCalculatorGET))
	mux.Handle("GET /api/calculators/rest", api(app.restCalculatorGET))

	mux.Handle("GET /exercises/{id}", page(app.exerciseInfoGET))
	mux.Handle("GET /{$}", page(app.home))
	mux.Handle("/", page(app.notFound))

	return mux
}
