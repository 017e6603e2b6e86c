package main

import (
	"net/http"

	"github.com/fitevolve/fitevolve/internal/profile"
)

func (app *application) respondOverview(w http.ResponseWriter, r *http.Request, status int) {
	overview, err := app.profileService.Overview(r.Context(), app.userID)
	if err != nil {
		app.handleError(w, r, err)
		return
	}
	app.writeJSON(w, r, status, overview)
}

// onboardingPOST completes the onboarding questionnaire and responds with the new profile overview.
func (app *application) onboardingPOST(w http.ResponseWriter, r *http.Request) {
	var data profile.OnboardingData
	if err := decodeJSON(w, r, &data); err != nil {
		app.handleError(w, r, err)
		return
	}
	if _, err := app.profileService.CompleteOnboarding(r.Context(), app.userID, data); err != nil {
		app.handleError(w, r, err)
		return
	}
	app.respondOverview(w, r, http.StatusCreated)
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	app.respondOverview(w, r, http.StatusOK)
}

// bodyMetricsPOST patches the body metrics. The nutrition goals roll over when the targets change.
func (app *application) bodyMetricsPOST(w http.ResponseWriter, r *http.Request) {
	var patch profile.BodyMetricsPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		app.handleError(w, r, err)
		return
	}
	if _, err := app.profileService.UpdateBodyMetrics(r.Context(), app.userID, patch); err != nil {
		app.handleError(w, r, err)
		return
	}
	app.respondOverview(w, r, http.StatusOK)
}

func (app *application) profileResetPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.profileService.Reset(r.Context(), app.userID); err != nil {
		app.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
