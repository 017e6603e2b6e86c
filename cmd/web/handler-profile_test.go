package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/fitevolve/fitevolve/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

func onboardingRequest() profile.OnboardingData {
	return profile.OnboardingData{
		Name:               "Ana",
		Age:                25,
		Gender:             metrics.Male,
		HeightCm:           175,
		WeightKg:           70,
		Goal:               metrics.GainMuscle,
		TargetWeightKg:     ptr.Ref(75.0),
		TimeframeWeeks:     12,
		ActivityLevel:      metrics.ModeratelyActive,
		FitnessLevel:       profile.Intermediate,
		WeeklyFrequency:    4,
		SessionMinutes:     60,
		AvailableEquipment: []string{"barbell", "dumbbell"},
		Restrictions:       profile.Restrictions{},
	}
}

func Test_application_profile(t *testing.T) {
	ctx := t.Context()
	server := startServer(t)
	client := server.Client()

	t.Run("Not onboarded", func(t *testing.T) {
		status, err := client.GetJSON(ctx, "/api/profile", nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
	})

	t.Run("Invalid answers", func(t *testing.T) {
		data := onboardingRequest()
		data.Age = 0
		var body errorResponse
		status, err := client.PostJSON(ctx, "/api/onboarding", data, &body)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusBadRequest || body.Error == "" {
			t.Errorf("onboarding = %d %+v, want 400 with an error message", status, body)
		}
	})

	t.Run("Infeasible goal", func(t *testing.T) {
		data := onboardingRequest()
		data.WeightKg, data.HeightCm, data.Age = 160, 150, 90
		data.Gender, data.ActivityLevel, data.Goal = metrics.Female, metrics.Sedentary, metrics.LoseWeight
		data.TargetWeightKg = ptr.Ref(120.0)
		var body errorResponse
		status, err := client.PostJSON(ctx, "/api/onboarding", data, &body)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusUnprocessableEntity || !strings.Contains(body.Error, "infeasible") {
			t.Errorf("onboarding = %d %+v, want 422 naming the infeasible goal", status, body)
		}
		if status, err = client.GetJSON(ctx, "/api/profile", nil); err != nil || status != http.StatusNotFound {
			t.Errorf("profile after rejected onboarding = %d, %v, want 404", status, err)
		}
	})

	var onboarded profile.Overview
	t.Run("Onboarding", func(t *testing.T) {
		status, err := client.PostJSON(ctx, "/api/onboarding", onboardingRequest(), &onboarded)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusCreated {
			t.Fatalf("status = %d, want %d", status, http.StatusCreated)
		}
		want := metrics.Targets{
			DailyCalories: 2894, ProteinGrams: 140, CarbsGrams: 403, FatGrams: 80, FiberGrams: 41, WaterMl: 2450,
		}
		if diff := cmp.Diff(want, onboarded.Goals.Targets); diff != "" {
			t.Errorf("Targets mismatch (-want +got):\n%s", diff)
		}
		if onboarded.Profile.TDEE != 2594.3125 || onboarded.WaterTargetMl != 2450 {
			t.Errorf("TDEE, water = %v, %d", onboarded.Profile.TDEE, onboarded.WaterTargetMl)
		}
		if onboarded.BMICategory != metrics.Normal {
			t.Errorf("BMICategory = %q, want %q", onboarded.BMICategory, metrics.Normal)
		}
	})

	t.Run("Body metrics roll the goals over", func(t *testing.T) {
		var updated profile.Overview
		status, err := client.PostJSON(ctx, "/api/profile/body-metrics",
			profile.BodyMetricsPatch{WeightKg: ptr.Ref(75.0)}, &updated) //nolint:exhaustruct // patch
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if updated.Goals.ID == onboarded.Goals.ID {
			t.Error("Expected new nutrition goals after the weight change")
		}
		if updated.Goals.DailyCalories != 2972 || updated.Goals.ProteinGrams != 150 {
			t.Errorf("goals = %+v, want 2972 kcal and 150 g protein", updated.Goals.Targets)
		}
	})

	t.Run("Unknown fields are rejected", func(t *testing.T) {
		status, err := client.PostJSON(ctx, "/api/profile/body-metrics", map[string]any{"shoeSize": 44}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		status, err := client.PostJSON(ctx, "/api/profile/reset", nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", status, http.StatusNoContent)
		}
		if status, err = client.GetJSON(ctx, "/api/profile", nil); err != nil || status != http.StatusNotFound {
			t.Errorf("profile after reset = %d, %v, want 404", status, err)
		}
	})
}
