package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/ptr"
	"github.com/fitevolve/fitevolve/internal/workout"
	"github.com/google/go-cmp/cmp"
)

const (
	bench = "barbell_bench_press"
	squat = "barbell_back_squat"
)

// todaysPlan schedules one workout day on the current weekday.
func todaysPlan() workout.Plan {
	return workout.Plan{ //nolint:exhaustruct // ids and timestamps are generated.
		Name: "Full Body",
		Goal: metrics.Strength,
		WeeklySchedule: []workout.Day{
			{
				ID:        "day-a",
				DayOfWeek: time.Now().Weekday(),
				Name:      "Day A",
				Exercises: []workout.PlannedExercise{
					{ID: "pe-2", ExerciseID: squat, Order: 2, Sets: 3, TargetRepsMin: 5, TargetRepsMax: 8},
					{ID: "pe-1", ExerciseID: bench, Order: 1, Sets: 3, TargetRepsMin: 8, TargetRepsMax: 12},
				},
				EstimatedMinutes: 45,
			},
		},
		DurationWeeks: 8,
		CurrentWeek:   1,
		IsActive:      true,
	}
}

func Test_application_workout(t *testing.T) {
	ctx := t.Context()
	server := startServer(t)
	client := server.Client()

	t.Run("No active session", func(t *testing.T) {
		status, err := client.PostJSON(ctx, "/api/workout/end", nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusConflict {
			t.Errorf("end status = %d, want %d", status, http.StatusConflict)
		}
	})

	t.Run("Plan", func(t *testing.T) {
		invalid := todaysPlan()
		invalid.WeeklySchedule[0].Exercises[0].ExerciseID = "moon_walk"
		status, err := client.DoJSON(ctx, http.MethodPut, "/api/workout/plan", invalid, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusNotFound && status != http.StatusBadRequest {
			t.Errorf("invalid plan status = %d, want a client error", status)
		}

		var stored workout.Plan
		if status, err = client.DoJSON(ctx, http.MethodPut, "/api/workout/plan", todaysPlan(), &stored); err != nil {
			t.Fatal(err)
		}
		if status != http.StatusOK || stored.ID == "" {
			t.Fatalf("plan = %d %+v, want stored plan with generated id", status, stored)
		}
	})

	t.Run("Start", func(t *testing.T) {
		var session workout.Session
		status, err := client.PostJSON(ctx, "/api/workout/start", nil, &session)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusCreated || session.WorkoutDayID != "day-a" {
			t.Fatalf("start = %d %+v, want today's day-a", status, session)
		}
		gotOrder := []string{session.CompletedExercises[0].ExerciseID, session.CompletedExercises[1].ExerciseID}
		if diff := cmp.Diff([]string{bench, squat}, gotOrder); diff != "" {
			t.Errorf("exercise order mismatch (-want +got):\n%s", diff)
		}

		status, err = client.PostJSON(ctx, "/api/workout/start", startRequest{WorkoutDayID: "day-a"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusConflict {
			t.Errorf("second start status = %d, want %d", status, http.StatusConflict)
		}
	})

	t.Run("Log and amend sets", func(t *testing.T) {
		var set workout.CompletedSet
		status, err := client.PostJSON(ctx, "/api/workout/exercises/"+bench+"/sets", workout.CompletedSet{
			Weight: 50, Reps: 10, RPE: ptr.Ref(8), IsCompleted: true,
		}, &set)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusCreated || set.SetNumber != 1 {
			t.Fatalf("log set = %d %+v, want set number 1", status, set)
		}

		var amended workout.CompletedSet
		status, err = client.PostJSON(ctx, "/api/workout/exercises/"+bench+"/sets/0/update",
			workout.SetPatch{Reps: ptr.Ref(12)}, &amended) //nolint:exhaustruct // patch
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusOK || amended.Reps != 12 || amended.Weight != 50 {
			t.Errorf("amend = %d %+v, want 50 kg x 12", status, amended)
		}

		tests := []struct {
			name string
			path string
			body any
			want int
		}{
			{
				name: "exercise not in session",
				path: "/api/workout/exercises/deadlift/sets",
				body: workout.CompletedSet{Weight: 100, Reps: 5, IsCompleted: true},
				want: http.StatusBadRequest,
			},
			{
				name: "negative reps",
				path: "/api/workout/exercises/" + bench + "/sets",
				body: workout.CompletedSet{Weight: 50, Reps: -1, IsCompleted: true},
				want: http.StatusBadRequest,
			},
			{
				name: "set index out of range",
				path: "/api/workout/exercises/" + bench + "/sets/5/update",
				body: workout.SetPatch{Reps: ptr.Ref(8)}, //nolint:exhaustruct // patch
				want: http.StatusBadRequest,
			},
			{
				name: "set index not a number",
				path: "/api/workout/exercises/" + bench + "/sets/first/update",
				body: workout.SetPatch{Reps: ptr.Ref(8)}, //nolint:exhaustruct // patch
				want: http.StatusBadRequest,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				status, err := client.PostJSON(ctx, tt.path, tt.body, nil)
				if err != nil {
					t.Fatal(err)
				}
				if status != tt.want {
					t.Errorf("status = %d, want %d", status, tt.want)
				}
			})
		}
	})

	t.Run("Navigate", func(t *testing.T) {
		steps := []struct {
			direction string
			want      int
			status    int
		}{
			{direction: "next", want: 1, status: http.StatusOK},
			{direction: "next", want: 1, status: http.StatusOK},
			{direction: "sideways", want: 0, status: http.StatusBadRequest},
			{direction: "previous", want: 0, status: http.StatusOK},
			{direction: "previous", want: 0, status: http.StatusOK},
		}
		for _, step := range steps {
			var resp navigateResponse
			status, err := client.PostJSON(ctx, "/api/workout/navigate/"+step.direction, nil, &resp)
			if err != nil {
				t.Fatal(err)
			}
			if status != step.status {
				t.Errorf("navigate %s status = %d, want %d", step.direction, status, step.status)
				continue
			}
			if status == http.StatusOK && resp.CurrentExerciseIndex != step.want {
				t.Errorf("navigate %s index = %d, want %d", step.direction, resp.CurrentExerciseIndex, step.want)
			}
		}

		var state workoutResponse
		if _, err := client.GetJSON(ctx, "/api/workout", &state); err != nil {
			t.Fatal(err)
		}
		if !state.IsActive || state.CurrentExercise == nil || state.CurrentExercise.ExerciseID != bench {
			t.Errorf("workout state = %+v, want active session on the bench press", state)
		}
	})

	t.Run("End", func(t *testing.T) {
		var session workout.Session
		status, err := client.PostJSON(ctx, "/api/workout/end", nil, &session)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusOK || !session.IsCompleted || session.TotalVolume != 600 {
			t.Errorf("end = %d %+v, want completed session with 600 kg volume", status, session)
		}

		var stats workout.Stats
		if _, err = client.GetJSON(ctx, "/api/workout/stats", &stats); err != nil {
			t.Fatal(err)
		}
		if stats.TotalSessions != 1 || stats.TotalVolume != 600 {
			t.Errorf("stats = %+v, want one session with 600 kg", stats)
		}

		var state workoutResponse
		if _, err = client.GetJSON(ctx, "/api/workout", &state); err != nil {
			t.Fatal(err)
		}
		if state.IsActive || state.Session != nil {
			t.Errorf("workout state after end = %+v, want idle", state)
		}
	})

	t.Run("Progression", func(t *testing.T) {
		var progression workout.Progression
		status, err := client.GetJSON(ctx, "/api/workout/progression/"+bench, &progression)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusOK || progression.ExerciseID != bench || progression.CurrentWeight != 50 {
			t.Errorf("progression = %d %+v, want a suggestion from 50 kg", status, progression)
		}

		if status, err = client.GetJSON(ctx, "/api/workout/progression/moon_walk", nil); err != nil {
			t.Fatal(err)
		}
		if status != http.StatusNotFound {
			t.Errorf("unknown exercise status = %d, want %d", status, http.StatusNotFound)
		}
	})
}

func Test_application_calculators(t *testing.T) {
	ctx := t.Context()
	server := startServer(t)
	client := server.Client()

	var strength strengthResponse
	status, err := client.GetJSON(ctx, "/api/calculators/strength?weight=100&reps=10", &strength)
	if err != nil {
		t.Fatal(err)
	}
	want := strengthResponse{OneRepMax: 133, OneRepMaxLbs: 293, TrainingMax: 120, Percent: 80, WorkingWeight: 96}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if diff := cmp.Diff(want, strength); diff != "" {
		t.Errorf("strength mismatch (-want +got):\n%s", diff)
	}

	var rest restResponse
	if _, err = client.GetJSON(ctx, "/api/calculators/rest?reps=5&mode=strength", &rest); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(restResponse{RestSeconds: 180, Formatted: "3:00"}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}

	tests := []string{
		"/api/calculators/strength?weight=heavy&reps=5",
		"/api/calculators/strength?weight=100&reps=0",
		"/api/calculators/rest?reps=many",
	}
	for _, path := range tests {
		status, err = client.GetJSON(ctx, path, nil)
		if err != nil {
			t.Fatal(err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", path, status, http.StatusBadRequest)
		}
	}
}
