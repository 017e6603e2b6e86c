package workout_test

import (
	"testing"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/ptr"
	"github.com/fitevolve/fitevolve/internal/workout"
	"github.com/google/go-cmp/cmp"
)

const (
	bench = "barbell_bench_press"
	squat = "barbell_back_squat"
)

func testPlan() workout.Plan {
	return workout.Plan{
		ID:     "plan-1",
		UserID: "local",
		Name:   "Full Body",
		Goal:   metrics.Strength,
		WeeklySchedule: []workout.Day{
			{
				ID:        "day-a",
				DayOfWeek: time.Monday,
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

func activeTracker(t *testing.T, start time.Time) *workout.Tracker {
	t.Helper()
	var tr workout.Tracker
	if err := tr.SetPlan(testPlan(), catalog.Exercises()); err != nil {
		t.Fatalf("SetPlan() error = %v", err)
	}
	if _, err := tr.StartSession("s1", "day-a", start); err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	return &tr
}

func TestTracker_SessionLifecycle(t *testing.T) {
	start := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)
	tr := activeTracker(t, start)

	if !tr.IsActive() {
		t.Fatal("IsActive() = false after StartSession")
	}
	got := tr.CurrentSession.CompletedExercises
	if len(got) != 2 || got[0].ExerciseID != bench || got[1].ExerciseID != squat || len(got[0].Sets) != 0 {
		t.Fatalf("CompletedExercises = %+v, want empty bench then squat slots", got)
	}

	if _, err := tr.LogSet(bench, workout.CompletedSet{Weight: 50, Reps: 10, IsCompleted: true}); err != nil {
		t.Fatalf("LogSet(bench) error = %v", err)
	}
	if _, err := tr.LogSet(squat, workout.CompletedSet{Weight: 60, Reps: 3, IsCompleted: true,
		IsFailure: true}); err != nil {
		t.Fatalf("LogSet(squat) error = %v", err)
	}

	session, err := tr.EndSession(start.Add(47*time.Minute + 40*time.Second))
	if err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if session.TotalVolume != 500 {
		t.Errorf("TotalVolume = %v, want 500", session.TotalVolume)
	}
	if session.Duration != 48 {
		t.Errorf("Duration = %d, want 48", session.Duration)
	}
	if !session.IsCompleted || session.EndTime == nil {
		t.Errorf("session not marked completed: %+v", session)
	}
	if tr.IsActive() || tr.CurrentExerciseIndex != 0 || len(tr.WorkoutHistory) != 1 {
		t.Errorf("tracker after end = active %v, index %d, history %d; want idle, 0, 1", tr.IsActive(),
			tr.CurrentExerciseIndex, len(tr.WorkoutHistory))
	}
	if _, err = tr.EndSession(start); !errors.Is(err, workout.ErrNoActiveSession) {
		t.Errorf("EndSession() when idle error = %v, want ErrNoActiveSession", err)
	}
}

func TestTracker_StartSessionErrors(t *testing.T) {
	now := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	var idle workout.Tracker
	if _, err := idle.StartSession("s1", "day-a", now); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("StartSession() without plan error = %v, want ErrNotFound", err)
	}
	if err := idle.SetPlan(testPlan(), catalog.Exercises()); err != nil {
		t.Fatalf("SetPlan() error = %v", err)
	}
	if _, err := idle.StartSession("s1", "day-z", now); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("StartSession(unknown day) error = %v, want ErrNotFound", err)
	}

	tr := activeTracker(t, now)
	if _, err := tr.StartSession("s2", "day-a", now); !errors.Is(err, workout.ErrSessionActive) {
		t.Errorf("StartSession() while active error = %v, want ErrSessionActive", err)
	}
	if tr.CurrentSession.ID != "s1" {
		t.Errorf("active session = %q, want s1 kept", tr.CurrentSession.ID)
	}
}

func TestTracker_SetPlanValidation(t *testing.T) {
	plan := testPlan()
	plan.WeeklySchedule[0].Exercises[0].ExerciseID = "underwater_basket_weaving"

	var tr workout.Tracker
	if err := tr.SetPlan(plan, catalog.Exercises()); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("SetPlan(unknown exercise) error = %v, want ErrNotFound", err)
	}
	if tr.CurrentPlan != nil {
		t.Errorf("CurrentPlan = %+v, want nil after rejected plan", tr.CurrentPlan)
	}

	plan = testPlan()
	plan.WeeklySchedule = append(plan.WeeklySchedule, plan.WeeklySchedule[0])
	if err := tr.SetPlan(plan, catalog.Exercises()); !errors.Is(err, metrics.ErrInvalidInput) {
		t.Errorf("SetPlan(duplicate day) error = %v, want ErrInvalidInput", err)
	}
}

func TestTracker_LogAndAmendSet(t *testing.T) {
	now := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	var idle workout.Tracker
	if _, err := idle.LogSet(bench, workout.CompletedSet{Weight: 50, Reps: 10}); !errors.Is(err,
		workout.ErrNoActiveSession) {
		t.Errorf("LogSet() when idle error = %v, want ErrNoActiveSession", err)
	}

	tr := activeTracker(t, now)
	if _, err := tr.LogSet("plank", workout.CompletedSet{Reps: 1}); !errors.Is(err, workout.ErrUnknownExercise) {
		t.Errorf("LogSet(plank) error = %v, want ErrUnknownExercise", err)
	}
	if _, err := tr.LogSet(bench, workout.CompletedSet{Weight: -5, Reps: 10}); !errors.Is(err,
		metrics.ErrInvalidInput) {
		t.Errorf("LogSet(negative weight) error = %v, want ErrInvalidInput", err)
	}

	for range 6 {
		if _, err := tr.LogSet(bench, workout.CompletedSet{Weight: 50, Reps: 8, IsCompleted: true}); err != nil {
			t.Fatalf("LogSet() error = %v", err)
		}
	}
	sets := tr.CurrentSession.CompletedExercises[0].Sets
	if len(sets) != 6 || sets[5].SetNumber != 6 {
		t.Fatalf("bench sets = %d, last number %d; want 6 sets numbered up to 6", len(sets), sets[len(sets)-1].SetNumber)
	}

	amended, err := tr.AmendSet(bench, 1, workout.SetPatch{Weight: ptr.Ref(52.5), RPE: ptr.Ref(8)})
	if err != nil {
		t.Fatalf("AmendSet() error = %v", err)
	}
	want := workout.CompletedSet{SetNumber: 2, Weight: 52.5, Reps: 8, RPE: ptr.Ref(8), IsCompleted: true}
	if diff := cmp.Diff(want, amended); diff != "" {
		t.Errorf("AmendSet() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, tr.CurrentSession.CompletedExercises[0].Sets[1]); diff != "" {
		t.Errorf("stored set mismatch (-want +got):\n%s", diff)
	}

	for _, index := range []int{-1, 6} {
		if _, err = tr.AmendSet(bench, index, workout.SetPatch{}); !errors.Is(err, workout.ErrIndexOutOfRange) {
			t.Errorf("AmendSet(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}
	if _, err = tr.AmendSet(bench, 0, workout.SetPatch{RPE: ptr.Ref(11)}); !errors.Is(err,
		metrics.ErrInvalidInput) {
		t.Errorf("AmendSet(rpe 11) error = %v, want ErrInvalidInput", err)
	}
}

func TestTracker_Navigate(t *testing.T) {
	tr := activeTracker(t, time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC))

	steps := []struct {
		direction workout.Direction
		want      int
	}{
		{workout.Previous, 0},
		{workout.Next, 1},
		{workout.Next, 1},
		{workout.Previous, 0},
	}
	for _, step := range steps {
		got, err := tr.Navigate(step.direction)
		if err != nil {
			t.Fatalf("Navigate(%s) error = %v", step.direction, err)
		}
		if got != step.want {
			t.Errorf("Navigate(%s) = %d, want %d", step.direction, got, step.want)
		}
	}
	if _, err := tr.Navigate("sideways"); !errors.Is(err, metrics.ErrInvalidInput) {
		t.Errorf("Navigate(sideways) error = %v, want ErrInvalidInput", err)
	}
	if ex, ok := tr.CurrentExercise(); !ok || ex.ExerciseID != bench {
		t.Errorf("CurrentExercise() = %q, %v, want bench", ex.ExerciseID, ok)
	}
}

// completeSession runs one session with the given bench and squat sets.
func completeSession(t *testing.T, tr *workout.Tracker, id string, start time.Time, minutes int,
	benchSets, squatSets []workout.CompletedSet) {
	t.Helper()
	if _, err := tr.StartSession(id, "day-a", start); err != nil {
		t.Fatalf("StartSession(%s) error = %v", id, err)
	}
	for _, s := range benchSets {
		if _, err := tr.LogSet(bench, s); err != nil {
			t.Fatalf("LogSet(bench) error = %v", err)
		}
	}
	for _, s := range squatSets {
		if _, err := tr.LogSet(squat, s); err != nil {
			t.Fatalf("LogSet(squat) error = %v", err)
		}
	}
	if _, err := tr.EndSession(start.Add(time.Duration(minutes) * time.Minute)); err != nil {
		t.Fatalf("EndSession(%s) error = %v", id, err)
	}
}

func TestTracker_ProgressionSuggestion(t *testing.T) {
	start := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	var tr workout.Tracker
	if err := tr.SetPlan(testPlan(), catalog.Exercises()); err != nil {
		t.Fatalf("SetPlan() error = %v", err)
	}

	noData := tr.ProgressionSuggestion(squat, metrics.Lower)
	if diff := cmp.Diff(workout.Progression{ExerciseID: squat, Suggestion: metrics.NoDataSuggestion()},
		noData); diff != "" {
		t.Errorf("no history mismatch (-want +got):\n%s", diff)
	}

	completeSession(t, &tr, "s1", start, 60,
		[]workout.CompletedSet{{Weight: 40, Reps: 4, IsCompleted: false}, {Weight: 45, Reps: 2, IsFailure: true}},
		[]workout.CompletedSet{
			{Weight: 45, Reps: 10, RPE: ptr.Ref(7), IsCompleted: true},
			{Weight: 50, Reps: 12, RPE: ptr.Ref(6), IsCompleted: true},
			{Weight: 55, Reps: 3, IsCompleted: true, IsFailure: true},
		})

	unsuccessful := tr.ProgressionSuggestion(bench, metrics.Upper)
	if diff := cmp.Diff(metrics.UnsuccessfulSuggestion(45), unsuccessful.Suggestion); diff != "" {
		t.Errorf("unsuccessful sets mismatch (-want +got):\n%s", diff)
	}

	got := tr.ProgressionSuggestion(squat, metrics.Lower)
	want := workout.Progression{
		ExerciseID: squat,
		Suggestion: metrics.Suggestion{
			CurrentWeight:   50,
			SuggestedWeight: 53,
			PlateWeight:     55,
			Reason:          metrics.ReasonReady,
			Confidence:      metrics.ConfidenceHigh,
			Action:          metrics.ActionIncrease,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProgressionSuggestion() mismatch (-want +got):\n%s", diff)
	}

	// Five newer sessions without squats push the first session out of the window.
	for i := range 5 {
		completeSession(t, &tr, "later", start.AddDate(0, 0, i+1), 30,
			[]workout.CompletedSet{{Weight: 40, Reps: 8, IsCompleted: true}}, nil)
	}
	if got = tr.ProgressionSuggestion(squat, metrics.Lower); got.Reason != metrics.ReasonNoData {
		t.Errorf("Reason after window moved = %q, want %q", got.Reason, metrics.ReasonNoData)
	}
}

func TestTracker_Stats(t *testing.T) {
	start := time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

	var tr workout.Tracker
	empty := tr.Stats(start)
	if diff := cmp.Diff(workout.Stats{StrengthGains: map[string]float64{}}, empty); diff != "" {
		t.Errorf("Stats() on empty history mismatch (-want +got):\n%s", diff)
	}

	if err := tr.SetPlan(testPlan(), catalog.Exercises()); err != nil {
		t.Fatalf("SetPlan() error = %v", err)
	}
	completeSession(t, &tr, "s1", start, 40,
		[]workout.CompletedSet{{Weight: 50, Reps: 10, IsCompleted: true}},
		[]workout.CompletedSet{{Weight: 80, Reps: 5, IsCompleted: true}})
	completeSession(t, &tr, "s2", start.AddDate(0, 0, 3), 45,
		[]workout.CompletedSet{{Weight: 60, Reps: 10, IsCompleted: true}, {Weight: 70, Reps: 1, IsFailure: true}},
		nil)

	got := tr.Stats(start.AddDate(0, 0, 10))
	want := workout.Stats{
		TotalSessions:          2,
		TotalVolume:            500 + 400 + 600,
		AverageSessionDuration: 42.5,
		StrengthGains:          map[string]float64{bench: 80 - 67},
		ConsistencyPercentage:  33,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}

	for range 10 {
		completeSession(t, &tr, "extra", start.AddDate(0, 0, 4), 30, nil, nil)
	}
	if got = tr.Stats(start.AddDate(0, 0, 5)); got.ConsistencyPercentage != 100 {
		t.Errorf("ConsistencyPercentage = %d, want capped at 100", got.ConsistencyPercentage)
	}
}
