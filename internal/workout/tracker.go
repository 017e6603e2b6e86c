package workout

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
)

var (
	// ErrNotFound is returned for an unknown plan, workout day or exercise id.
	ErrNotFound = errors.NewSentinel("not found")
	// ErrNoActiveSession is returned when a session operation runs while no session is active.
	ErrNoActiveSession = errors.NewSentinel("no active session")
	// ErrSessionActive is returned when a session is started while another one is active.
	ErrSessionActive = errors.NewSentinel("session already active")
	// ErrUnknownExercise is returned when the exercise is not part of the active session.
	ErrUnknownExercise = errors.NewSentinel("exercise not in session")
	// ErrIndexOutOfRange is returned when amending a set that does not exist.
	ErrIndexOutOfRange = errors.NewSentinel("set index out of range")
)

const (
	// progressionWindow is the number of most recent sessions considered for progression.
	progressionWindow = 5
	// weeklySessionTarget is the baseline of sessions per week for consistency.
	weeklySessionTarget = 3
	week                = 7 * 24 * time.Hour
	maxRPE              = 10
)

// Tracker is the workout record of one user: the plan, the active session and the history of completed sessions.
//
// Idle: CurrentSession is nil. Active: CurrentSession is set. EndSession moves the active session to the history.
type Tracker struct {
	CurrentPlan          *Plan     `json:"currentPlan"`
	CurrentSession       *Session  `json:"currentSession"`
	CurrentExerciseIndex int       `json:"currentExerciseIndex"`
	WorkoutHistory       []Session `json:"workoutHistory"`
}

// IsActive reports whether a session is in progress.
func (t *Tracker) IsActive() bool {
	return t.CurrentSession != nil
}

// SetPlan replaces the plan after checking that every planned exercise exists in exercises.
func (t *Tracker) SetPlan(plan Plan, exercises catalog.Catalog[catalog.Exercise]) error {
	seen := make(map[string]bool, len(plan.WeeklySchedule))
	for _, day := range plan.WeeklySchedule {
		if day.ID == "" || seen[day.ID] {
			return fmt.Errorf("%w: workout day ids must be unique and non-empty, got %q", metrics.ErrInvalidInput,
				day.ID)
		}
		seen[day.ID] = true
		for _, pe := range day.Exercises {
			if _, err := exercises.FindByID(pe.ExerciseID); err != nil {
				return fmt.Errorf("%w: day %q: %w", ErrNotFound, day.ID, err)
			}
			if pe.Sets < 0 || pe.TargetRepsMin < 0 || pe.TargetRepsMax < pe.TargetRepsMin {
				return fmt.Errorf("%w: day %q exercise %q: invalid sets or rep range", metrics.ErrInvalidInput,
					day.ID, pe.ExerciseID)
			}
		}
	}
	t.CurrentPlan = &plan
	return nil
}

// ScheduledDay returns the plan day scheduled on the weekday of now.
func (t *Tracker) ScheduledDay(now time.Time) (Day, error) {
	if t.CurrentPlan == nil {
		return Day{}, fmt.Errorf("%w: no workout plan", ErrNotFound)
	}
	for _, day := range t.CurrentPlan.WeeklySchedule {
		if day.DayOfWeek == now.Weekday() {
			return day, nil
		}
	}
	return Day{}, fmt.Errorf("%w: nothing scheduled on %s", ErrNotFound, now.Weekday())
}

// StartSession starts a session for the plan day with one empty slot per planned exercise.
func (t *Tracker) StartSession(sessionID, workoutDayID string, now time.Time) (Session, error) {
	if t.CurrentSession != nil {
		return Session{}, fmt.Errorf("%w: %q started at %s", ErrSessionActive, t.CurrentSession.ID,
			t.CurrentSession.StartTime.Format(time.RFC3339))
	}
	if t.CurrentPlan == nil {
		return Session{}, fmt.Errorf("%w: no workout plan", ErrNotFound)
	}
	i := slices.IndexFunc(t.CurrentPlan.WeeklySchedule, func(d Day) bool { return d.ID == workoutDayID })
	if i < 0 {
		return Session{}, fmt.Errorf("%w: workout day %q", ErrNotFound, workoutDayID)
	}
	day := t.CurrentPlan.WeeklySchedule[i]

	planned := slices.Clone(day.Exercises)
	slices.SortStableFunc(planned, func(a, b PlannedExercise) int { return a.Order - b.Order })
	completed := make([]CompletedExercise, 0, len(planned))
	for n, pe := range planned {
		completed = append(completed, CompletedExercise{
			ID:         fmt.Sprintf("%s-%d", sessionID, n+1),
			ExerciseID: pe.ExerciseID,
			Sets:       []CompletedSet{},
			Notes:      "",
		})
	}

	session := Session{
		ID:                 sessionID,
		UserID:             t.CurrentPlan.UserID,
		WorkoutDayID:       workoutDayID,
		Date:               now,
		StartTime:          now,
		EndTime:            nil,
		CompletedExercises: completed,
		TotalVolume:        0,
		Duration:           0,
		Notes:              "",
		RatingRPE:          nil,
		IsCompleted:        false,
	}
	t.CurrentSession = &session
	t.CurrentExerciseIndex = 0
	return session, nil
}

func (t *Tracker) exercise(exerciseID string) (*CompletedExercise, error) {
	if t.CurrentSession == nil {
		return nil, ErrNoActiveSession
	}
	for i := range t.CurrentSession.CompletedExercises {
		if t.CurrentSession.CompletedExercises[i].ExerciseID == exerciseID {
			return &t.CurrentSession.CompletedExercises[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, exerciseID)
}

func validateSet(s CompletedSet) error {
	if s.Weight < 0 || s.Reps < 0 {
		return fmt.Errorf("%w: weight and reps must not be negative", metrics.ErrInvalidInput)
	}
	if s.RPE != nil && (*s.RPE < 1 || *s.RPE > maxRPE) {
		return fmt.Errorf("%w: rpe must be between 1 and 10, got %d", metrics.ErrInvalidInput, *s.RPE)
	}
	return nil
}

// LogSet appends the set to the exercise of the active session. A zero SetNumber is numbered after the last set.
func (t *Tracker) LogSet(exerciseID string, set CompletedSet) (CompletedSet, error) {
	ex, err := t.exercise(exerciseID)
	if err != nil {
		return CompletedSet{}, err
	}
	if err = validateSet(set); err != nil {
		return CompletedSet{}, err
	}
	if set.SetNumber == 0 {
		set.SetNumber = len(ex.Sets) + 1
	}
	ex.Sets = append(ex.Sets, set)
	return set, nil
}

// AmendSet updates a logged set of the active session in place.
func (t *Tracker) AmendSet(exerciseID string, setIndex int, patch SetPatch) (CompletedSet, error) {
	ex, err := t.exercise(exerciseID)
	if err != nil {
		return CompletedSet{}, err
	}
	if setIndex < 0 || setIndex >= len(ex.Sets) {
		return CompletedSet{}, fmt.Errorf("%w: %d of %d sets", ErrIndexOutOfRange, setIndex, len(ex.Sets))
	}
	set := ex.Sets[setIndex]
	if patch.Weight != nil {
		set.Weight = *patch.Weight
	}
	if patch.Reps != nil {
		set.Reps = *patch.Reps
	}
	if patch.RPE != nil {
		set.RPE = patch.RPE
	}
	if patch.IsCompleted != nil {
		set.IsCompleted = *patch.IsCompleted
	}
	if patch.IsFailure != nil {
		set.IsFailure = *patch.IsFailure
	}
	if patch.Notes != nil {
		set.Notes = *patch.Notes
	}
	if err = validateSet(set); err != nil {
		return CompletedSet{}, err
	}
	ex.Sets[setIndex] = set
	return set, nil
}

// Navigate moves the exercise cursor by one, clamped to the exercises of the active session.
func (t *Tracker) Navigate(direction Direction) (int, error) {
	last := 0
	if t.CurrentSession != nil {
		last = max(len(t.CurrentSession.CompletedExercises)-1, 0)
	}
	switch direction {
	case Next:
		t.CurrentExerciseIndex = min(t.CurrentExerciseIndex+1, last)
	case Previous:
		t.CurrentExerciseIndex = max(t.CurrentExerciseIndex-1, 0)
	default:
		return t.CurrentExerciseIndex, fmt.Errorf("%w: direction %q", metrics.ErrInvalidInput, direction)
	}
	return t.CurrentExerciseIndex, nil
}

// CurrentExercise returns the exercise under the cursor of the active session.
func (t *Tracker) CurrentExercise() (CompletedExercise, bool) {
	if t.CurrentSession == nil || t.CurrentExerciseIndex >= len(t.CurrentSession.CompletedExercises) {
		return CompletedExercise{}, false
	}
	return t.CurrentSession.CompletedExercises[t.CurrentExerciseIndex], true
}

// EndSession completes the active session, freezes its volume and duration and appends it to the history.
func (t *Tracker) EndSession(now time.Time) (Session, error) {
	if t.CurrentSession == nil {
		return Session{}, ErrNoActiveSession
	}
	session := *t.CurrentSession

	var volume float64
	for _, ex := range session.CompletedExercises {
		for _, s := range ex.Sets {
			if s.counts() {
				volume += s.Weight * float64(s.Reps)
			}
		}
	}
	end := now
	session.EndTime = &end
	session.Duration = max(metrics.Round(now.Sub(session.StartTime).Minutes()), 0)
	session.TotalVolume = volume
	session.IsCompleted = true

	t.WorkoutHistory = append(t.WorkoutHistory, session)
	t.CurrentSession = nil
	t.CurrentExerciseIndex = 0
	return session, nil
}

// ProgressionSuggestion recommends the next weight for an exercise from the sets of the last five sessions.
func (t *Tracker) ProgressionSuggestion(exerciseID string, region metrics.Region) Progression {
	window := t.WorkoutHistory[max(len(t.WorkoutHistory)-progressionWindow, 0):]
	var recent []CompletedSet
	for _, session := range window {
		for _, ex := range session.CompletedExercises {
			if ex.ExerciseID == exerciseID {
				recent = append(recent, ex.Sets...)
			}
		}
	}
	if len(recent) == 0 {
		return Progression{ExerciseID: exerciseID, Suggestion: metrics.NoDataSuggestion()}
	}

	var last *CompletedSet
	for i := range recent {
		if recent[i].counts() {
			last = &recent[i]
		}
	}
	if last == nil {
		return Progression{
			ExerciseID: exerciseID,
			Suggestion: metrics.UnsuccessfulSuggestion(recent[len(recent)-1].Weight),
		}
	}
	return Progression{
		ExerciseID: exerciseID,
		Suggestion: metrics.SuggestProgression(last.Weight, last.Reps, last.RPE, region),
	}
}

// bestOneRepMax returns the best estimated one-repetition maximum of the counted sets of an exercise in session.
func bestOneRepMax(session Session, exerciseID string) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, ex := range session.CompletedExercises {
		if ex.ExerciseID != exerciseID {
			continue
		}
		for _, s := range ex.Sets {
			if !s.counts() || s.Reps == 0 {
				continue
			}
			best = max(best, metrics.OneRepMax(s.Weight, s.Reps))
			found = true
		}
	}
	return best, found
}

func (t *Tracker) strengthGains() map[string]float64 {
	first := make(map[string]float64)
	latest := make(map[string]float64)
	sessions := make(map[string]int)
	for _, session := range t.WorkoutHistory {
		counted := make(map[string]bool)
		for _, ex := range session.CompletedExercises {
			if counted[ex.ExerciseID] {
				continue
			}
			best, ok := bestOneRepMax(session, ex.ExerciseID)
			if !ok {
				continue
			}
			counted[ex.ExerciseID] = true
			if sessions[ex.ExerciseID] == 0 {
				first[ex.ExerciseID] = best
			}
			latest[ex.ExerciseID] = best
			sessions[ex.ExerciseID]++
		}
	}
	gains := make(map[string]float64)
	for id, n := range sessions {
		if n > 1 {
			gains[id] = latest[id] - first[id]
		}
	}
	return gains
}

// Stats summarises the history. Consistency compares the sessions with three sessions per week since the first
// session.
func (t *Tracker) Stats(now time.Time) Stats {
	history := t.WorkoutHistory
	if len(history) == 0 {
		return Stats{
			TotalSessions:          0,
			TotalVolume:            0,
			AverageSessionDuration: 0,
			StrengthGains:          map[string]float64{},
			ConsistencyPercentage:  0,
		}
	}
	var (
		volume   float64
		duration int
	)
	for _, s := range history {
		volume += s.TotalVolume
		duration += s.Duration
	}
	weeks := max(int(math.Ceil(float64(now.Sub(history[0].Date))/float64(week))), 1)
	return Stats{
		TotalSessions:          len(history),
		TotalVolume:            volume,
		AverageSessionDuration: float64(duration) / float64(len(history)),
		StrengthGains:          t.strengthGains(),
		ConsistencyPercentage:  min(metrics.Consistency(len(history), weeks*weeklySessionTarget), 100),
	}
}
