// Package workout tracks the workout plan, the active session and the training history.
package workout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/store"
	"github.com/google/uuid"
)

// Service handles the business logic for workout management.
type Service struct {
	kv        store.KeyValue
	logger    *slog.Logger
	exercises catalog.Catalog[catalog.Exercise]
	now       func() time.Time
	mu        sync.Mutex
}

// NewService creates a new workout service backed by the built-in exercise catalog.
func NewService(kv store.KeyValue, logger *slog.Logger) *Service {
	return &Service{
		kv:        kv,
		logger:    logger,
		exercises: catalog.Exercises(),
		now:       time.Now,
		mu:        sync.Mutex{},
	}
}

// WithClock replaces the clock used for session timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) mutate(ctx context.Context, userID string, fn func(t *Tracker) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.Mutate(ctx, s.kv, userID, store.Workout, fn)
}

// Get returns the stored tracker. A user without workout data gets an idle tracker.
func (s *Service) Get(ctx context.Context, userID string) (Tracker, error) {
	t, err := store.Get[Tracker](ctx, s.kv, userID, store.Workout)
	if err != nil {
		return Tracker{}, fmt.Errorf("get workout tracker: %w", err)
	}
	return t, nil
}

// SetPlan validates and stores the plan. Missing ids are generated.
func (s *Service) SetPlan(ctx context.Context, userID string, plan Plan) (Plan, error) {
	now := s.now()
	if plan.ID == "" {
		plan.ID = uuid.NewString()
		plan.CreatedAt = now
	}
	plan.UserID = userID
	plan.UpdatedAt = now
	for i := range plan.WeeklySchedule {
		day := &plan.WeeklySchedule[i]
		if day.ID == "" {
			day.ID = uuid.NewString()
		}
		for j := range day.Exercises {
			if day.Exercises[j].ID == "" {
				day.Exercises[j].ID = uuid.NewString()
			}
		}
	}
	if err := s.mutate(ctx, userID, func(t *Tracker) error {
		return t.SetPlan(plan, s.exercises)
	}); err != nil {
		return Plan{}, fmt.Errorf("set plan: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "stored workout plan",
		slog.String("user_id", userID),
		slog.String("plan_id", plan.ID),
		slog.Int("days", len(plan.WeeklySchedule)))
	return plan, nil
}

// StartSession starts a session for the plan day. An empty workoutDayID starts the day scheduled for today.
func (s *Service) StartSession(ctx context.Context, userID, workoutDayID string) (Session, error) {
	var session Session
	err := s.mutate(ctx, userID, func(t *Tracker) error {
		now := s.now()
		if workoutDayID == "" {
			day, err := t.ScheduledDay(now)
			if err != nil {
				return err
			}
			workoutDayID = day.ID
		}
		var err error
		session, err = t.StartSession(uuid.NewString(), workoutDayID, now)
		return err
	})
	if err != nil {
		return Session{}, fmt.Errorf("start session: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "started workout session",
		slog.String("user_id", userID),
		slog.String("session_id", session.ID),
		slog.String("workout_day_id", workoutDayID),
		slog.Int("exercises", len(session.CompletedExercises)))
	return session, nil
}

// LogSet appends a set to an exercise of the active session.
func (s *Service) LogSet(ctx context.Context, userID, exerciseID string, set CompletedSet) (CompletedSet, error) {
	if set.ID == "" {
		set.ID = uuid.NewString()
	}
	var logged CompletedSet
	if err := s.mutate(ctx, userID, func(t *Tracker) error {
		var err error
		logged, err = t.LogSet(exerciseID, set)
		return err
	}); err != nil {
		return CompletedSet{}, fmt.Errorf("log set: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "logged set",
		slog.String("user_id", userID),
		slog.String("exercise_id", exerciseID),
		slog.Int("set_number", logged.SetNumber),
		slog.Float64("weight", logged.Weight),
		slog.Int("reps", logged.Reps))
	return logged, nil
}

// AmendSet updates a logged set of the active session.
func (s *Service) AmendSet(ctx context.Context, userID, exerciseID string, setIndex int, patch SetPatch) (
	CompletedSet, error) {
	var amended CompletedSet
	if err := s.mutate(ctx, userID, func(t *Tracker) error {
		var err error
		amended, err = t.AmendSet(exerciseID, setIndex, patch)
		return err
	}); err != nil {
		return CompletedSet{}, fmt.Errorf("amend set: %w", err)
	}
	return amended, nil
}

// Navigate moves the exercise cursor and returns its new position.
func (s *Service) Navigate(ctx context.Context, userID string, direction Direction) (int, error) {
	var index int
	if err := s.mutate(ctx, userID, func(t *Tracker) error {
		var err error
		index, err = t.Navigate(direction)
		return err
	}); err != nil {
		return 0, fmt.Errorf("navigate: %w", err)
	}
	return index, nil
}

// EndSession completes the active session.
func (s *Service) EndSession(ctx context.Context, userID string) (Session, error) {
	var session Session
	if err := s.mutate(ctx, userID, func(t *Tracker) error {
		var err error
		session, err = t.EndSession(s.now())
		return err
	}); err != nil {
		return Session{}, fmt.Errorf("end session: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "completed workout session",
		slog.String("user_id", userID),
		slog.String("session_id", session.ID),
		slog.Int("duration_minutes", session.Duration),
		slog.Float64("total_volume", session.TotalVolume))
	return session, nil
}

// ProgressionSuggestion recommends the next weight for a catalog exercise.
func (s *Service) ProgressionSuggestion(ctx context.Context, userID, exerciseID string) (Progression, error) {
	exercise, err := s.exercises.FindByID(exerciseID)
	if err != nil {
		return Progression{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	t, err := s.Get(ctx, userID)
	if err != nil {
		return Progression{}, err
	}
	return t.ProgressionSuggestion(exerciseID, exercise.Region()), nil
}

// Stats summarises the workout history.
func (s *Service) Stats(ctx context.Context, userID string) (Stats, error) {
	t, err := s.Get(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	return t.Stats(s.now()), nil
}
