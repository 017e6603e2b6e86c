// Package nutrition aggregates logged meals and water into daily and weekly summaries.
package nutrition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/store"
	"github.com/google/uuid"
)

// MealItem references a food by id with the eaten quantity in grams.
type MealItem struct {
	FoodID   string  `json:"foodId"`
	Quantity float64 `json:"quantity"`
}

// MealInput describes a meal to log. A zero Date means now.
type MealInput struct {
	Date     time.Time  `json:"date"`
	MealType MealType   `json:"mealType"`
	Items    []MealItem `json:"foods"`
}

// MealUpdate describes the changes to a logged meal. A nil Items keeps the foods.
type MealUpdate struct {
	Date     *time.Time `json:"date,omitempty"`
	MealType *MealType  `json:"mealType,omitempty"`
	Items    []MealItem `json:"foods,omitempty"`
}

// Service handles the business logic for the nutrition log.
type Service struct {
	kv     store.KeyValue
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewService creates a new nutrition service.
func NewService(kv store.KeyValue, logger *slog.Logger) *Service {
	return &Service{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		mu:     sync.Mutex{},
	}
}

// WithClock replaces the clock used for timestamps and for "today".
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) load(ctx context.Context, userID string) (Log, error) {
	log, err := store.Get[Log](ctx, s.kv, userID, store.Nutrition)
	if err != nil {
		return Log{}, fmt.Errorf("load nutrition log: %w", err)
	}
	return log, nil
}

// resolve scales each item against the custom foods first and the built-in catalog second.
func resolve(foods catalog.Catalog[catalog.Food], items []MealItem) ([]FoodEntry, error) {
	entries := make([]FoodEntry, 0, len(items))
	for _, item := range items {
		food, err := foods.FindByID(item.FoodID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		entry, err := NewFoodEntry(uuid.NewString(), food, item.Quantity)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LogMeal resolves the foods of the meal and appends it to the log.
func (s *Service) LogMeal(ctx context.Context, userID string, in MealInput) (MealEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	var meal MealEntry
	err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		foods, err := resolve(l.Foods(), in.Items)
		if err != nil {
			return err
		}
		if meal, err = NewMealEntry(uuid.NewString(), userID, date, in.MealType, foods); err != nil {
			return err
		}
		l.AddMeal(meal)
		return nil
	})
	if err != nil {
		return MealEntry{}, fmt.Errorf("log meal: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "logged meal",
		slog.String("user_id", userID),
		slog.String("meal_id", meal.ID),
		slog.String("meal_type", string(meal.MealType)),
		slog.Int("calories", meal.TotalCalories))
	return meal, nil
}

// LogQuickMeal logs the quick meal template with the given name.
func (s *Service) LogQuickMeal(ctx context.Context, userID, name string, mealType MealType) (MealEntry, error) {
	for _, qm := range catalog.QuickMeals() {
		if !strings.EqualFold(qm.Name, name) {
			continue
		}
		items := make([]MealItem, 0, len(qm.Foods))
		for _, f := range qm.Foods {
			items = append(items, MealItem{FoodID: f.FoodID, Quantity: f.Quantity})
		}
		return s.LogMeal(ctx, userID, MealInput{Date: time.Time{}, MealType: mealType, Items: items})
	}
	return MealEntry{}, fmt.Errorf("%w: quick meal %q", ErrNotFound, name)
}

// UpdateMeal changes a logged meal.
func (s *Service) UpdateMeal(ctx context.Context, userID, mealID string, in MealUpdate) (MealEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meal MealEntry
	err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		patch := MealPatch{Date: in.Date, MealType: in.MealType, Foods: nil}
		if in.Items != nil {
			foods, err := resolve(l.Foods(), in.Items)
			if err != nil {
				return err
			}
			patch.Foods = foods
		}
		var err error
		meal, err = l.UpdateMeal(mealID, patch)
		return err
	})
	if err != nil {
		return MealEntry{}, fmt.Errorf("update meal: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "updated meal",
		slog.String("user_id", userID),
		slog.String("meal_id", meal.ID),
		slog.Int("calories", meal.TotalCalories))
	return meal, nil
}

// DeleteMeal removes a logged meal.
func (s *Service) DeleteMeal(ctx context.Context, userID, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		return l.DeleteMeal(mealID)
	}); err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "deleted meal",
		slog.String("user_id", userID), slog.String("meal_id", mealID))
	return nil
}

// LogWater records amountMl of water drunk now.
func (s *Service) LogWater(ctx context.Context, userID string, amountMl int) (WaterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry WaterEntry
	err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		var err error
		entry, err = l.AddWater(uuid.NewString(), userID, amountMl, s.now())
		return err
	})
	if err != nil {
		return WaterEntry{}, fmt.Errorf("log water: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "logged water",
		slog.String("user_id", userID), slog.Int("amount_ml", amountMl))
	return entry, nil
}

// DeleteWater removes a water entry.
func (s *Service) DeleteWater(ctx context.Context, userID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		return l.DeleteWater(entryID)
	}); err != nil {
		return fmt.Errorf("delete water: %w", err)
	}
	return nil
}

// AddCustomFood stores a user-defined food. An empty id is generated.
func (s *Service) AddCustomFood(ctx context.Context, userID string, food catalog.Food) (catalog.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if food.ID == "" {
		food.ID = "custom_" + uuid.NewString()
	}
	food.IsCustom = true
	if err := store.Mutate(ctx, s.kv, userID, store.Nutrition, func(l *Log) error {
		return l.AddCustomFood(food)
	}); err != nil {
		return catalog.Food{}, fmt.Errorf("add custom food: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "added custom food",
		slog.String("user_id", userID), slog.String("food_id", food.ID))
	return food, nil
}

// TodayWater returns the ml of water logged today.
func (s *Service) TodayWater(ctx context.Context, userID string) (int, error) {
	log, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return log.Water(s.now()), nil
}

// Meals returns the meals of day, optionally restricted to one slot.
func (s *Service) Meals(ctx context.Context, userID string, day time.Time, mealType MealType) ([]MealEntry,
	error) {
	log, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if mealType == "" {
		return log.Meals(day), nil
	}
	return log.MealsByType(day, mealType), nil
}

// DailySummary totals the meals and water of day.
func (s *Service) DailySummary(ctx context.Context, userID string, day time.Time) (DailySummary, error) {
	log, err := s.load(ctx, userID)
	if err != nil {
		return DailySummary{}, err
	}
	return log.DailySummary(day), nil
}

// WeeklyStats averages the seven days ending at reference.
func (s *Service) WeeklyStats(ctx context.Context, userID string, reference time.Time) (WeeklyStats, error) {
	log, err := s.load(ctx, userID)
	if err != nil {
		return WeeklyStats{}, err
	}
	return log.WeeklyStats(reference), nil
}

// SearchFoods searches the user's foods by name or brand, or lists a category when query is empty.
func (s *Service) SearchFoods(ctx context.Context, userID, query, category string) ([]catalog.Food, error) {
	log, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	foods := log.Foods()
	if strings.TrimSpace(query) == "" {
		if category == "" {
			return foods.All(), nil
		}
		return foods.ListByCategory(category), nil
	}
	result := foods.Search(query)
	if category != "" {
		filtered := result[:0]
		for _, f := range result {
			if f.Category == category {
				filtered = append(filtered, f)
			}
		}
		result = filtered
	}
	return result, nil
}

// QuickMeals returns the quick meal templates.
func (s *Service) QuickMeals() []catalog.QuickMeal {
	return catalog.QuickMeals()
}
