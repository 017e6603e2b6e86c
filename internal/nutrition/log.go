package nutrition

import (
	"fmt"
	"slices"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
)

// ErrNotFound is returned when a meal, water entry or food id is unknown.
var ErrNotFound = errors.NewSentinel("not found")

const weekDays = 7

// Log is the nutrition record of one user: meals and water bucketed by day plus the user's custom foods.
type Log struct {
	DailyEntries map[string][]MealEntry  `json:"dailyEntries"`
	WaterEntries map[string][]WaterEntry `json:"waterEntries"`
	CustomFoods  []catalog.Food          `json:"customFoods"`
}

func (l *Log) init() {
	if l.DailyEntries == nil {
		l.DailyEntries = make(map[string][]MealEntry)
	}
	if l.WaterEntries == nil {
		l.WaterEntries = make(map[string][]WaterEntry)
	}
}

// AddMeal appends the meal to the bucket of its date.
func (l *Log) AddMeal(meal MealEntry) {
	l.init()
	key := DayKey(meal.Date)
	l.DailyEntries[key] = append(l.DailyEntries[key], meal)
}

func (l *Log) findMeal(id string) (string, int, bool) {
	for key, meals := range l.DailyEntries {
		if i := slices.IndexFunc(meals, func(m MealEntry) bool { return m.ID == id }); i >= 0 {
			return key, i, true
		}
	}
	return "", 0, false
}

// UpdateMeal applies the patch to the meal with the given id. Totals are recomputed when the foods change and the
// meal moves to another bucket when its date changes.
func (l *Log) UpdateMeal(id string, patch MealPatch) (MealEntry, error) {
	key, i, ok := l.findMeal(id)
	if !ok {
		return MealEntry{}, fmt.Errorf("%w: meal %q", ErrNotFound, id)
	}
	meal := l.DailyEntries[key][i]

	date, mealType, foods := meal.Date, meal.MealType, meal.Foods
	if patch.Date != nil {
		date = *patch.Date
	}
	if patch.MealType != nil {
		mealType = *patch.MealType
	}
	if patch.Foods != nil {
		foods = patch.Foods
	}
	updated, err := NewMealEntry(meal.ID, meal.UserID, date, mealType, foods)
	if err != nil {
		return MealEntry{}, err
	}
	if patch.Foods == nil {
		// Unchanged foods keep their stored totals.
		updated.TotalCalories, updated.TotalProtein = meal.TotalCalories, meal.TotalProtein
		updated.TotalCarbs, updated.TotalFat = meal.TotalCarbs, meal.TotalFat
	}

	if newKey := DayKey(updated.Date); newKey != key {
		l.removeMeal(key, i)
		l.AddMeal(updated)
	} else {
		l.DailyEntries[key][i] = updated
	}
	return updated, nil
}

func (l *Log) removeMeal(key string, i int) {
	l.DailyEntries[key] = slices.Delete(l.DailyEntries[key], i, i+1)
	if len(l.DailyEntries[key]) == 0 {
		delete(l.DailyEntries, key)
	}
}

// DeleteMeal removes the meal with the given id.
func (l *Log) DeleteMeal(id string) error {
	key, i, ok := l.findMeal(id)
	if !ok {
		return fmt.Errorf("%w: meal %q", ErrNotFound, id)
	}
	l.removeMeal(key, i)
	return nil
}

// AddWater logs amountMl of water at now in the bucket of now.
func (l *Log) AddWater(id, userID string, amountMl int, now time.Time) (WaterEntry, error) {
	if amountMl <= 0 {
		return WaterEntry{}, fmt.Errorf("%w: water amount must be positive, got %d", metrics.ErrInvalidInput,
			amountMl)
	}
	l.init()
	entry := WaterEntry{ID: id, UserID: userID, Date: now, Amount: amountMl, Time: now}
	key := DayKey(now)
	l.WaterEntries[key] = append(l.WaterEntries[key], entry)
	return entry, nil
}

// DeleteWater removes the water entry with the given id.
func (l *Log) DeleteWater(id string) error {
	for key, entries := range l.WaterEntries {
		i := slices.IndexFunc(entries, func(w WaterEntry) bool { return w.ID == id })
		if i < 0 {
			continue
		}
		l.WaterEntries[key] = slices.Delete(entries, i, i+1)
		if len(l.WaterEntries[key]) == 0 {
			delete(l.WaterEntries, key)
		}
		return nil
	}
	return fmt.Errorf("%w: water entry %q", ErrNotFound, id)
}

// AddCustomFood stores a user-defined food. Ids must be unique among the custom foods.
func (l *Log) AddCustomFood(food catalog.Food) error {
	if err := food.Validate(); err != nil {
		return err
	}
	if slices.ContainsFunc(l.CustomFoods, func(f catalog.Food) bool { return f.ID == food.ID }) {
		return fmt.Errorf("%w: custom food %q already exists", metrics.ErrInvalidInput, food.ID)
	}
	food.IsCustom = true
	l.CustomFoods = append(l.CustomFoods, food)
	return nil
}

// Foods returns the built-in food catalog overlaid with the custom foods.
func (l *Log) Foods() catalog.Catalog[catalog.Food] {
	return catalog.Foods().WithCustom(l.CustomFoods...)
}

// Water returns the ml of water logged on day.
func (l *Log) Water(day time.Time) int {
	total := 0
	for _, w := range l.WaterEntries[DayKey(day)] {
		total += w.Amount
	}
	return total
}

// Meals returns the meals logged on day in logging order.
func (l *Log) Meals(day time.Time) []MealEntry {
	return slices.Clone(l.DailyEntries[DayKey(day)])
}

// MealsByType returns the meals of one slot on day.
func (l *Log) MealsByType(day time.Time, mealType MealType) []MealEntry {
	var result []MealEntry
	for _, m := range l.DailyEntries[DayKey(day)] {
		if m.MealType == mealType {
			result = append(result, m)
		}
	}
	return result
}

func (l *Log) dayTotals(key string) MacroTotals {
	var totals MacroTotals
	for _, m := range l.DailyEntries[key] {
		totals = totals.add(m.totals())
	}
	return totals
}

// DailySummary totals the meals and water of day. A day without entries yields a zero summary.
func (l *Log) DailySummary(day time.Time) DailySummary {
	key := DayKey(day)
	breakdown := make(map[MealType]MacroTotals, len(MealTypes()))
	for _, t := range MealTypes() {
		breakdown[t] = MacroTotals{}
	}
	for _, m := range l.DailyEntries[key] {
		breakdown[m.MealType] = breakdown[m.MealType].add(m.totals())
	}
	totals := l.dayTotals(key)
	return DailySummary{
		Date:          key,
		TotalCalories: totals.Calories,
		TotalProtein:  metrics.Round(totals.Protein),
		TotalCarbs:    metrics.Round(totals.Carbs),
		TotalFat:      metrics.Round(totals.Fat),
		TotalWater:    l.Water(day),
		MealBreakdown: breakdown,
	}
}

// WeeklyStats averages the seven days ending at reference over the days with logged calories.
func (l *Log) WeeklyStats(reference time.Time) WeeklyStats {
	var (
		sum        MacroTotals
		water      int
		daysLogged int
	)
	for i := weekDays - 1; i >= 0; i-- {
		day := reference.AddDate(0, 0, -i)
		totals := l.dayTotals(DayKey(day))
		if totals.Calories > 0 {
			daysLogged++
		}
		sum = sum.add(totals)
		water += l.Water(day)
	}
	divisor := float64(max(daysLogged, 1))
	return WeeklyStats{
		StartDate:           DayKey(reference.AddDate(0, 0, -(weekDays - 1))),
		EndDate:             DayKey(reference),
		AverageCalories:     metrics.Round(float64(sum.Calories) / divisor),
		AverageProtein:      metrics.Round(sum.Protein / divisor),
		AverageCarbs:        metrics.Round(sum.Carbs / divisor),
		AverageFat:          metrics.Round(sum.Fat / divisor),
		AverageWater:        metrics.Round(float64(water) / divisor),
		AdherencePercentage: metrics.Round(float64(daysLogged) / weekDays * 100),
		DaysLogged:          daysLogged,
	}
}
