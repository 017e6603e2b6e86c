package nutrition_test

import (
	"testing"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

func mustFood(t *testing.T, id string) catalog.Food {
	t.Helper()
	food, err := catalog.Foods().FindByID(id)
	if err != nil {
		t.Fatalf("FindByID(%q) error = %v", id, err)
	}
	return food
}

func mustEntry(t *testing.T, id, foodID string, quantity float64) nutrition.FoodEntry {
	t.Helper()
	entry, err := nutrition.NewFoodEntry(id, mustFood(t, foodID), quantity)
	if err != nil {
		t.Fatalf("NewFoodEntry(%q, %v) error = %v", foodID, quantity, err)
	}
	return entry
}

func mustMeal(t *testing.T, id string, date time.Time, mealType nutrition.MealType,
	foods ...nutrition.FoodEntry) nutrition.MealEntry {
	t.Helper()
	meal, err := nutrition.NewMealEntry(id, "local", date, mealType, foods)
	if err != nil {
		t.Fatalf("NewMealEntry() error = %v", err)
	}
	return meal
}

func TestNewFoodEntry(t *testing.T) {
	tests := []struct {
		name     string
		food     catalog.Food
		quantity float64
		want     nutrition.FoodEntry
		wantErr  error
	}{
		{
			name:     "scales to quantity",
			food:     catalog.Food{ID: "chicken", Name: "Chicken", ServingSize: 100, Calories: 195, Protein: 29.8, Fat: 7.8},
			quantity: 150,
			want: nutrition.FoodEntry{
				ID: "e1", FoodID: "chicken", Quantity: 150, Calories: 293, Protein: 44.7, Carbs: 0, Fat: 11.7,
			},
		},
		{
			name:     "zero quantity",
			food:     catalog.Food{ID: "rice", Name: "Rice", ServingSize: 100, Calories: 128, Protein: 2.7},
			quantity: 0,
			want:     nutrition.FoodEntry{ID: "e1", FoodID: "rice"},
		},
		{
			name:     "zero serving size",
			food:     catalog.Food{ID: "bad", Name: "Bad", ServingSize: 0, Calories: 100},
			quantity: 100,
			wantErr:  metrics.ErrInvalidInput,
		},
		{
			name:     "negative serving size",
			food:     catalog.Food{ID: "bad", Name: "Bad", ServingSize: -10, Calories: 100},
			quantity: 100,
			wantErr:  metrics.ErrInvalidInput,
		},
		{
			name:     "negative quantity",
			food:     catalog.Food{ID: "rice", Name: "Rice", ServingSize: 100, Calories: 128},
			quantity: -1,
			wantErr:  metrics.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nutrition.NewFoodEntry("e1", tt.food, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewFoodEntry() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFoodEntry() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NewFoodEntry() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewMealEntry_Validation(t *testing.T) {
	date := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
	rice := mustEntry(t, "f1", "white_rice_cooked", 100)

	if _, err := nutrition.NewMealEntry("m1", "local", date, "brunch", []nutrition.FoodEntry{rice}); !errors.Is(err,
		metrics.ErrInvalidInput) {
		t.Errorf("unknown meal type error = %v, want ErrInvalidInput", err)
	}
	if _, err := nutrition.NewMealEntry("m1", "local", date, nutrition.Lunch, nil); !errors.Is(err,
		metrics.ErrInvalidInput) {
		t.Errorf("empty meal error = %v, want ErrInvalidInput", err)
	}
}

func TestDayKey(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "UTC midday", t: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), want: "2024-03-04"},
		{name: "late evening east of UTC", t: time.Date(2024, 3, 4, 23, 30, 0, 0, helsinki), want: "2024-03-04"},
		{name: "just after midnight east of UTC", t: time.Date(2024, 3, 5, 0, 30, 0, 0, helsinki), want: "2024-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nutrition.DayKey(tt.t); got != tt.want {
				t.Errorf("DayKey(%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

func TestLog_DayBucketsFollowMealZone(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	lateDinner := time.Date(2024, 3, 4, 23, 30, 0, 0, helsinki)
	meal := mustMeal(t, "m1", lateDinner, nutrition.Dinner, mustEntry(t, "f1", "white_rice_cooked", 100))

	var log nutrition.Log
	log.AddMeal(meal)

	if got := log.DailySummary(time.Date(2024, 3, 4, 8, 0, 0, 0, helsinki)).TotalCalories; got != meal.TotalCalories {
		t.Errorf("local day TotalCalories = %d, want %d", got, meal.TotalCalories)
	}
	if got := log.DailySummary(time.Date(2024, 3, 5, 8, 0, 0, 0, helsinki)).TotalCalories; got != 0 {
		t.Errorf("next local day TotalCalories = %d, want 0", got)
	}
}

func TestLog_DailySummaryRoundTrip(t *testing.T) {
	day := time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)
	meal := mustMeal(t, "m1", day, nutrition.Lunch,
		mustEntry(t, "f1", "grilled_chicken_breast", 150),
		mustEntry(t, "f2", "white_rice_cooked", 200),
	)
	if meal.TotalCalories != 549 {
		t.Fatalf("TotalCalories = %d, want 549", meal.TotalCalories)
	}

	var log nutrition.Log
	log.AddMeal(meal)

	summary := log.DailySummary(day.Add(-10 * time.Hour))
	if summary.TotalCalories != meal.TotalCalories {
		t.Errorf("TotalCalories = %d, want %d", summary.TotalCalories, meal.TotalCalories)
	}
	if summary.TotalProtein != metrics.Round(meal.TotalProtein) {
		t.Errorf("TotalProtein = %d, want %d", summary.TotalProtein, metrics.Round(meal.TotalProtein))
	}
	if summary.TotalCarbs != metrics.Round(meal.TotalCarbs) {
		t.Errorf("TotalCarbs = %d, want %d", summary.TotalCarbs, metrics.Round(meal.TotalCarbs))
	}
	if summary.TotalFat != metrics.Round(meal.TotalFat) {
		t.Errorf("TotalFat = %d, want %d", summary.TotalFat, metrics.Round(meal.TotalFat))
	}

	wantLunch := nutrition.MacroTotals{
		Calories: meal.TotalCalories, Protein: meal.TotalProtein, Carbs: meal.TotalCarbs, Fat: meal.TotalFat,
	}
	if diff := cmp.Diff(wantLunch, summary.MealBreakdown[nutrition.Lunch]); diff != "" {
		t.Errorf("lunch breakdown mismatch (-want +got):\n%s", diff)
	}
	if len(summary.MealBreakdown) != len(nutrition.MealTypes()) {
		t.Errorf("breakdown has %d slots, want %d", len(summary.MealBreakdown), len(nutrition.MealTypes()))
	}
	if got := summary.MealBreakdown[nutrition.Dinner]; got != (nutrition.MacroTotals{}) {
		t.Errorf("dinner breakdown = %+v, want zero", got)
	}

	if diff := cmp.Diff(summary, log.DailySummary(day)); diff != "" {
		t.Errorf("second DailySummary() differs (-first +second):\n%s", diff)
	}
}

func TestLog_DailySummaryEmptyDay(t *testing.T) {
	var log nutrition.Log
	got := log.DailySummary(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	if got.Date != "2024-03-04" {
		t.Errorf("Date = %q, want 2024-03-04", got.Date)
	}
	if got.TotalCalories != 0 || got.TotalProtein != 0 || got.TotalCarbs != 0 || got.TotalFat != 0 ||
		got.TotalWater != 0 {
		t.Errorf("DailySummary() = %+v, want all zero", got)
	}
	for _, mealType := range nutrition.MealTypes() {
		if slot, ok := got.MealBreakdown[mealType]; !ok || slot != (nutrition.MacroTotals{}) {
			t.Errorf("breakdown[%s] = %+v, %v, want zero slot", mealType, slot, ok)
		}
	}
}

func TestLog_UpdateAndDeleteMeal(t *testing.T) {
	monday := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	var log nutrition.Log
	log.AddMeal(mustMeal(t, "m1", monday, nutrition.Breakfast, mustEntry(t, "f1", "banana", 60)))
	log.AddMeal(mustMeal(t, "m2", monday, nutrition.Lunch, mustEntry(t, "f2", "white_rice_cooked", 100)))

	updated, err := log.UpdateMeal("m1", nutrition.MealPatch{
		Date:     nil,
		MealType: ptr.Ref(nutrition.MorningSnack),
		Foods:    []nutrition.FoodEntry{mustEntry(t, "f3", "banana", 120)},
	})
	if err != nil {
		t.Fatalf("UpdateMeal() error = %v", err)
	}
	if updated.TotalCalories != 112 || updated.MealType != nutrition.MorningSnack {
		t.Errorf("UpdateMeal() = %d kcal %s, want 112 kcal morning_snack", updated.TotalCalories, updated.MealType)
	}
	if got := log.Meals(monday); len(got) != 2 || got[0].ID != "m1" {
		t.Errorf("Meals(monday) = %v, want m1 updated in place before m2", got)
	}

	if _, err = log.UpdateMeal("m2", nutrition.MealPatch{Date: &tuesday, MealType: nil, Foods: nil}); err != nil {
		t.Fatalf("UpdateMeal() move error = %v", err)
	}
	if got := len(log.Meals(monday)); got != 1 {
		t.Errorf("len(Meals(monday)) = %d, want 1", got)
	}
	if got := log.MealsByType(tuesday, nutrition.Lunch); len(got) != 1 || got[0].TotalCalories != 128 {
		t.Errorf("MealsByType(tuesday, lunch) = %v, want the moved rice meal", got)
	}

	if err = log.DeleteMeal("m1"); err != nil {
		t.Fatalf("DeleteMeal() error = %v", err)
	}
	if got := log.Meals(monday); len(got) != 0 {
		t.Errorf("Meals(monday) after delete = %v, want none", got)
	}
	if err = log.DeleteMeal("m1"); !errors.Is(err, nutrition.ErrNotFound) {
		t.Errorf("DeleteMeal() twice error = %v, want ErrNotFound", err)
	}
	if _, err = log.UpdateMeal("missing", nutrition.MealPatch{}); !errors.Is(err, nutrition.ErrNotFound) {
		t.Errorf("UpdateMeal(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLog_Water(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	var log nutrition.Log

	if got := log.Water(now); got != 0 {
		t.Fatalf("Water() = %d, want 0", got)
	}
	if _, err := log.AddWater("w1", "local", 250, now); err != nil {
		t.Fatalf("AddWater(250) error = %v", err)
	}
	if _, err := log.AddWater("w2", "local", 500, now.Add(time.Hour)); err != nil {
		t.Fatalf("AddWater(500) error = %v", err)
	}
	if got := log.Water(now); got != 750 {
		t.Errorf("Water() = %d, want 750", got)
	}
	if _, err := log.AddWater("w3", "local", 0, now); !errors.Is(err, metrics.ErrInvalidInput) {
		t.Errorf("AddWater(0) error = %v, want ErrInvalidInput", err)
	}

	if err := log.DeleteWater("w1"); err != nil {
		t.Fatalf("DeleteWater() error = %v", err)
	}
	if got := log.Water(now); got != 500 {
		t.Errorf("Water() after delete = %d, want 500", got)
	}
	if err := log.DeleteWater("w1"); !errors.Is(err, nutrition.ErrNotFound) {
		t.Errorf("DeleteWater() twice error = %v, want ErrNotFound", err)
	}
}

func TestLog_WeeklyStats(t *testing.T) {
	reference := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)

	t.Run("no days logged", func(t *testing.T) {
		var log nutrition.Log
		got := log.WeeklyStats(reference)
		want := nutrition.WeeklyStats{StartDate: "2024-03-04", EndDate: "2024-03-10"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("WeeklyStats() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("averages over logged days", func(t *testing.T) {
		var log nutrition.Log
		// 128 kcal on two days inside the window and one day just outside it.
		for i, day := range []time.Time{reference, reference.AddDate(0, 0, -6), reference.AddDate(0, 0, -7)} {
			log.AddMeal(mustMeal(t, "m"+string(rune('a'+i)), day, nutrition.Lunch,
				mustEntry(t, "f", "white_rice_cooked", 100)))
		}
		if _, err := log.AddWater("w1", "local", 1000, reference.AddDate(0, 0, -3)); err != nil {
			t.Fatalf("AddWater() error = %v", err)
		}

		got := log.WeeklyStats(reference)
		want := nutrition.WeeklyStats{
			StartDate:           "2024-03-04",
			EndDate:             "2024-03-10",
			AverageCalories:     128,
			AverageProtein:      3,
			AverageCarbs:        26,
			AverageFat:          0,
			AverageWater:        500,
			AdherencePercentage: 29,
			DaysLogged:          2,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("WeeklyStats() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLog_AddCustomFood(t *testing.T) {
	var log nutrition.Log
	food := catalog.Food{ID: "granola", Name: "Homemade Granola", ServingSize: 50, Calories: 230, Protein: 6,
		Carbs: 30, Fat: 9}

	if err := log.AddCustomFood(food); err != nil {
		t.Fatalf("AddCustomFood() error = %v", err)
	}
	if err := log.AddCustomFood(food); !errors.Is(err, metrics.ErrInvalidInput) {
		t.Errorf("AddCustomFood() duplicate error = %v, want ErrInvalidInput", err)
	}
	if err := log.AddCustomFood(catalog.Food{ID: "x", Name: "X"}); !errors.Is(err, metrics.ErrInvalidInput) {
		t.Errorf("AddCustomFood() without serving size error = %v, want ErrInvalidInput", err)
	}

	got, err := log.Foods().FindByID("granola")
	if err != nil {
		t.Fatalf("Foods().FindByID() error = %v", err)
	}
	if !got.IsCustom {
		t.Errorf("custom food IsCustom = false, want true")
	}
	if first := log.Foods().All()[0]; first.ID != "granola" {
		t.Errorf("first food = %q, want custom food first", first.ID)
	}
}
