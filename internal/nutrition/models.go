package nutrition

import (
	"fmt"
	"time"

	"github.com/fitevolve/fitevolve/internal/catalog"
	"github.com/fitevolve/fitevolve/internal/metrics"
)

// MealType is the slot of the day a meal is logged under.
type MealType string

const (
	Breakfast      MealType = "breakfast"
	MorningSnack   MealType = "morning_snack"
	Lunch          MealType = "lunch"
	AfternoonSnack MealType = "afternoon_snack"
	Dinner         MealType = "dinner"
	EveningSnack   MealType = "evening_snack"
)

// MealTypes lists the meal slots in the order of the day.
func MealTypes() []MealType {
	return []MealType{Breakfast, MorningSnack, Lunch, AfternoonSnack, Dinner, EveningSnack}
}

func (t MealType) Valid() bool {
	for _, known := range MealTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// FoodEntry is a food eaten in some quantity. The nutrients are a snapshot of the catalog values scaled to the
// quantity.
type FoodEntry struct {
	ID       string  `json:"id"`
	FoodID   string  `json:"foodId"`
	Quantity float64 `json:"quantity"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NewFoodEntry scales the per-serving nutrients of food linearly to quantity grams.
func NewFoodEntry(id string, food catalog.Food, quantity float64) (FoodEntry, error) {
	if food.ServingSize <= 0 {
		return FoodEntry{}, fmt.Errorf("%w: food %q has serving size %v", metrics.ErrInvalidInput, food.ID,
			food.ServingSize)
	}
	if quantity < 0 {
		return FoodEntry{}, fmt.Errorf("%w: negative quantity %v", metrics.ErrInvalidInput, quantity)
	}
	ratio := quantity / food.ServingSize
	return FoodEntry{
		ID:       id,
		FoodID:   food.ID,
		Quantity: quantity,
		Calories: metrics.Round(food.Calories * ratio),
		Protein:  metrics.RoundOneDecimal(food.Protein * ratio),
		Carbs:    metrics.RoundOneDecimal(food.Carbs * ratio),
		Fat:      metrics.RoundOneDecimal(food.Fat * ratio),
	}, nil
}

// MacroTotals sums the energy and macronutrients of a group of foods.
type MacroTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m MacroTotals) add(o MacroTotals) MacroTotals {
	return MacroTotals{
		Calories: m.Calories + o.Calories,
		Protein:  metrics.RoundOneDecimal(m.Protein + o.Protein),
		Carbs:    metrics.RoundOneDecimal(m.Carbs + o.Carbs),
		Fat:      metrics.RoundOneDecimal(m.Fat + o.Fat),
	}
}

// MealEntry groups foods eaten together. The totals are computed on construction and stored with the entry.
type MealEntry struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	Date          time.Time   `json:"date"`
	MealType      MealType    `json:"mealType"`
	Foods         []FoodEntry `json:"foods"`
	TotalCalories int         `json:"totalCalories"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCarbs    float64     `json:"totalCarbs"`
	TotalFat      float64     `json:"totalFat"`
}

// NewMealEntry validates the meal and sums the totals of its foods.
func NewMealEntry(id, userID string, date time.Time, mealType MealType, foods []FoodEntry) (MealEntry, error) {
	if !mealType.Valid() {
		return MealEntry{}, fmt.Errorf("%w: unknown meal type %q", metrics.ErrInvalidInput, mealType)
	}
	if len(foods) == 0 {
		return MealEntry{}, fmt.Errorf("%w: meal without foods", metrics.ErrInvalidInput)
	}
	var totals MacroTotals
	for _, f := range foods {
		totals = totals.add(MacroTotals{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat})
	}
	return MealEntry{
		ID:            id,
		UserID:        userID,
		Date:          date,
		MealType:      mealType,
		Foods:         foods,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
	}, nil
}

func (m MealEntry) totals() MacroTotals {
	return MacroTotals{Calories: m.TotalCalories, Protein: m.TotalProtein, Carbs: m.TotalCarbs, Fat: m.TotalFat}
}

// WaterEntry is a drink of Amount ml.
type WaterEntry struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
	Amount int       `json:"amount"`
	Time   time.Time `json:"time"`
}

// MealPatch changes a logged meal. Nil fields are left untouched and a non-nil Foods replaces all foods.
type MealPatch struct {
	Date     *time.Time
	MealType *MealType
	Foods    []FoodEntry
}

// DailySummary totals one day. The totals are rounded to whole units; the breakdown is not.
type DailySummary struct {
	Date          string                   `json:"date"`
	TotalCalories int                      `json:"totalCalories"`
	TotalProtein  int                      `json:"totalProtein"`
	TotalCarbs    int                      `json:"totalCarbs"`
	TotalFat      int                      `json:"totalFat"`
	TotalWater    int                      `json:"totalWater"`
	MealBreakdown map[MealType]MacroTotals `json:"mealBreakdown"`
}

// WeeklyStats averages the logged days of the seven days ending at EndDate.
type WeeklyStats struct {
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	AverageCalories     int    `json:"averageCalories"`
	AverageProtein      int    `json:"averageProtein"`
	AverageCarbs        int    `json:"averageCarbs"`
	AverageFat          int    `json:"averageFat"`
	AverageWater        int    `json:"averageWater"`
	AdherencePercentage int    `json:"adherencePercentage"`
	DaysLogged          int    `json:"daysLogged"`
}

// DayKey is the bucket key of t: its calendar date in t's own location. Callers pass times in the zone whose
// calendar days the log is bucketed by. The services and the date parsers of the web layer use time.Local, and
// stored dates keep the zone they were logged in, so a meal at 23:30 stays on its local day.
func DayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
