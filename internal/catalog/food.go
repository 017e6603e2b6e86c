package catalog

import (
	"fmt"
	"strings"

	"github.com/fitevolve/fitevolve/internal/metrics"
)

// Food category identifiers.
const (
	Grains      = "grains"
	Proteins    = "proteins"
	Dairy       = "dairy"
	Vegetables  = "vegetables"
	Fruits      = "fruits"
	Legumes     = "legumes"
	Oils        = "oils"
	Snacks      = "snacks"
	Beverages   = "beverages"
	Supplements = "supplements"
)

// Food holds the nutrients of one serving. ServingSize is in grams.
type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Category    string  `json:"category,omitempty"`
	ServingSize float64 `json:"servingSize"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber,omitempty"`
	Sugar       float64 `json:"sugar,omitempty"`
	Sodium      float64 `json:"sodium,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	IsCustom    bool    `json:"isCustom"`
}

func (f Food) key() string   { return f.ID }
func (f Food) group() string { return f.Category }

func (f Food) matches(q string) bool {
	return containsFold(f.Name, q) || (f.Brand != "" && containsFold(f.Brand, q))
}

// Validate checks that the food can be scaled to a quantity.
func (f Food) Validate() error {
	var problems []string
	if strings.TrimSpace(f.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, "name is required")
	}
	if f.ServingSize <= 0 {
		problems = append(problems, "serving size must be positive")
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		problems = append(problems, "nutrients must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: food %q: %s", metrics.ErrInvalidInput, f.ID, strings.Join(problems, ", "))
	}
	return nil
}

// QuickMealItem is one food of a quick meal template.
type QuickMealItem struct {
	FoodID   string  `json:"foodId"`
	Quantity float64 `json:"quantity"`
}

// QuickMeal is a template for logging a common meal in one go.
type QuickMeal struct {
	Name  string          `json:"name"`
	Foods []QuickMealItem `json:"foods"`
}

// QuickMeals returns the built-in quick meal templates.
func QuickMeals() []QuickMeal {
	return []QuickMeal{
		{
			Name: "Classic Breakfast",
			Foods: []QuickMealItem{
				{FoodID: "french_roll", Quantity: 50},
				{FoodID: "light_cream_cheese", Quantity: 15},
				{FoodID: "drip_coffee", Quantity: 150},
				{FoodID: "banana", Quantity: 60},
			},
		},
		{
			Name: "Rice and Beans Lunch",
			Foods: []QuickMealItem{
				{FoodID: "white_rice_cooked", Quantity: 150},
				{FoodID: "pinto_beans_cooked", Quantity: 100},
				{FoodID: "grilled_chicken_breast", Quantity: 120},
				{FoodID: "broccoli_cooked", Quantity: 80},
			},
		},
		{
			Name: "Post-Workout Snack",
			Foods: []QuickMealItem{
				{FoodID: "whey_protein_vanilla", Quantity: 30},
				{FoodID: "banana", Quantity: 60},
				{FoodID: "rolled_oats", Quantity: 30},
			},
		},
	}
}
