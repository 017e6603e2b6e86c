package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/spf13/cobra"
)

// parseFoodItem parses "<food id>:<grams>".
func parseFoodItem(s string) (nutrition.MealItem, error) {
	id, qty, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(id) == "" {
		return nutrition.MealItem{}, fmt.Errorf("invalid --food %q (expected <id>:<grams>)", s)
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(qty), 64)
	if err != nil {
		return nutrition.MealItem{}, fmt.Errorf("invalid quantity in --food %q", s)
	}
	return nutrition.MealItem{FoodID: strings.TrimSpace(id), Quantity: quantity}, nil
}

func newMealCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meal",
		Short: "Log and delete meals",
	}
	cmd.AddCommand(newMealAddCmd(c), newMealDeleteCmd(c))
	return cmd
}

func newMealAddCmd(c *cli) *cobra.Command {
	var (
		mealType string
		foods    []string
		quick    string
		date     string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a meal from foods or a quick meal template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				meal nutrition.MealEntry
				err  error
			)
			if quick != "" {
				meal, err = c.nutrition.LogQuickMeal(cmd.Context(), c.cfg.UserID, quick, nutrition.MealType(mealType))
			} else {
				in := nutrition.MealInput{MealType: nutrition.MealType(mealType)} //nolint:exhaustruct // set below.
				if date != "" {
					if in.Date, err = parseDateOrNow(date, c.now()); err != nil {
						return err
					}
				}
				for _, f := range foods {
					item, parseErr := parseFoodItem(f)
					if parseErr != nil {
						return parseErr
					}
					in.Items = append(in.Items, item)
				}
				meal, err = c.nutrition.LogMeal(cmd.Context(), c.cfg.UserID, in)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s %s: %d kcal | P %.1fg | C %.1fg | F %.1fg\n",
				meal.MealType, meal.ID, meal.TotalCalories, meal.TotalProtein, meal.TotalCarbs, meal.TotalFat)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mealType, "type", string(nutrition.Lunch),
		"breakfast, morning_snack, lunch, afternoon_snack, dinner or evening_snack")
	f.StringArrayVar(&foods, "food", nil, "Food as <id>:<grams>, repeatable")
	f.StringVar(&quick, "quick", "", "Name of a quick meal template")
	f.StringVar(&date, "date", "", "Date YYYY-MM-DD (default now)")
	return cmd
}

func newMealDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logged meal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.nutrition.DeleteMeal(cmd.Context(), c.cfg.UserID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		},
	}
}

func newWaterCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Log water intake",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <ml>",
		Short: "Log water drunk now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if _, err = c.nutrition.LogWater(cmd.Context(), c.cfg.UserID, amount); err != nil {
				return err
			}
			total, err := c.nutrition.TodayWater(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water today: %s\n", metrics.FormatVolume(total))
			return nil
		},
	})
	return cmd
}

func newTodayCmd(c *cli) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day's intake against the nutrition goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := parseDateOrNow(date, c.now())
			if err != nil {
				return err
			}
			s, err := c.nutrition.DailySummary(cmd.Context(), c.cfg.UserID, day)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", s.Date)
			fmt.Fprintf(out, "Intake: %d kcal | P %dg | C %dg | F %dg\n",
				s.TotalCalories, s.TotalProtein, s.TotalCarbs, s.TotalFat)
			fmt.Fprintf(out, "Water: %s\n", metrics.FormatVolume(s.TotalWater))

			state, err := c.profile.Get(cmd.Context(), c.cfg.UserID)
			switch {
			case errors.Is(err, profile.ErrNotOnboarded):
				fmt.Fprintln(out, "Goal: not set")
			case err != nil:
				return err
			default:
				g := state.NutritionGoals
				fmt.Fprintf(out, "Goal: %d kcal (%d%%) | P %dg (%d%%) | C %dg (%d%%) | F %dg (%d%%)\n",
					g.DailyCalories, percent(s.TotalCalories, g.DailyCalories),
					g.ProteinGrams, percent(s.TotalProtein, g.ProteinGrams),
					g.CarbsGrams, percent(s.TotalCarbs, g.CarbsGrams),
					g.FatGrams, percent(s.TotalFat, g.FatGrams))
			}

			for _, mt := range nutrition.MealTypes() {
				if totals := s.MealBreakdown[mt]; totals.Calories > 0 {
					fmt.Fprintf(out, "  %s: %d kcal\n", mt, totals.Calories)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	return cmd
}

func percent(current, target int) int {
	return metrics.PercentageOfGoal(float64(current), float64(target))
}

func newWeekCmd(c *cli) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the averages of the seven days ending at the date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reference, err := parseDateOrNow(date, c.now())
			if err != nil {
				return err
			}
			w, err := c.nutrition.WeeklyStats(cmd.Context(), c.cfg.UserID, reference)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week: %s to %s\n", w.StartDate, w.EndDate)
			fmt.Fprintf(out, "Average: %d kcal | P %dg | C %dg | F %dg | Water %s\n",
				w.AverageCalories, w.AverageProtein, w.AverageCarbs, w.AverageFat, metrics.FormatVolume(w.AverageWater))
			fmt.Fprintf(out, "Adherence: %d%% (%d/7 days logged)\n", w.AdherencePercentage, w.DaysLogged)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Last day YYYY-MM-DD (default today)")
	return cmd
}

func newFoodsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "foods",
		Short: "Browse the food table",
	}
	var category string
	search := &cobra.Command{
		Use:   "search [query]",
		Short: "Search foods by name or brand",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			foods, err := c.nutrition.SearchFoods(cmd.Context(), c.cfg.UserID, query, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tNAME\tSERVING\tKCAL\tP\tC\tF")
			for _, f := range foods {
				fmt.Fprintf(out, "%s\t%s\t%gg\t%g\t%g\t%g\t%g\n",
					f.ID, f.Name, f.ServingSize, f.Calories, f.Protein, f.Carbs, f.Fat)
			}
			return nil
		},
	}
	search.Flags().StringVar(&category, "category", "", "Restrict to a food category")
	cmd.AddCommand(search)
	return cmd
}
