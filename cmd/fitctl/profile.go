package main

import (
	"fmt"
	"io"

	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/spf13/cobra"
)

func newOnboardCmd(c *cli) *cobra.Command {
	var (
		data                            profile.OnboardingData
		gender, goal, activity, fitness string
	)
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create the profile and compute the nutrition goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data.Gender = metrics.Gender(gender)
			data.Goal = metrics.Goal(goal)
			data.ActivityLevel = metrics.ActivityLevel(activity)
			data.FitnessLevel = profile.FitnessLevel(fitness)
			if _, err := c.profile.CompleteOnboarding(cmd.Context(), c.cfg.UserID, data); err != nil {
				return err
			}
			overview, err := c.profile.Overview(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			printOverview(cmd.OutOrStdout(), overview)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&data.Name, "name", "", "Your name")
	f.IntVar(&data.Age, "age", 0, "Age in years")
	f.StringVar(&gender, "gender", string(metrics.Male), "male or female")
	f.Float64Var(&data.HeightCm, "height", 0, "Height in cm")
	f.Float64Var(&data.WeightKg, "weight", 0, "Weight in kg")
	f.StringVar(&goal, "goal", string(metrics.Maintain),
		"lose_weight, maintain, gain_muscle, strength or endurance")
	f.StringVar(&activity, "activity", string(metrics.ModeratelyActive),
		"sedentary, lightly_active, moderately_active, very_active or extra_active")
	f.StringVar(&fitness, "fitness", string(profile.Beginner), "beginner, intermediate or advanced")
	f.IntVar(&data.WeeklyFrequency, "frequency", 3, "Workouts per week")         //nolint:mnd // default schedule.
	f.IntVar(&data.SessionMinutes, "session-minutes", 60, "Minutes per workout") //nolint:mnd // one hour.
	f.StringSliceVar(&data.AvailableEquipment, "equipment", nil, "Available equipment, comma separated")
	return cmd
}

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the profile, body metrics and nutrition goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := c.profile.Overview(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			printOverview(cmd.OutOrStdout(), overview)
			return nil
		},
	}
	cmd.AddCommand(newProfileUpdateCmd(c))
	return cmd
}

func newProfileUpdateCmd(c *cli) *cobra.Command {
	var (
		weight, height float64
		age            int
		activity, goal string
	)
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update body metrics; the nutrition goals follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch profile.BodyMetricsPatch
			f := cmd.Flags()
			if f.Changed("weight") {
				patch.WeightKg = &weight
			}
			if f.Changed("height") {
				patch.HeightCm = &height
			}
			if f.Changed("age") {
				patch.Age = &age
			}
			if f.Changed("activity") {
				level := metrics.ActivityLevel(activity)
				patch.ActivityLevel = &level
			}
			if f.Changed("goal") {
				g := metrics.Goal(goal)
				patch.Goal = &g
			}
			if _, err := c.profile.UpdateBodyMetrics(cmd.Context(), c.cfg.UserID, patch); err != nil {
				return err
			}
			overview, err := c.profile.Overview(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			printOverview(cmd.OutOrStdout(), overview)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&weight, "weight", 0, "Weight in kg")
	f.Float64Var(&height, "height", 0, "Height in cm")
	f.IntVar(&age, "age", 0, "Age in years")
	f.StringVar(&activity, "activity", "", "Activity level")
	f.StringVar(&goal, "goal", "", "Primary goal")
	return cmd
}

func printOverview(w io.Writer, o profile.Overview) {
	p, g := o.Profile, o.Goals
	fmt.Fprintf(w, "Name: %s\n", p.Name)
	fmt.Fprintf(w, "Body: %.1f kg (%d lbs) | %.0f cm | BMI %.1f (%s)\n",
		p.WeightKg, metrics.KgToLbs(p.WeightKg), p.HeightCm, o.BMI, o.BMICategory)
	fmt.Fprintf(w, "Energy: BMR %d kcal | TDEE %d kcal\n", metrics.Round(p.BMR), metrics.Round(p.TDEE))
	fmt.Fprintf(w, "Goal: %d kcal | P %dg | C %dg | F %dg | Fiber %dg | Water %s\n",
		g.DailyCalories, g.ProteinGrams, g.CarbsGrams, g.FatGrams, g.FiberGrams, metrics.FormatVolume(g.WaterMl))
}
