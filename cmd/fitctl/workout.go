package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/workout"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Run workout sessions and inspect the history",
	}
	cmd.AddCommand(
		newWorkoutStatusCmd(c),
		newWorkoutStartCmd(c),
		newWorkoutSetCmd(c),
		newWorkoutNavigateCmd(c, workout.Next),
		newWorkoutNavigateCmd(c, workout.Previous),
		newWorkoutEndCmd(c),
		newWorkoutStatsCmd(c),
		newWorkoutSuggestCmd(c),
	)
	return cmd
}

func newWorkoutStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, err := c.workout.Get(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !tracker.IsActive() {
				fmt.Fprintln(out, "No active session")
				return nil
			}
			s := tracker.CurrentSession
			fmt.Fprintf(out, "Session %s (%s) started %s\n", s.ID, s.WorkoutDayID, s.StartTime.Format("15:04"))
			for i, ex := range s.CompletedExercises {
				marker := " "
				if i == tracker.CurrentExerciseIndex {
					marker = ">"
				}
				fmt.Fprintf(out, "%s %s: %d sets\n", marker, ex.ExerciseID, len(ex.Sets))
			}
			return nil
		},
	}
}

func newWorkoutStartCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "start [day id]",
		Short: "Start a session for the given plan day or today's scheduled day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayID := ""
			if len(args) == 1 {
				dayID = args[0]
			}
			s, err := c.workout.StartSession(cmd.Context(), c.cfg.UserID, dayID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started session %s with %d exercises\n", s.ID, len(s.CompletedExercises))
			return nil
		},
	}
}

func newWorkoutSetCmd(c *cli) *cobra.Command {
	var (
		weight  float64
		reps    int
		rpe     int
		failure bool
	)
	cmd := &cobra.Command{
		Use:   "set <exercise id>",
		Short: "Log a set for an exercise of the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := workout.CompletedSet{ //nolint:exhaustruct // the tracker numbers the set.
				Weight:      weight,
				Reps:        reps,
				IsCompleted: true,
				IsFailure:   failure,
			}
			if cmd.Flags().Changed("rpe") {
				set.RPE = &rpe
			}
			logged, err := c.workout.LogSet(cmd.Context(), c.cfg.UserID, args[0], set)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d: %g kg x %d\n", logged.SetNumber, logged.Weight, logged.Reps)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&weight, "weight", 0, "Weight in kg")
	f.IntVar(&reps, "reps", 0, "Repetitions")
	f.IntVar(&rpe, "rpe", 0, "Rate of perceived exertion 1-10")
	f.BoolVar(&failure, "failure", false, "The set ended in failure")
	return cmd
}

func newWorkoutNavigateCmd(c *cli, direction workout.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   string(direction),
		Short: fmt.Sprintf("Move to the %s exercise", direction),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			index, err := c.workout.Navigate(cmd.Context(), c.cfg.UserID, direction)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current exercise: %d\n", index+1)
			return nil
		},
	}
}

func newWorkoutEndCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "Complete the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.workout.EndSession(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s: %g kg volume in %s\n",
				s.ID, s.TotalVolume, metrics.FormatDuration(s.Duration))
			return nil
		},
	}
}

func newWorkoutStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show workout statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.workout.Stats(cmd.Context(), c.cfg.UserID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sessions: %d\n", st.TotalSessions)
			fmt.Fprintf(out, "Volume: %g kg\n", st.TotalVolume)
			fmt.Fprintf(out, "Average duration: %s\n",
				metrics.FormatDuration(metrics.Round(st.AverageSessionDuration)))
			fmt.Fprintf(out, "Consistency: %d%%\n", st.ConsistencyPercentage)
			for _, id := range slices.Sorted(maps.Keys(st.StrengthGains)) {
				fmt.Fprintf(out, "  %s: %+g kg 1RM\n", id, st.StrengthGains[id])
			}
			return nil
		},
	}
}

func newWorkoutSuggestCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <exercise id>",
		Short: "Suggest the weight for the next session of an exercise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.workout.ProgressionSuggestion(cmd.Context(), c.cfg.UserID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %g kg -> %g kg (plates %g kg), %s [%s, %s confidence]\n",
				p.ExerciseID, p.CurrentWeight, p.SuggestedWeight, p.PlateWeight, p.Reason, p.Action, p.Confidence)
			return nil
		},
	}
}
