package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fitevolve/fitevolve/internal/errors"
	"github.com/fitevolve/fitevolve/internal/metrics"
	"github.com/fitevolve/fitevolve/internal/nutrition"
	"github.com/fitevolve/fitevolve/internal/profile"
	"github.com/fitevolve/fitevolve/internal/workout"
)

type homeTemplateData struct {
	BaseTemplateData
	Onboarded bool
	Name      string
	// Macros compares today's intake with the active nutrition goals.
	Macros []macroProgress
	Water  macroProgress
	// BurnedCalories estimates the energy spent in today's finished sessions.
	BurnedCalories int
	// Days contains the schedule of the current week, starting on Monday.
	Days  []dayView
	Stats workout.Stats
}

type macroProgress struct {
	Label   string
	Current string
	Target  string
	Percent int
}

// dayView represents a single day's view data.
type dayView struct {
	Date        time.Time
	Name        string
	IsToday     bool
	IsPast      bool
	IsScheduled bool
	// WorkoutName is the name of the planned workout day.
	WorkoutName string
	// WorkoutStatus is one of unscheduled, not_started, in_progress or completed.
	WorkoutStatus   string
	CompletedSets   int
	TotalSets       int
	ProgressPercent int
}

// weekStart returns midnight of the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 //nolint:mnd // Monday is the first day of the week.
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

func plannedSets(day workout.Day) int {
	total := 0
	for _, pe := range day.Exercises {
		total += pe.Sets
	}
	return total
}

func completedSets(session workout.Session) int {
	total := 0
	for _, ce := range session.CompletedExercises {
		for _, set := range ce.Sets {
			if set.IsCompleted {
				total++
			}
		}
	}
	return total
}

func toDays(tracker workout.Tracker, now time.Time) []dayView {
	var (
		start    = weekStart(now)
		today    = nutrition.DayKey(now)
		sessions = make(map[string]workout.Session)
	)
	for _, session := range tracker.WorkoutHistory {
		sessions[nutrition.DayKey(session.Date)] = session
	}
	if tracker.CurrentSession != nil {
		sessions[nutrition.DayKey(tracker.CurrentSession.Date)] = *tracker.CurrentSession
	}

	days := make([]dayView, 0, 7) //nolint:mnd // days in a week.
	for i := range 7 {
		date := start.AddDate(0, 0, i)
		view := dayView{
			Date:          date,
			Name:          date.Format("Monday"),
			IsToday:       nutrition.DayKey(date) == today,
			IsPast:        nutrition.DayKey(date) < today,
			WorkoutStatus: "unscheduled",
		}
		if tracker.CurrentPlan != nil {
			for _, day := range tracker.CurrentPlan.WeeklySchedule {
				if day.DayOfWeek == date.Weekday() {
					view.IsScheduled = true
					view.WorkoutName = day.Name
					view.WorkoutStatus = "not_started"
					view.TotalSets = plannedSets(day)
					break
				}
			}
		}
		if session, ok := sessions[nutrition.DayKey(date)]; ok {
			view.WorkoutStatus = "in_progress"
			if session.IsCompleted {
				view.WorkoutStatus = "completed"
			}
			view.CompletedSets = completedSets(session)
			if !view.IsScheduled {
				view.TotalSets = view.CompletedSets
			}
		}
		if view.TotalSets > 0 {
			view.ProgressPercent = min(100, //nolint:mnd // percent.
				metrics.PercentageOfGoal(float64(view.CompletedSets), float64(view.TotalSets)))
		}
		days = append(days, view)
	}
	return days
}

func burnedToday(tracker workout.Tracker, weightKg float64, now time.Time) int {
	total := 0
	for _, session := range tracker.WorkoutHistory {
		if nutrition.DayKey(session.Date) == nutrition.DayKey(now) {
			total += metrics.EstimateWorkoutCalories(weightKg, float64(session.Duration), metrics.ModerateIntensity)
		}
	}
	return total
}

func macroRow(label string, current, target int, unit string) macroProgress {
	return macroProgress{
		Label:   label,
		Current: strconv.Itoa(current) + unit,
		Target:  strconv.Itoa(target) + unit,
		Percent: metrics.PercentageOfGoal(float64(current), float64(target)),
	}
}

// home renders the dashboard: today's nutrition against the goals and this week's training.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	var (
		ctx    = r.Context()
		now    = app.now()
		userID = app.userID
		data   = homeTemplateData{BaseTemplateData: newBaseTemplateData(r, "Dashboard")}
	)

	tracker, err := app.workoutService.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	data.Days = toDays(tracker, now)
	data.Stats = tracker.Stats(now)

	overview, err := app.profileService.Overview(ctx, userID)
	if errors.Is(err, profile.ErrNotOnboarded) {
		app.render(w, r, http.StatusOK, "home", data)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	data.Onboarded = true
	data.Name = overview.Profile.Name

	summary, err := app.nutritionService.DailySummary(ctx, userID, now)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	goals := overview.Goals
	data.Macros = []macroProgress{
		macroRow("Calories", summary.TotalCalories, goals.DailyCalories, " kcal"),
		macroRow("Protein", summary.TotalProtein, goals.ProteinGrams, " g"),
		macroRow("Carbs", summary.TotalCarbs, goals.CarbsGrams, " g"),
		macroRow("Fat", summary.TotalFat, goals.FatGrams, " g"),
	}
	data.Water = macroProgress{
		Label:   "Water",
		Current: metrics.FormatVolume(summary.TotalWater),
		Target:  metrics.FormatVolume(overview.WaterTargetMl),
		Percent: metrics.PercentageOfGoal(float64(summary.TotalWater), float64(overview.WaterTargetMl)),
	}
	data.BurnedCalories = burnedToday(tracker, overview.Profile.WeightKg, now)

	app.render(w, r, http.StatusOK, "home", data)
}
