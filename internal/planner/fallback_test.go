package planner

import (
	"testing"
	"time"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

func baseGoals() models.UserGoals {
	return models.UserGoals{
		Objective:       models.ObjectiveMaintain,
		CurrentWeightKG: 70,
		HeightCM:        170,
		Age:             30,
		ActivityLevel:   models.ActivitySedentary,
	}
}

func TestDailyCalorieTarget(t *testing.T) {
	goals := baseGoals()

	if got := DailyCalorieTarget(goals); got != 1979 {
		t.Fatalf("expected 1979 kcal for maintain, got %d", got)
	}

	goals.Objective = models.ObjectiveLoseWeight
	if got := DailyCalorieTarget(goals); got != 1479 {
		t.Fatalf("expected 1479 kcal for lose_weight, got %d", got)
	}

	goals.Objective = models.ObjectiveGainMuscle
	if got := DailyCalorieTarget(goals); got != 2279 {
		t.Fatalf("expected 2279 kcal for gain_muscle, got %d", got)
	}
}

func TestDailyCalorieTargetExplicitOverride(t *testing.T) {
	goals := baseGoals()
	target := 2500
	goals.DailyCalorieTarget = &target

	if got := DailyCalorieTarget(goals); got != 2500 {
		t.Fatalf("expected explicit target 2500 to win, got %d", got)
	}
}

func TestDailyCalorieTargetUnknownActivityDefaultsToSedentary(t *testing.T) {
	goals := baseGoals()
	goals.ActivityLevel = "parkour"

	if got := DailyCalorieTarget(goals); got != 1979 {
		t.Fatalf("expected sedentary default 1979, got %d", got)
	}
}

func TestFallbackPlanIsRenderSafe(t *testing.T) {
	input := GenerationInput{Goals: baseGoals(), TrainingTypes: []string{"gym"}}
	plan := FallbackPlan(input, time.Now())

	if got := len(plan.WorkoutPlan.Days); got != 7 {
		t.Fatalf("expected 7 workout days, got %d", got)
	}
	if got := len(plan.DietPlan.Days); got != 7 {
		t.Fatalf("expected 7 diet days, got %d", got)
	}
	if len(plan.Recommendations) == 0 {
		t.Fatal("expected non-empty recommendations")
	}
	if len(plan.ShoppingList) == 0 {
		t.Fatal("expected non-empty shopping list")
	}
	if plan.DietPlan.Macros.ProteinG == 0 || plan.DietPlan.Macros.CarbsG == 0 || plan.DietPlan.Macros.FatG == 0 {
		t.Fatalf("expected macros to be populated, got %+v", plan.DietPlan.Macros)
	}

	for _, day := range plan.WorkoutPlan.Days {
		if day.Day < 0 || day.Day > 6 {
			t.Fatalf("day index %d out of range", day.Day)
		}
		if day.DayName != models.DayName(day.Day) {
			t.Fatalf("day %d carries name %q", day.Day, day.DayName)
		}
		if !day.IsRestDay && len(day.Exercises) == 0 {
			t.Fatalf("training day %d has no exercises", day.Day)
		}
	}

	for _, rest := range plan.WorkoutPlan.RestDays {
		if !plan.WorkoutPlan.Days[rest].IsRestDay {
			t.Fatalf("rest day index %d points at a training day", rest)
		}
	}
}

func TestFallbackPlanPicksCrossfitWeekForClassTraining(t *testing.T) {
	input := GenerationInput{Goals: baseGoals(), TrainingTypes: []string{"CrossFit"}}
	plan := FallbackPlan(input, time.Now())

	if plan.WorkoutPlan.Name != "Semana de box" {
		t.Fatalf("expected crossfit week, got %q", plan.WorkoutPlan.Name)
	}
}

func TestFallbackDietRespectsMealsPerDay(t *testing.T) {
	input := GenerationInput{Goals: baseGoals()}
	input.Profile.MealsPerDay = 5

	diet := fallbackDietWeek(input)
	for _, day := range diet.Days {
		if got := len(day.Meals); got != 5 {
			t.Fatalf("expected 5 meals on day %d, got %d", day.Day, got)
		}
	}

	input.Profile.MealsPerDay = 1
	diet = fallbackDietWeek(input)
	if got := len(diet.Days[0].Meals); got != 3 {
		t.Fatalf("expected meals clamped up to 3, got %d", got)
	}
}
