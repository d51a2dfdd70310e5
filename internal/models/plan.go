package models

import "time"

// WorkoutType classifies a planned training day.
type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutCrossfit WorkoutType = "crossfit"
	WorkoutHIIT     WorkoutType = "hiit"
	WorkoutMobility WorkoutType = "mobility"
	WorkoutRest     WorkoutType = "rest"
)

// PlannedExercise is one prescribed exercise within a training day.
type PlannedExercise struct {
	Name         string   `json:"name"`
	Sets         int      `json:"sets"`
	Reps         string   `json:"reps"`
	Weight       string   `json:"weight,omitempty"`
	RestSeconds  int      `json:"rest_seconds"`
	Notes        string   `json:"notes,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// DayWorkout is one day of the weekly workout plan. Day is the
// day-of-week index (0 = Sunday) and never moves; swapping two days
// exchanges everything else.
type DayWorkout struct {
	Day             int               `json:"day"`
	DayName         string            `json:"day_name"`
	WorkoutType     WorkoutType       `json:"workout_type"`
	Title           string            `json:"title"`
	DurationMinutes int               `json:"duration_minutes"`
	Exercises       []PlannedExercise `json:"exercises"`
	Notes           string            `json:"notes,omitempty"`
	IsRestDay       bool              `json:"is_rest_day"`
}

// WorkoutPlan is the weekly training schedule.
type WorkoutPlan struct {
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	Days                 []DayWorkout `json:"days"`
	RestDays             []int        `json:"rest_days"`
	WeeklyCaloriesBurned int          `json:"weekly_calories_burned"`
}

// Macros are daily macronutrient targets in grams.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Ingredient is one ingredient of a meal or recipe.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Meal is one meal of a day.
type Meal struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Calories    int          `json:"calories"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// DayMeals is the meal set for one day, indexed like DayWorkout.
type DayMeals struct {
	Day     int    `json:"day"`
	DayName string `json:"day_name"`
	Meals   []Meal `json:"meals"`
}

// DietPlan is the weekly nutrition schedule.
type DietPlan struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DailyCalories int        `json:"daily_calories"`
	Macros        Macros     `json:"macros"`
	Days          []DayMeals `json:"days"`
}

// ShoppingCategory groups shopping list items.
type ShoppingCategory string

const (
	CategoryProduce ShoppingCategory = "produce"
	CategoryMeat    ShoppingCategory = "meat"
	CategoryDairy   ShoppingCategory = "dairy"
	CategoryGrains  ShoppingCategory = "grains"
	CategoryOther   ShoppingCategory = "other"
)

// ShoppingListItem is one aggregated shopping list entry. Checked is
// ephemeral UI state and resets when the list is regenerated.
type ShoppingListItem struct {
	Ingredient string           `json:"ingredient"`
	Quantity   float64          `json:"quantity"`
	Unit       string           `json:"unit"`
	Category   ShoppingCategory `json:"category"`
	Checked    bool             `json:"checked"`
}

// Recipe is a single generated recipe.
type Recipe struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	PrepMinutes  int          `json:"prep_minutes"`
	Calories     int          `json:"calories"`
	Macros       Macros       `json:"macros"`
}

// WorkoutRecommendation is a single suggested next workout.
type WorkoutRecommendation struct {
	Title           string            `json:"title"`
	WorkoutType     WorkoutType       `json:"workout_type"`
	DurationMinutes int               `json:"duration_minutes"`
	Exercises       []PlannedExercise `json:"exercises"`
	Reason          string            `json:"reason"`
}

// GeneratedPlan is the root artifact produced by plan generation. The
// device store holds the canonical working copy; the profiles row
// carries a best-effort mirror.
type GeneratedPlan struct {
	WorkoutPlan     WorkoutPlan           `json:"workout_plan"`
	DietPlan        DietPlan              `json:"diet_plan"`
	ShoppingList    []ShoppingListItem    `json:"shopping_list"`
	Recommendations []string              `json:"recommendations"`
	WODs            map[string]WeeklyWODs `json:"wods,omitempty"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// DayName returns the weekday label for a 0-6 day index (0 = Sunday).
func DayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return dayNames[day]
}
