package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// GenerationInput is the user context every generation task works
// from: primary goals, secondary profile and the training types picked
// at onboarding.
type GenerationInput struct {
	Goals         models.UserGoals
	Profile       models.UserProfileData
	TrainingTypes []string
}

const jsonOnlyRule = `Answer with a single JSON object and nothing else:
no markdown fences, no commentary before or after the JSON.`

func buildWeekPlanSystemPrompt() string {
	var b strings.Builder

	b.WriteString(`You are a personal fitness and nutrition coach. You design complete
weekly workout and diet plans tailored to one user's goals, schedule and preferences.

`)
	b.WriteString(jsonOnlyRule)
	b.WriteString(`

The JSON object must have exactly these fields:

{
  "workout_plan": {
    "name": string,
    "description": string,
    "days": [7 objects, one per weekday, index 0 = Sunday, each:
      {"day": int, "day_name": string, "workout_type": "strength"|"cardio"|"crossfit"|"hiit"|"mobility"|"rest",
       "title": string, "duration_minutes": int, "is_rest_day": bool,
       "exercises": [{"name": string, "sets": int, "reps": string, "weight": string,
                      "rest_seconds": int, "notes": string, "alternatives": [string]}]}],
    "rest_days": [int],
    "weekly_calories_burned": int
  },
  "diet_plan": {
    "name": string, "description": string, "daily_calories": int,
    "macros": {"protein_g": int, "carbs_g": int, "fat_g": int},
    "days": [7 objects: {"day": int, "day_name": string,
      "meals": [{"name": string, "description": string, "calories": int,
                 "ingredients": [{"name": string, "quantity": number, "unit": string}]}]}]
  },
  "recommendations": [string]
}

Rules:
- Exactly 7 workout days and 7 diet days, day indices 0 through 6, 0 = Sunday.
- Rest days have is_rest_day true, workout_type "rest" and an empty exercises array.
- Every meal lists its ingredients with realistic quantities.
- Respect allergies, disliked foods and injuries strictly.
`)

	return b.String()
}

func buildWeekPlanUserPrompt(input GenerationInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Objective: %s\n", input.Goals.Objective)
	fmt.Fprintf(&b, "Current weight: %.1f kg, target weight: %.1f kg\n",
		input.Goals.CurrentWeightKG, input.Goals.TargetWeightKG)
	fmt.Fprintf(&b, "Height: %.0f cm, age: %d, activity level: %s\n",
		input.Goals.HeightCM, input.Goals.Age, input.Goals.ActivityLevel)
	fmt.Fprintf(&b, "Daily calorie target: %d kcal\n", DailyCalorieTarget(input.Goals))
	if len(input.TrainingTypes) > 0 {
		fmt.Fprintf(&b, "Training types: %s\n", strings.Join(input.TrainingTypes, ", "))
	}

	writeProfileContext(&b, input.Profile)

	b.WriteString("\nGenerate the complete weekly plan for this user.")
	return b.String()
}

func writeProfileContext(b *strings.Builder, profile models.UserProfileData) {
	if profile.Experience != "" {
		fmt.Fprintf(b, "Experience: %s\n", profile.Experience)
	}
	if profile.PreferredWorkoutTime != "" {
		fmt.Fprintf(b, "Preferred workout time: %s\n", profile.PreferredWorkoutTime)
	}
	if profile.WorkSchedule != nil {
		fmt.Fprintf(b, "Work schedule: %s from %s to %s\n",
			strings.Join(profile.WorkSchedule.Days, ", "),
			profile.WorkSchedule.StartTime, profile.WorkSchedule.EndTime)
	}
	for sport, freq := range profile.SportFrequencies {
		fmt.Fprintf(b, "Sport %s: %d days/week, %d min sessions, class-based: %t\n",
			sport, freq.DaysPerWeek, freq.SessionMinutes, freq.ClassBased)
	}
	if profile.DietType != "" {
		fmt.Fprintf(b, "Diet type: %s\n", profile.DietType)
	}
	if profile.MealsPerDay > 0 {
		fmt.Fprintf(b, "Meals per day: %d\n", profile.MealsPerDay)
	}
	if len(profile.Allergies) > 0 {
		fmt.Fprintf(b, "Allergies: %s\n", strings.Join(profile.Allergies, ", "))
	}
	if len(profile.DislikedFoods) > 0 {
		fmt.Fprintf(b, "Disliked foods: %s\n", strings.Join(profile.DislikedFoods, ", "))
	}
	if len(profile.FavoriteFoods) > 0 {
		fmt.Fprintf(b, "Favorite foods: %s\n", strings.Join(profile.FavoriteFoods, ", "))
	}
	if len(profile.Injuries) > 0 {
		fmt.Fprintf(b, "Injuries to work around: %s\n", strings.Join(profile.Injuries, ", "))
	}
}

func buildRecommendationSystemPrompt() string {
	return `You are a personal fitness coach suggesting the user's next workout
based on their plan and recent training.

` + jsonOnlyRule + `

The JSON object must have exactly these fields:
{"title": string, "workout_type": "strength"|"cardio"|"crossfit"|"hiit"|"mobility",
 "duration_minutes": int, "reason": string,
 "exercises": [{"name": string, "sets": int, "reps": string, "weight": string,
                "rest_seconds": int, "notes": string}]}`
}

func buildRecommendationUserPrompt(input GenerationInput, recentActivity []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Objective: %s\n", input.Goals.Objective)
	if len(input.TrainingTypes) > 0 {
		fmt.Fprintf(&b, "Training types: %s\n", strings.Join(input.TrainingTypes, ", "))
	}
	if len(recentActivity) > 0 {
		b.WriteString("Recent training:\n")
		for _, entry := range recentActivity {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
	}

	b.WriteString("\nSuggest the single best workout for today.")
	return b.String()
}

func buildRecipeSystemPrompt() string {
	return `You are a nutrition coach writing a single recipe for one meal of the
user's diet plan.

` + jsonOnlyRule + `

The JSON object must have exactly these fields:
{"name": string, "description": string, "prep_minutes": int, "calories": int,
 "macros": {"protein_g": int, "carbs_g": int, "fat_g": int},
 "ingredients": [{"name": string, "quantity": number, "unit": string}],
 "instructions": [string]}`
}

func buildRecipeUserPrompt(input GenerationInput, mealName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Meal: %s\n", mealName)
	if input.Profile.DietType != "" {
		fmt.Fprintf(&b, "Diet type: %s\n", input.Profile.DietType)
	}
	if len(input.Profile.Allergies) > 0 {
		fmt.Fprintf(&b, "Allergies: %s\n", strings.Join(input.Profile.Allergies, ", "))
	}
	if len(input.Profile.DislikedFoods) > 0 {
		fmt.Fprintf(&b, "Avoid: %s\n", strings.Join(input.Profile.DislikedFoods, ", "))
	}

	b.WriteString("\nWrite one recipe for this meal.")
	return b.String()
}

func buildShoppingListSystemPrompt() string {
	return `You are building a consolidated weekly shopping list from a diet plan.
Merge repeated ingredients, summing quantities with matching units.

` + jsonOnlyRule + `

The JSON object must have exactly these fields:
{"items": [{"ingredient": string, "quantity": number, "unit": string,
            "category": "produce"|"meat"|"dairy"|"grains"|"other"}]}`
}

func buildShoppingListUserPrompt(dietPlan models.DietPlan) string {
	encoded, err := json.Marshal(dietPlan.Days)
	if err != nil {
		return "Diet plan unavailable; produce an empty items array."
	}

	return "Diet plan days:\n" + string(encoded) + "\n\nBuild the consolidated shopping list."
}

// buildChatSystemPrompt gives the coach chat a short user context, the
// way the client has always done it: goals plus training types, nothing
// heavier.
func buildChatSystemPrompt(input GenerationInput) string {
	var b strings.Builder

	b.WriteString(`Eres un entrenador personal amable y directo. Responde en el idioma
del usuario, en pocas frases, con consejos concretos de entrenamiento y nutrición.

User context:
`)
	fmt.Fprintf(&b, "Objective: %s\n", input.Goals.Objective)
	fmt.Fprintf(&b, "Current weight: %.1f kg, target: %.1f kg\n",
		input.Goals.CurrentWeightKG, input.Goals.TargetWeightKG)
	if len(input.TrainingTypes) > 0 {
		fmt.Fprintf(&b, "Training types: %s\n", strings.Join(input.TrainingTypes, ", "))
	}

	return b.String()
}
