package planner

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// The response contract is best effort: the model is instructed to
// answer in exactly the requested shape, parsing is lenient about
// fencing and surrounding chatter, and anything that still fails to
// decode sends the caller to the fallback generator. No schema
// validation library sits in between.

type weekPlanResponse struct {
	WorkoutPlan     models.WorkoutPlan `json:"workout_plan"`
	DietPlan        models.DietPlan    `json:"diet_plan"`
	Recommendations []string           `json:"recommendations"`
}

type shoppingListResponse struct {
	Items []models.ShoppingListItem `json:"items"`
}

// extractJSON pulls the outermost JSON object out of a model reply,
// tolerating markdown fences and stray prose around it.
func extractJSON(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("planner: no JSON object in response")
	}
	return trimmed[start : end+1], nil
}

func parseWeekPlan(raw string) (*weekPlanResponse, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp weekPlanResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("planner: decode week plan: %w", err)
	}

	if len(resp.WorkoutPlan.Days) != 7 || len(resp.DietPlan.Days) != 7 {
		return nil, fmt.Errorf("planner: week plan must have 7 workout and 7 diet days")
	}
	if len(resp.Recommendations) == 0 {
		return nil, fmt.Errorf("planner: week plan has no recommendations")
	}

	// Day indices are positional: whatever the model numbered them,
	// index i is weekday i (0 = Sunday).
	for i := range resp.WorkoutPlan.Days {
		resp.WorkoutPlan.Days[i].Day = i
		resp.WorkoutPlan.Days[i].DayName = models.DayName(i)
	}
	for i := range resp.DietPlan.Days {
		resp.DietPlan.Days[i].Day = i
		resp.DietPlan.Days[i].DayName = models.DayName(i)
	}
	resp.WorkoutPlan.RestDays = restDayIndices(resp.WorkoutPlan.Days)

	return &resp, nil
}

func parseRecommendation(raw string) (*models.WorkoutRecommendation, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var rec models.WorkoutRecommendation
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("planner: decode recommendation: %w", err)
	}
	if rec.Title == "" || len(rec.Exercises) == 0 {
		return nil, fmt.Errorf("planner: recommendation missing title or exercises")
	}
	return &rec, nil
}

func parseRecipe(raw string) (*models.Recipe, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(payload), &recipe); err != nil {
		return nil, fmt.Errorf("planner: decode recipe: %w", err)
	}
	if recipe.Name == "" || len(recipe.Ingredients) == 0 {
		return nil, fmt.Errorf("planner: recipe missing name or ingredients")
	}
	return &recipe, nil
}

func parseShoppingList(raw string) ([]models.ShoppingListItem, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp shoppingListResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("planner: decode shopping list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("planner: shopping list is empty")
	}

	for i := range resp.Items {
		switch resp.Items[i].Category {
		case models.CategoryProduce, models.CategoryMeat, models.CategoryDairy,
			models.CategoryGrains, models.CategoryOther:
		default:
			resp.Items[i].Category = CategorizeIngredient(resp.Items[i].Ingredient)
		}
		resp.Items[i].Checked = false
	}
	return resp.Items, nil
}

func restDayIndices(days []models.DayWorkout) []int {
	indices := make([]int, 0, len(days))
	for _, day := range days {
		if day.IsRestDay {
			indices = append(indices, day.Day)
		}
	}
	return indices
}
