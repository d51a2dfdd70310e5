package planner

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

func weekPlanJSON(t *testing.T) string {
	t.Helper()
	plan := FallbackPlan(GenerationInput{Goals: baseGoals()}, time.Unix(0, 0))
	payload, err := json.Marshal(weekPlanResponse{
		WorkoutPlan:     plan.WorkoutPlan,
		DietPlan:        plan.DietPlan,
		Recommendations: plan.Recommendations,
	})
	if err != nil {
		t.Fatalf("marshal week plan: %v", err)
	}
	return string(payload)
}

func TestParseWeekPlanAcceptsFencedResponse(t *testing.T) {
	raw := "```json\n" + weekPlanJSON(t) + "\n```"

	resp, err := parseWeekPlan(raw)
	if err != nil {
		t.Fatalf("parseWeekPlan: %v", err)
	}
	if len(resp.WorkoutPlan.Days) != 7 || len(resp.DietPlan.Days) != 7 {
		t.Fatalf("expected 7+7 days, got %d and %d",
			len(resp.WorkoutPlan.Days), len(resp.DietPlan.Days))
	}
}

func TestParseWeekPlanNormalizesDayIndices(t *testing.T) {
	plan := FallbackPlan(GenerationInput{Goals: baseGoals()}, time.Unix(0, 0))
	// Model output with scrambled day numbering.
	for i := range plan.WorkoutPlan.Days {
		plan.WorkoutPlan.Days[i].Day = 99
		plan.WorkoutPlan.Days[i].DayName = "Someday"
	}
	payload, err := json.Marshal(weekPlanResponse{
		WorkoutPlan:     plan.WorkoutPlan,
		DietPlan:        plan.DietPlan,
		Recommendations: plan.Recommendations,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	resp, err := parseWeekPlan(string(payload))
	if err != nil {
		t.Fatalf("parseWeekPlan: %v", err)
	}
	for i, day := range resp.WorkoutPlan.Days {
		if day.Day != i || day.DayName != models.DayName(i) {
			t.Fatalf("position %d: got day %d name %q", i, day.Day, day.DayName)
		}
	}
}

func TestParseWeekPlanRejectsShortWeek(t *testing.T) {
	raw := `{"workout_plan":{"days":[{"day":0}]},"diet_plan":{"days":[]},"recommendations":["x"]}`
	if _, err := parseWeekPlan(raw); err == nil {
		t.Fatal("expected error for incomplete week")
	}
}

func TestParseWeekPlanRejectsProse(t *testing.T) {
	if _, err := parseWeekPlan("Lo siento, no puedo generar el plan."); err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}

func TestParseShoppingListFixesBadCategories(t *testing.T) {
	raw := `{"items":[
		{"ingredient":"Pollo","quantity":200,"unit":"g","category":"protein","checked":true},
		{"ingredient":"Arroz","quantity":100,"unit":"g","category":"grains"}
	]}`

	items, err := parseShoppingList(raw)
	if err != nil {
		t.Fatalf("parseShoppingList: %v", err)
	}
	if items[0].Category != models.CategoryMeat {
		t.Fatalf("expected invalid category recomputed to meat, got %q", items[0].Category)
	}
	if items[0].Checked {
		t.Fatal("expected checked state to be reset")
	}
	if items[1].Category != models.CategoryGrains {
		t.Fatalf("expected valid category kept, got %q", items[1].Category)
	}
}

func TestParseRecommendationRequiresExercises(t *testing.T) {
	if _, err := parseRecommendation(`{"title":"Empuje","exercises":[]}`); err == nil {
		t.Fatal("expected error for recommendation without exercises")
	}
}

func TestExtractJSONFindsObjectInChatter(t *testing.T) {
	raw := "Claro, aquí tienes:\n```json\n{\"a\":1}\n```\nEspero que te sirva."
	payload, err := extractJSON(raw)
	if err != nil {
		t.Fatalf("extractJSON: %v", err)
	}
	if payload != `{"a":1}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}
