package planner

import (
	"context"
	"log"
	"time"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// Generator orchestrates the four LLM tasks and guarantees degraded
// output instead of errors: any provider failure, malformed response
// or timeout yields the deterministic fallback. Callers of the plan,
// recipe, recommendation and shopping tasks never see an error.
type Generator struct {
	provider Provider
	timeout  time.Duration
}

// NewGenerator wires a generator. A nil provider is valid and selects
// the fallback for everything.
func NewGenerator(provider Provider, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Generator{provider: provider, timeout: timeout}
}

func (g *Generator) generate(ctx context.Context, systemPrompt, userPrompt string, opts Options) (string, error) {
	if g.provider == nil {
		return "", ErrNotConfigured
	}

	// The timeout context cancels the in-flight request itself; a late
	// reply is aborted rather than discarded.
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	return g.provider.Generate(ctx, systemPrompt, userPrompt, opts)
}

// CompletePlan generates the full weekly plan: workout week, diet
// week, recommendations and the consolidated shopping list.
func (g *Generator) CompletePlan(ctx context.Context, input GenerationInput) *models.GeneratedPlan {
	now := time.Now()

	raw, err := g.generate(ctx, buildWeekPlanSystemPrompt(), buildWeekPlanUserPrompt(input), Options{JSONOnly: true})
	if err != nil {
		log.Printf("plan generation falling back: %v", err)
		return FallbackPlan(input, now)
	}

	parsed, err := parseWeekPlan(raw)
	if err != nil {
		log.Printf("plan generation falling back: %v", err)
		return FallbackPlan(input, now)
	}

	plan := &models.GeneratedPlan{
		WorkoutPlan:     parsed.WorkoutPlan,
		DietPlan:        parsed.DietPlan,
		Recommendations: parsed.Recommendations,
		GeneratedAt:     now.UTC(),
	}
	plan.ShoppingList = g.ShoppingList(ctx, plan.DietPlan)
	return plan
}

// ShoppingList builds the consolidated list for a diet plan, asking
// the model first and aggregating the plan's own ingredients when that
// fails.
func (g *Generator) ShoppingList(ctx context.Context, dietPlan models.DietPlan) []models.ShoppingListItem {
	raw, err := g.generate(ctx, buildShoppingListSystemPrompt(), buildShoppingListUserPrompt(dietPlan), Options{JSONOnly: true})
	if err == nil {
		if items, parseErr := parseShoppingList(raw); parseErr == nil {
			return items
		} else {
			err = parseErr
		}
	}

	log.Printf("shopping list falling back: %v", err)
	return FallbackShoppingList(dietPlan)
}

// Recommendation suggests the next workout from the user's context and
// recent activity summaries.
func (g *Generator) Recommendation(ctx context.Context, input GenerationInput, recentActivity []string) models.WorkoutRecommendation {
	raw, err := g.generate(ctx, buildRecommendationSystemPrompt(), buildRecommendationUserPrompt(input, recentActivity), Options{JSONOnly: true})
	if err == nil {
		if rec, parseErr := parseRecommendation(raw); parseErr == nil {
			return *rec
		} else {
			err = parseErr
		}
	}

	log.Printf("workout recommendation falling back: %v", err)
	return FallbackRecommendation(input)
}

// Recipe generates a single recipe for one meal.
func (g *Generator) Recipe(ctx context.Context, input GenerationInput, mealName string) models.Recipe {
	raw, err := g.generate(ctx, buildRecipeSystemPrompt(), buildRecipeUserPrompt(input, mealName), Options{JSONOnly: true})
	if err == nil {
		if recipe, parseErr := parseRecipe(raw); parseErr == nil {
			return *recipe
		} else {
			err = parseErr
		}
	}

	log.Printf("recipe generation falling back: %v", err)
	return FallbackRecipe(input, mealName)
}

// Chat forwards a free-text message to the model with a short user
// context. Unlike the generation tasks it returns the error: the chat
// interpreter owns the canned-reply fallback.
func (g *Generator) Chat(ctx context.Context, input GenerationInput, message string) (string, error) {
	return g.generate(ctx, buildChatSystemPrompt(input), message, Options{})
}
