package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Aguti1902/appfitness-backend/internal/localstore"
	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/planner"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrProfileIncomplete = errors.New("profile incomplete")
)

const (
	mirrorRetries   = 3
	mirrorBaseDelay = 1 * time.Second
	mirrorTimeout   = 10 * time.Second
)

type profileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

type planMirror interface {
	UpdateGeneratedPlan(ctx context.Context, userID int64, plan []byte, generatedAt time.Time) error
}

// PlanService owns the plan store. The device store is authoritative:
// every mutation commits locally first, then mirrors to the profiles
// row asynchronously, best effort. Deleting a plan removes the local
// copy only.
type PlanService struct {
	store     *localstore.Store
	generator *planner.Generator
	profiles  profileReader
	mirror    planMirror
}

func NewPlanService(
	store *localstore.Store,
	generator *planner.Generator,
	profiles profileReader,
	mirror planMirror,
) *PlanService {
	return &PlanService{
		store:     store,
		generator: generator,
		profiles:  profiles,
		mirror:    mirror,
	}
}

// Generate builds a fresh complete plan from the user's profile and
// commits it. Generation itself cannot fail (the fallback guarantees a
// plan); only a missing profile or a local write failure surfaces.
func (s *PlanService) Generate(ctx context.Context, userID int64) (*models.GeneratedPlan, error) {
	input, err := s.generationInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := s.generator.CompletePlan(ctx, *input)
	if err := s.commitPlan(userID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Get returns the current plan from the device store.
func (s *PlanService) Get(userID int64) (*models.GeneratedPlan, error) {
	var plan models.GeneratedPlan
	found, err := s.store.Get(localstore.PlanKey(userID), &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPlanNotFound
	}
	return &plan, nil
}

// Delete removes the local plan copy. The backend mirror keeps the
// last mirrored value until the next generation overwrites it.
func (s *PlanService) Delete(userID int64) error {
	return s.store.Delete(localstore.PlanKey(userID))
}

// SwapDays exchanges the content of two workout days. Invalid indices
// are a silent no-op: the unchanged plan comes back without an error.
func (s *PlanService) SwapDays(userID int64, dayA, dayB int) (*models.GeneratedPlan, error) {
	plan, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	swapped, err := planner.SwapDays(*plan, dayA, dayB)
	if err != nil {
		log.Printf("swap days rejected for user %d: %v", userID, err)
		return plan, nil
	}

	if err := s.commitPlan(userID, &swapped); err != nil {
		return nil, err
	}
	return &swapped, nil
}

// WODs returns the per-sport WOD map; a user who never wrote one gets
// an empty map, not an error.
func (s *PlanService) WODs(userID int64, sport string) (models.WeeklyWODs, error) {
	key, err := normalizeSport(sport)
	if err != nil {
		return nil, err
	}

	wods := models.WeeklyWODs{}
	if _, err := s.store.Get(localstore.WODKey(userID, key), &wods); err != nil {
		return nil, err
	}
	return wods, nil
}

// SetWOD writes one field of one weekday's WOD entry and persists the
// whole map, also syncing it into the stored plan when one exists.
func (s *PlanService) SetWOD(userID int64, sport, day, field, value string) (models.WeeklyWODs, error) {
	key, err := normalizeSport(sport)
	if err != nil {
		return nil, err
	}

	wods, err := s.WODs(userID, key)
	if err != nil {
		return nil, err
	}
	if err := planner.SetWODField(wods, day, planner.WODField(field), value); err != nil {
		return nil, ErrInvalidInput
	}

	return wods, s.saveWODs(userID, key, wods)
}

// ClearWOD removes a weekday's entry entirely.
func (s *PlanService) ClearWOD(userID int64, sport, day string) (models.WeeklyWODs, error) {
	key, err := normalizeSport(sport)
	if err != nil {
		return nil, err
	}

	wods, err := s.WODs(userID, key)
	if err != nil {
		return nil, err
	}
	if err := planner.ClearWODDay(wods, day); err != nil {
		return nil, ErrInvalidInput
	}

	return wods, s.saveWODs(userID, key, wods)
}

// ToggleShoppingItem flips one item's checked flag. An out-of-range
// index is a silent no-op.
func (s *PlanService) ToggleShoppingItem(userID int64, index int) (*models.GeneratedPlan, error) {
	plan, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if err := planner.ToggleShoppingItem(plan.ShoppingList, index); err != nil {
		log.Printf("shopping toggle rejected for user %d: %v", userID, err)
		return plan, nil
	}

	if err := s.commitPlan(userID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// RebuildShoppingList replaces the plan's shopping list, either by
// aggregating the given recipes or, with none, regenerating from the
// diet plan. Checked state resets with the new list.
func (s *PlanService) RebuildShoppingList(ctx context.Context, userID int64, recipes []models.Recipe) (*models.GeneratedPlan, error) {
	plan, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if len(recipes) > 0 {
		plan.ShoppingList = planner.AggregateRecipes(recipes)
	} else {
		plan.ShoppingList = s.generator.ShoppingList(ctx, plan.DietPlan)
	}

	if err := s.commitPlan(userID, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GenerateRecipe produces one recipe for a meal of the diet plan.
func (s *PlanService) GenerateRecipe(ctx context.Context, userID int64, mealName string) (*models.Recipe, error) {
	if strings.TrimSpace(mealName) == "" {
		return nil, ErrInvalidInput
	}

	input, err := s.generationInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipe := s.generator.Recipe(ctx, *input, mealName)
	return &recipe, nil
}

// RecommendWorkout suggests the next workout, feeding recent WOD notes
// to the model as activity context.
func (s *PlanService) RecommendWorkout(ctx context.Context, userID int64) (*models.WorkoutRecommendation, error) {
	input, err := s.generationInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommendation := s.generator.Recommendation(ctx, *input, s.recentActivity(userID, input.TrainingTypes))
	return &recommendation, nil
}

func (s *PlanService) generationInput(ctx context.Context, userID int64) (*planner.GenerationInput, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	if profile.Goals == nil {
		return nil, ErrProfileIncomplete
	}

	input := planner.GenerationInput{
		Goals:         *profile.Goals,
		TrainingTypes: profile.TrainingTypes,
	}
	if profile.ProfileData != nil {
		input.Profile = *profile.ProfileData
	}
	return &input, nil
}

// commitPlan is the write path: local commit first (authoritative),
// then an async best-effort mirror to the profiles row.
func (s *PlanService) commitPlan(userID int64, plan *models.GeneratedPlan) error {
	if err := s.store.Put(localstore.PlanKey(userID), plan); err != nil {
		return err
	}

	go s.mirrorPlan(userID, plan)
	return nil
}

func (s *PlanService) mirrorPlan(userID int64, plan *models.GeneratedPlan) {
	if s.mirror == nil {
		return
	}

	encoded, err := json.Marshal(plan)
	if err != nil {
		log.Printf("plan mirror encode failed for user %d: %v", userID, err)
		return
	}

	for attempt := 0; attempt < mirrorRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		err = s.mirror.UpdateGeneratedPlan(ctx, userID, encoded, plan.GeneratedAt)
		cancel()
		if err == nil {
			return
		}
		time.Sleep(mirrorBaseDelay * time.Duration(1<<uint(attempt)))
	}

	// Local storage stays authoritative; a failed mirror is only
	// logged, never surfaced.
	log.Printf("plan mirror failed for user %d after %d attempts: %v", userID, mirrorRetries, err)
}

func (s *PlanService) saveWODs(userID int64, sport string, wods models.WeeklyWODs) error {
	if err := s.store.Put(localstore.WODKey(userID, sport), wods); err != nil {
		return err
	}

	// Keep the plan's embedded copy in step when a plan exists.
	plan, err := s.Get(userID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return nil
		}
		return err
	}

	if plan.WODs == nil {
		plan.WODs = make(map[string]models.WeeklyWODs)
	}
	plan.WODs[sport] = wods
	return s.commitPlan(userID, plan)
}

func (s *PlanService) recentActivity(userID int64, trainingTypes []string) []string {
	var summaries []string
	for _, sport := range trainingTypes {
		key, err := normalizeSport(sport)
		if err != nil {
			continue
		}
		wods, err := s.WODs(userID, key)
		if err != nil {
			continue
		}
		for day, entry := range wods {
			if entry.WOD != "" {
				summaries = append(summaries, key+" "+day+": "+entry.WOD)
			}
		}
	}
	return summaries
}

func normalizeSport(sport string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(sport))
	if normalized == "" {
		return "", ErrInvalidInput
	}
	return normalized, nil
}
