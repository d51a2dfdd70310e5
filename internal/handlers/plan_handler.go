package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/services"
)

type planApplicationService interface {
	Generate(ctx context.Context, userID int64) (*models.GeneratedPlan, error)
	Get(userID int64) (*models.GeneratedPlan, error)
	Delete(userID int64) error
	SwapDays(userID int64, dayA, dayB int) (*models.GeneratedPlan, error)
	WODs(userID int64, sport string) (models.WeeklyWODs, error)
	SetWOD(userID int64, sport, day, field, value string) (models.WeeklyWODs, error)
	ClearWOD(userID int64, sport, day string) (models.WeeklyWODs, error)
	ToggleShoppingItem(userID int64, index int) (*models.GeneratedPlan, error)
	RebuildShoppingList(ctx context.Context, userID int64, recipes []models.Recipe) (*models.GeneratedPlan, error)
	GenerateRecipe(ctx context.Context, userID int64, mealName string) (*models.Recipe, error)
	RecommendWorkout(ctx context.Context, userID int64) (*models.WorkoutRecommendation, error)
}

type PlanHandler struct {
	service planApplicationService
}

func NewPlanHandler(service planApplicationService) *PlanHandler {
	return &PlanHandler{service: service}
}

func (h *PlanHandler) Generate(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	plan, err := h.service.Generate(c.Context(), userID)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) Get(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	plan, err := h.service.Get(userID)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if err := h.service.Delete(userID); err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

type swapDaysRequest struct {
	DayA int `json:"day_a"`
	DayB int `json:"day_b"`
}

func (h *PlanHandler) SwapDays(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req swapDaysRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.service.SwapDays(userID, req.DayA, req.DayB)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (h *PlanHandler) GetWODs(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	wods, err := h.service.WODs(userID, c.Params("sport"))
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"wods": wods})
}

type setWODRequest struct {
	Day   string `json:"day"`
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *PlanHandler) SetWOD(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req setWODRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	wods, err := h.service.SetWOD(userID, c.Params("sport"), req.Day, req.Field, req.Value)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"wods": wods})
}

func (h *PlanHandler) ClearWOD(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	wods, err := h.service.ClearWOD(userID, c.Params("sport"), c.Params("day"))
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"wods": wods})
}

type toggleItemRequest struct {
	Index int `json:"index"`
}

func (h *PlanHandler) ToggleShoppingItem(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req toggleItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.service.ToggleShoppingItem(userID, req.Index)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"shopping_list": plan.ShoppingList})
}

type rebuildShoppingRequest struct {
	Recipes []models.Recipe `json:"recipes"`
}

func (h *PlanHandler) RebuildShoppingList(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req rebuildShoppingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	plan, err := h.service.RebuildShoppingList(c.Context(), userID, req.Recipes)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"shopping_list": plan.ShoppingList})
}

type recipeRequest struct {
	MealName string `json:"meal_name"`
}

func (h *PlanHandler) GenerateRecipe(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req recipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	recipe, err := h.service.GenerateRecipe(c.Context(), userID, req.MealName)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"recipe": recipe})
}

func (h *PlanHandler) RecommendWorkout(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	recommendation, err := h.service.RecommendWorkout(c.Context(), userID)
	if err != nil {
		return mapPlanError(c, err)
	}
	return c.JSON(fiber.Map{"recommendation": recommendation})
}

func mapPlanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Plan not found"})
	case errors.Is(err, services.ErrProfileIncomplete):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Complete onboarding first"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process plan request"})
	}
}
