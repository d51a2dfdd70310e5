package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/services"
)

type goalApplicationService interface {
	List(userID int64) ([]models.UserGoal, error)
	Create(ctx context.Context, userID int64, input services.CreateGoalInput) (*models.UserGoal, error)
	UpdateProgress(userID int64, goalID string, value float64) (*models.UserGoal, error)
	Delete(userID int64, goalID string) error
}

type GoalHandler struct {
	service goalApplicationService
}

func NewGoalHandler(service goalApplicationService) *GoalHandler {
	return &GoalHandler{service: service}
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goals, err := h.service.List(userID)
	if err != nil {
		return mapGoalError(c, err)
	}
	return c.JSON(fiber.Map{"goals": goals})
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req services.CreateGoalInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goal, err := h.service.Create(c.Context(), userID, req)
	if err != nil {
		return mapGoalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": goal})
}

type goalProgressRequest struct {
	Value float64 `json:"value"`
}

func (h *GoalHandler) UpdateProgress(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goalID := strings.TrimSpace(c.Params("id"))
	if goalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	var req goalProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	goal, err := h.service.UpdateProgress(userID, goalID, req.Value)
	if err != nil {
		return mapGoalError(c, err)
	}
	return c.JSON(fiber.Map{"goal": goal})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	goalID := strings.TrimSpace(c.Params("id"))
	if goalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal id"})
	}

	if err := h.service.Delete(userID, goalID); err != nil {
		return mapGoalError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func mapGoalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrGoalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	case errors.Is(err, services.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process goal request"})
	}
}
