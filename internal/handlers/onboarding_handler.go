package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/repository"
)

type onboardingProfileStore interface {
	UpdateOnboarding(ctx context.Context, userID int64, input repository.OnboardingInput) (*models.Profile, error)
}

type OnboardingHandler struct {
	profileRepo onboardingProfileStore
}

func NewOnboardingHandler(profileRepo onboardingProfileStore) *OnboardingHandler {
	return &OnboardingHandler{profileRepo: profileRepo}
}

type onboardingRequest struct {
	Goals         models.UserGoals       `json:"goals"`
	ProfileData   models.UserProfileData `json:"profile_data"`
	TrainingTypes []string               `json:"training_types"`
}

func (h *OnboardingHandler) CompleteOnboarding(c *fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req onboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if validationErr := validateOnboardingRequest(req); validationErr != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr})
	}

	profile, err := h.profileRepo.UpdateOnboarding(c.Context(), userID, repository.OnboardingInput{
		Goals:         req.Goals,
		ProfileData:   req.ProfileData,
		TrainingTypes: normalizeTrainingTypes(req.TrainingTypes),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{
		"profile":             profile,
		"onboarding_complete": profile.OnboardingComplete,
	})
}

func validateOnboardingRequest(req onboardingRequest) string {
	switch req.Goals.Objective {
	case models.ObjectiveLoseWeight, models.ObjectiveGainMuscle, models.ObjectiveMaintain, models.ObjectiveImproveEndurance:
	default:
		return "Invalid objective"
	}
	switch req.Goals.ActivityLevel {
	case models.ActivitySedentary, models.ActivityLight, models.ActivityModerate, models.ActivityActive, models.ActivityVeryActive:
	default:
		return "Invalid activity level"
	}
	if req.Goals.CurrentWeightKG <= 0 || req.Goals.CurrentWeightKG > 400 {
		return "Invalid current weight"
	}
	if req.Goals.HeightCM <= 0 || req.Goals.HeightCM > 260 {
		return "Invalid height"
	}
	if req.Goals.Age < 14 || req.Goals.Age > 110 {
		return "Invalid age"
	}
	if len(req.TrainingTypes) == 0 {
		return "At least one training type is required"
	}
	return ""
}

func normalizeTrainingTypes(trainingTypes []string) []string {
	normalized := make([]string, 0, len(trainingTypes))
	for _, t := range trainingTypes {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			normalized = append(normalized, t)
		}
	}
	return normalized
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(userIDStr, 10, 64)
}
