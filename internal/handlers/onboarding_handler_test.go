package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Aguti1902/appfitness-backend/internal/models"
	"github.com/Aguti1902/appfitness-backend/internal/repository"
)

type stubOnboardingStore struct {
	lastUserID int64
	lastInput  repository.OnboardingInput
}

func (s *stubOnboardingStore) UpdateOnboarding(_ context.Context, userID int64, input repository.OnboardingInput) (*models.Profile, error) {
	s.lastUserID = userID
	s.lastInput = input
	return &models.Profile{UserID: userID, OnboardingComplete: true}, nil
}

func onboardingTestApp(store *stubOnboardingStore) *fiber.App {
	handler := NewOnboardingHandler(store)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/users/onboarding", handler.CompleteOnboarding)
	return app
}

func TestCompleteOnboarding(t *testing.T) {
	store := &stubOnboardingStore{}
	app := onboardingTestApp(store)

	body := `{
		"goals": {
			"objective": "lose_weight",
			"current_weight_kg": 80,
			"target_weight_kg": 72,
			"height_cm": 175,
			"age": 28,
			"activity_level": "moderate"
		},
		"profile_data": {"meals_per_day": 4, "diet_type": "omnivore"},
		"training_types": [" Gym ", "CrossFit"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/onboarding", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastUserID != 42 {
		t.Fatalf("expected user 42, got %d", store.lastUserID)
	}
	if store.lastInput.Goals.Objective != models.ObjectiveLoseWeight {
		t.Fatalf("unexpected objective %q", store.lastInput.Goals.Objective)
	}
	want := []string{"gym", "crossfit"}
	if len(store.lastInput.TrainingTypes) != len(want) {
		t.Fatalf("unexpected training types %v", store.lastInput.TrainingTypes)
	}
	for i, got := range store.lastInput.TrainingTypes {
		if got != want[i] {
			t.Fatalf("training type %d: expected %q, got %q", i, want[i], got)
		}
	}
}

func TestCompleteOnboardingValidation(t *testing.T) {
	app := onboardingTestApp(&stubOnboardingStore{})

	cases := []string{
		`{"goals":{"objective":"get_ripped","current_weight_kg":80,"height_cm":175,"age":28,"activity_level":"moderate"},"training_types":["gym"]}`,
		`{"goals":{"objective":"maintain","current_weight_kg":0,"height_cm":175,"age":28,"activity_level":"moderate"},"training_types":["gym"]}`,
		`{"goals":{"objective":"maintain","current_weight_kg":80,"height_cm":175,"age":5,"activity_level":"moderate"},"training_types":["gym"]}`,
		`{"goals":{"objective":"maintain","current_weight_kg":80,"height_cm":175,"age":28,"activity_level":"moderate"},"training_types":[]}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users/onboarding", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", body, resp.StatusCode)
		}
	}
}
