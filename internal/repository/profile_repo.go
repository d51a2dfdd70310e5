package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO profiles (user_id) VALUES ($1)`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT id, user_id, goals, profile_data, training_types, generated_plan,
			   plan_generated_at, onboarding_complete, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var (
		profile     models.Profile
		goalsRaw    []byte
		profileRaw  []byte
		planRaw     []byte
		generatedAt *time.Time
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&goalsRaw,
		&profileRaw,
		&profile.TrainingTypes,
		&planRaw,
		&generatedAt,
		&profile.OnboardingComplete,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeGoalsColumns(&profile, goalsRaw, profileRaw); err != nil {
		return nil, err
	}
	profile.GeneratedPlan = planRaw
	profile.PlanGeneratedAt = generatedAt
	return &profile, nil
}

type OnboardingInput struct {
	Goals         models.UserGoals
	ProfileData   models.UserProfileData
	TrainingTypes []string
}

func (r *ProfileRepository) UpdateOnboarding(ctx context.Context, userID int64, input OnboardingInput) (*models.Profile, error) {
	goalsRaw, err := json.Marshal(input.Goals)
	if err != nil {
		return nil, fmt.Errorf("encode goals: %w", err)
	}
	profileRaw, err := json.Marshal(input.ProfileData)
	if err != nil {
		return nil, fmt.Errorf("encode profile data: %w", err)
	}

	query := `
		UPDATE profiles
		SET goals = $1,
			profile_data = $2,
			training_types = $3,
			onboarding_complete = TRUE,
			updated_at = NOW()
		WHERE user_id = $4
		RETURNING id, created_at, updated_at
	`
	profile := &models.Profile{
		UserID:             userID,
		Goals:              &input.Goals,
		ProfileData:        &input.ProfileData,
		TrainingTypes:      input.TrainingTypes,
		OnboardingComplete: true,
	}
	err = r.db.QueryRow(ctx, query, goalsRaw, profileRaw, input.TrainingTypes, userID).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateGeneratedPlan mirrors the device-local plan into the profile
// row. Callers treat failure as non-fatal: the device copy stays
// authoritative.
func (r *ProfileRepository) UpdateGeneratedPlan(ctx context.Context, userID int64, plan []byte, generatedAt time.Time) error {
	query := `
		UPDATE profiles
		SET generated_plan = $1,
			plan_generated_at = $2,
			updated_at = NOW()
		WHERE user_id = $3
	`
	_, err := r.db.Exec(ctx, query, plan, generatedAt, userID)
	return err
}

// decodeGoalsColumns fills the profile's goals and profile data from
// the row. Legacy rows stored profile_data nested inside the goals
// blob; when the profile_data column is empty the nested object is
// split out here so the rest of the code never sees the old shape.
func decodeGoalsColumns(profile *models.Profile, goalsRaw, profileRaw []byte) error {
	if len(profileRaw) > 0 {
		var data models.UserProfileData
		if err := json.Unmarshal(profileRaw, &data); err != nil {
			return fmt.Errorf("decode profile data: %w", err)
		}
		profile.ProfileData = &data
	}

	if len(goalsRaw) == 0 {
		return nil
	}

	var goals models.UserGoals
	if err := json.Unmarshal(goalsRaw, &goals); err != nil {
		return fmt.Errorf("decode goals: %w", err)
	}
	profile.Goals = &goals

	if profile.ProfileData == nil {
		var legacy struct {
			ProfileData *models.UserProfileData `json:"profile_data"`
		}
		if err := json.Unmarshal(goalsRaw, &legacy); err == nil && legacy.ProfileData != nil {
			profile.ProfileData = legacy.ProfileData
		}
	}
	return nil
}
