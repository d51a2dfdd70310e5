package models

import (
	"encoding/json"
	"time"
)

// Profile is the backend profile row. Goals and ProfileData are
// separate columns; legacy rows that still nest profile_data inside
// the goals blob are split apart by the repository on read.
type Profile struct {
	ID                 int64            `json:"id"`
	UserID             int64            `json:"user_id"`
	Goals              *UserGoals       `json:"goals"`
	ProfileData        *UserProfileData `json:"profile_data"`
	TrainingTypes      []string         `json:"training_types"`
	GeneratedPlan      json.RawMessage  `json:"generated_plan,omitempty"`
	PlanGeneratedAt    *time.Time       `json:"plan_generated_at,omitempty"`
	OnboardingComplete bool             `json:"onboarding_complete"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
