package models

import "time"

// GoalCategory classifies a user-defined milestone goal.
type GoalCategory string

const (
	GoalStrength GoalCategory = "strength"
	GoalCardio   GoalCategory = "cardio"
	GoalWeight   GoalCategory = "weight"
	GoalHabit    GoalCategory = "habit"
	GoalOther    GoalCategory = "other"
)

// GoalMilestone is one intermediate checkpoint between the goal's
// starting value and its target.
type GoalMilestone struct {
	Value       float64 `json:"value"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
}

// UserGoal is a user-defined milestone goal. Goals live only in the
// device store and are never mirrored to the backend.
type UserGoal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Category     GoalCategory    `json:"category"`
	StartValue   float64         `json:"start_value"`
	CurrentValue float64         `json:"current_value"`
	TargetValue  float64         `json:"target_value"`
	Unit         string          `json:"unit"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	PlanSteps    []string        `json:"plan_steps,omitempty"`
	Milestones   []GoalMilestone `json:"milestones"`
	Completed    bool            `json:"completed"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
