package models

// Objective is the user's primary fitness objective.
type Objective string

const (
	ObjectiveLoseWeight       Objective = "lose_weight"
	ObjectiveGainMuscle       Objective = "gain_muscle"
	ObjectiveMaintain         Objective = "maintain"
	ObjectiveImproveEndurance Objective = "improve_endurance"
)

// ActivityLevel describes baseline daily activity outside training.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// UserGoals holds the primary targets collected at onboarding and
// editable from settings.
type UserGoals struct {
	Objective          Objective     `json:"objective"`
	CurrentWeightKG    float64       `json:"current_weight_kg"`
	TargetWeightKG     float64       `json:"target_weight_kg"`
	HeightCM           float64       `json:"height_cm"`
	Age                int           `json:"age"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	DailyCalorieTarget *int          `json:"daily_calorie_target,omitempty"`
}

// WorkSchedule is the user's working days and hours, used to place
// training sessions around work.
type WorkSchedule struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// SportFrequency describes how often the user trains one sport.
type SportFrequency struct {
	DaysPerWeek    int  `json:"days_per_week"`
	SessionMinutes int  `json:"session_minutes"`
	ClassBased     bool `json:"class_based"`
}

// UserProfileData is the secondary, free-form profile collected at
// onboarding. Stored as its own column on the profile row, not nested
// inside the goals blob.
type UserProfileData struct {
	WorkSchedule         *WorkSchedule             `json:"work_schedule,omitempty"`
	PreferredWorkoutTime string                    `json:"preferred_workout_time,omitempty"`
	SportFrequencies     map[string]SportFrequency `json:"sport_frequencies,omitempty"`
	DietType             string                    `json:"diet_type,omitempty"`
	Allergies            []string                  `json:"allergies,omitempty"`
	DislikedFoods        []string                  `json:"disliked_foods,omitempty"`
	FavoriteFoods        []string                  `json:"favorite_foods,omitempty"`
	MealsPerDay          int                       `json:"meals_per_day,omitempty"`
	Injuries             []string                  `json:"injuries,omitempty"`
	Experience           string                    `json:"experience,omitempty"`
}
